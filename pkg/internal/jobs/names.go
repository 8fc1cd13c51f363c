package jobs

// 任务名称常量，便于统一管理与引用.
const (
	JobTrashAutoCleanMorning = "trash.auto_clean.morning"
	JobTrashAutoCleanEvening = "trash.auto_clean.evening"
	JobReconcileDaily        = "reconcile.daily"
)

// Cron 表达式常量，集中管理执行时刻.
const (
	CronTrashAutoCleanMorning = "0 7 * * *"
	CronTrashAutoCleanEvening = "0 19 * * *"
	CronReconcileDaily        = "10 2 * * *"
)
