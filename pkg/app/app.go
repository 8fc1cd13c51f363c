// Package app 提供应用程序的初始化、装配与生命周期管理.
package app

import (
	contextPkg "context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yeisme/imagevault/pkg/api"
	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/consumer"
	"github.com/yeisme/imagevault/pkg/internal/jobs"
	"github.com/yeisme/imagevault/pkg/internal/model"
	"github.com/yeisme/imagevault/pkg/internal/storage"
	"github.com/yeisme/imagevault/pkg/log"
	"github.com/yeisme/imagevault/pkg/metrics"
	"github.com/yeisme/imagevault/pkg/middleware"
	"github.com/yeisme/imagevault/pkg/scheduler"
	"github.com/yeisme/imagevault/pkg/tracing"
)

// App 聚合 HTTP 引擎与运行期资源.
type App struct {
	Engine  *gin.Engine
	config  *configs.AppConfig
	manager *storage.Manager
	sched   *scheduler.Scheduler
}

// NewApp 完成全部初始化：配置、追踪、监控、存储、路由与定时任务.
// 初始化失败直接退出进程，带残缺依赖继续跑只会把错误推迟到请求期.
func NewApp(configPath string) *App {
	ctx := contextPkg.Background()
	engine := gin.New()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()
	if config.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化追踪
	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// 元数据表结构迁移
	if err := manager.GetDBClient().GetDB().AutoMigrate(&model.Image{}, &model.Share{}); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	sched, err := scheduler.NewScheduler()
	if err != nil {
		fmt.Printf("Error initializing scheduler: %v\n", err)
		os.Exit(1)
	}

	if err := jobs.RegisterCronJobs(sched, manager); err != nil {
		fmt.Printf("Error registering cron jobs: %v\n", err)
		os.Exit(1)
	}

	engine.Use(
		gin.Recovery(),
		middleware.GinLoggerMiddleware(),
		middleware.CORSMiddleware(config.Server),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.CircuitBreakerMiddleware(config.CircuitBreaker),
		middleware.StorageMiddleware(manager),
		middleware.SchedulerMiddleware(sched),
	)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	api.RegisterGroup(engine, manager)

	return &App{
		Engine:  engine,
		config:  config,
		manager: manager,
		sched:   sched,
	}
}

// Run 启动事件消费者、调度器与 HTTP 服务，收到 SIGINT/SIGTERM 后优雅退出.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(contextPkg.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.StartAll(ctx, a.manager); err != nil {
		return fmt.Errorf("start consumers: %w", err)
	}

	a.sched.Start()

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port),
		Handler:           a.Engine,
		ReadHeaderTimeout: a.config.Server.GetTimeoutDuration(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Logger().Info().Str("addr", srv.Addr).Msg("http server started")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := contextPkg.WithTimeout(contextPkg.Background(), a.config.Server.GetTimeoutDuration())
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}

		if err := a.sched.Shutdown(); err != nil {
			log.Logger().Warn().Err(err).Msg("shutdown scheduler failed")
		}

		if err := a.manager.Close(); err != nil {
			log.Logger().Warn().Err(err).Msg("close storage failed")
		}

		return nil
	})

	return g.Wait()
}
