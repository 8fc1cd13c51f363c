package configs

const (
	// AppName 应用名称.
	AppName = "imagevault"
	// AppVersion 应用版本.
	AppVersion = "1.0.0"
)
