package config

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EchoServer configures the echo HTTP server.
type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableTrailingSlashMiddleware  bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableLoggerMiddleware         bool
	EnablePrometheusMiddleware     bool
}

// LoggerServer configures zerolog.
type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogResponseBody    bool
	PrettyPrintConsole bool
}

// ManagementServer configures the /-/* endpoints and container probes.
type ManagementServer struct {
	ProbeBaseURL   string
	ProbeTimeout   time.Duration
	ReadinessRetry time.Duration
}

// Server is the root configuration of the service, resolved from ENV once at
// startup and treated as immutable afterwards.
type Server struct {
	Echo       EchoServer
	Logger     LoggerServer
	Management ManagementServer
}

// DefaultServiceConfigFromEnv returns the server config with defaults applied
// and every value overridable through SERVER_* environment variables.
func DefaultServiceConfigFromEnv() Server {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ECHO_DEBUG", false)
	v.SetDefault("SERVER_ECHO_LISTEN_ADDRESS", ":3000")
	v.SetDefault("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true)
	v.SetDefault("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_PROMETHEUS_MIDDLEWARE", true)

	v.SetDefault("SERVER_LOGGER_LEVEL", zerolog.InfoLevel.String())
	v.SetDefault("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())
	v.SetDefault("SERVER_LOGGER_LOG_REQUEST_BODY", false)
	v.SetDefault("SERVER_LOGGER_LOG_RESPONSE_BODY", false)
	v.SetDefault("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false)

	v.SetDefault("SERVER_MANAGEMENT_PROBE_BASE_URL", "http://localhost:3000")
	v.SetDefault("SERVER_MANAGEMENT_PROBE_TIMEOUT", 3*time.Second)
	v.SetDefault("SERVER_MANAGEMENT_READINESS_RETRY", 250*time.Millisecond)

	return Server{
		Echo: EchoServer{
			Debug:                          v.GetBool("SERVER_ECHO_DEBUG"),
			ListenAddress:                  v.GetString("SERVER_ECHO_LISTEN_ADDRESS"),
			HideInternalServerErrorDetails: v.GetBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS"),
			EnableTrailingSlashMiddleware:  v.GetBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE"),
			EnableRecoverMiddleware:        v.GetBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE"),
			EnableRequestIDMiddleware:      v.GetBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE"),
			EnableLoggerMiddleware:         v.GetBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE"),
			EnablePrometheusMiddleware:     v.GetBool("SERVER_ECHO_ENABLE_PROMETHEUS_MIDDLEWARE"),
		},
		Logger: LoggerServer{
			Level:              logLevelFromString(v.GetString("SERVER_LOGGER_LEVEL")),
			RequestLevel:       logLevelFromString(v.GetString("SERVER_LOGGER_REQUEST_LEVEL")),
			LogRequestBody:     v.GetBool("SERVER_LOGGER_LOG_REQUEST_BODY"),
			LogResponseBody:    v.GetBool("SERVER_LOGGER_LOG_RESPONSE_BODY"),
			PrettyPrintConsole: v.GetBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE"),
		},
		Management: ManagementServer{
			ProbeBaseURL:   v.GetString("SERVER_MANAGEMENT_PROBE_BASE_URL"),
			ProbeTimeout:   v.GetDuration("SERVER_MANAGEMENT_PROBE_TIMEOUT"),
			ReadinessRetry: v.GetDuration("SERVER_MANAGEMENT_READINESS_RETRY"),
		},
	}
}

func logLevelFromString(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}

	return level
}
