package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPHost        string
	HTTPPort        int
	ShutdownTimeout time.Duration
	LogLevel        string
	SessionFile     string
	TriageDelay     time.Duration
	AssistantDelay  time.Duration
	CORSOrigins     []string
	SeedDemoData    bool
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MEDICONNECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.addr", "")
	v.SetDefault("shutdown.timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("session.file", "data/session.json")
	v.SetDefault("triage.delay", "2s")
	v.SetDefault("assistant.delay", "1500ms")
	v.SetDefault("cors.origins", "*")
	v.SetDefault("seed.demo_data", true)

	_ = v.BindEnv("http.host", "MEDICONNECT_HTTP_HOST", "HTTP_HOST")
	_ = v.BindEnv("http.port", "MEDICONNECT_HTTP_PORT", "HTTP_PORT", "PORT")
	_ = v.BindEnv("http.addr", "MEDICONNECT_HTTP_ADDR", "HTTP_ADDR")
	_ = v.BindEnv("shutdown.timeout", "MEDICONNECT_SHUTDOWN_TIMEOUT", "SHUTDOWN_TIMEOUT")
	_ = v.BindEnv("log.level", "MEDICONNECT_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("session.file", "MEDICONNECT_SESSION_FILE", "SESSION_FILE")
	_ = v.BindEnv("triage.delay", "MEDICONNECT_TRIAGE_DELAY")
	_ = v.BindEnv("assistant.delay", "MEDICONNECT_ASSISTANT_DELAY")
	_ = v.BindEnv("cors.origins", "MEDICONNECT_CORS_ORIGINS", "CORS_ORIGINS")
	_ = v.BindEnv("seed.demo_data", "MEDICONNECT_SEED_DEMO_DATA")

	timeout, err := time.ParseDuration(v.GetString("shutdown.timeout"))
	if err != nil {
		return Config{}, err
	}

	triageDelay, err := time.ParseDuration(v.GetString("triage.delay"))
	if err != nil {
		return Config{}, err
	}
	assistantDelay, err := time.ParseDuration(v.GetString("assistant.delay"))
	if err != nil {
		return Config{}, err
	}

	if addr := strings.TrimSpace(v.GetString("http.addr")); addr != "" {
		host, portStr, err := net.SplitHostPort(addr)
		if err == nil {
			if host != "" {
				v.Set("http.host", host)
			}
			if port, err := strconv.Atoi(portStr); err == nil {
				v.Set("http.port", port)
			}
		}
	}

	var origins []string
	for _, origin := range strings.Split(v.GetString("cors.origins"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return Config{
		HTTPHost:        strings.TrimSpace(v.GetString("http.host")),
		HTTPPort:        v.GetInt("http.port"),
		ShutdownTimeout: timeout,
		LogLevel:        v.GetString("log.level"),
		SessionFile:     v.GetString("session.file"),
		TriageDelay:     triageDelay,
		AssistantDelay:  assistantDelay,
		CORSOrigins:     origins,
		SeedDemoData:    v.GetBool("seed.demo_data"),
	}, nil
}
