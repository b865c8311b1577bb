package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	DefaultPort        = 1234
	DefaultNATSSubject = "websockettest.messages"
)

// MonitorOptions configures the MonitorScreen binary
type MonitorOptions struct {
	ConfigPath string // MONITOR_CONFIG (default "config.json")
	URI        string // MONITOR_URI (overrides the saved uri when set)
	Fullscreen bool   // MONITOR_FULLSCREEN
	LogLevel   string // LOG_LEVEL (default "info")
	LogJSON    bool   // LOG_JSON
}

// TesterOptions configures the WebSocketTest binary
type TesterOptions struct {
	Port        int    // WSTEST_PORT (default 1234)
	NATSURL     string // WSTEST_NATS_URL (optional, empty = no relay)
	NATSSubject string // WSTEST_NATS_SUBJECT
	LogLevel    string // LOG_LEVEL (default "info")
	LogJSON     bool   // LOG_JSON
}

func LoadMonitorOptions() MonitorOptions {
	return MonitorOptions{
		ConfigPath: envOrDefault("MONITOR_CONFIG", DefaultFileName),
		URI:        os.Getenv("MONITOR_URI"),
		Fullscreen: envBool("MONITOR_FULLSCREEN"),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
		LogJSON:    envBool("LOG_JSON"),
	}
}

func LoadTesterOptions() TesterOptions {
	port := DefaultPort
	if v := os.Getenv("WSTEST_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			port = p
		}
	}

	return TesterOptions{
		Port:        port,
		NATSURL:     os.Getenv("WSTEST_NATS_URL"),
		NATSSubject: envOrDefault("WSTEST_NATS_SUBJECT", DefaultNATSSubject),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogJSON:     envBool("LOG_JSON"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
