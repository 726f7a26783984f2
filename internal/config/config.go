// Package config loads ambient settings for the graphplan demo binary from
// the environment. The core planning packages never read the environment
// themselves; only cmd/graphplan-demo consults this package.
package config

import "os"

type Config struct {
	LogLevel     string
	SerialGraph  bool
	ScenarioFile string
}

func Load() *Config {
	return &Config{
		LogLevel:     getEnv("GRAPHPLAN_LOG_LEVEL", "info"),
		SerialGraph:  getEnv("GRAPHPLAN_SERIAL_GRAPH", "false") == "true",
		ScenarioFile: getEnv("GRAPHPLAN_SCENARIO_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
