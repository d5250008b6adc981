// Package config provides configuration management for worktime.
//
// This package handles loading configuration from YAML files, applying
// environment variable overrides, setting defaults, and validating the
// configuration. The resulting Config is built once at startup and treated
// as read-only afterwards.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (highest priority)
//  2. YAML configuration file (optional)
//  3. Default values (lowest priority)
//
// Supported environment variables:
//   - WORKTIME_SOURCE_LABEL / WORKTIME_SOURCE_ZONE: label and zone id typed times are in
//   - WORKTIME_TARGET_LABEL / WORKTIME_TARGET_ZONE: label and zone id results are shown in
//   - WORKTIME_REFRESH_INTERVAL: Clock refresh interval in seconds (1-3600)
//   - WORKTIME_RESET_DELAY: Auto-reset delay in seconds (1-3600)
//   - WORKTIME_RESET_MODE: stacked (default) or restart
//   - WORKTIME_LOG_LEVEL: Log level (debug, info, warn, error)
//   - WORKTIME_LOG_FILE: File receiving JSON log records
//   - WORKTIME_METRICS_FILE: Textfile receiving Prometheus metrics on exit
//   - WORKTIME_SHORTCUT: Install the desktop launcher (true/false)
//
// Example configuration file (worktime.yaml):
//
//	zones:
//	  source:
//	    label: "EST"
//	    id: "US/Eastern"
//	  target:
//	    label: "PST"
//	    id: "US/Pacific"
//
//	refresh_interval: 5   # seconds
//	reset_delay: 10       # seconds
//	reset_mode: stacked   # or restart
//	log_level: "info"
//
//	shortcut:
//	  enabled: true
//	  name: "worktime.desktop"
//
// Example usage:
//
//	cfg, err := config.Load("worktime.yaml")
//	if err != nil {
//		log.Fatalf("Failed to load config: %v", err)
//	}
//
//	fmt.Printf("Converting %s to %s\n", cfg.Zones.Source.Label, cfg.Zones.Target.Label)
package config
