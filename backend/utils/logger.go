package utils

import (
	"log"
	"os"
)

// LoggerConfig configures InitLogger. The zero value logs to stdout.
type LoggerConfig struct {
	Output *os.File
	Prefix string
}

// InitLogger builds the process-wide logger.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "[Placement Prep] "
	}
	return log.New(cfg.Output, cfg.Prefix, log.LstdFlags|log.LUTC)
}
