package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/yaoapp/kun/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Mode names.
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

// Config is the runtime configuration, read from EMITTER_* variables.
type Config struct {
	Mode          string `json:"mode,omitempty" env:"EMITTER_MODE" envDefault:"production"`
	Log           string `json:"log,omitempty" env:"EMITTER_LOG"`
	LogMode       string `json:"log_mode,omitempty" env:"EMITTER_LOG_MODE" envDefault:"TEXT"`
	LogLevel      string `json:"log_level,omitempty" env:"EMITTER_LOG_LEVEL" envDefault:"info"`
	LogMaxSize    int    `json:"log_max_size,omitempty" env:"EMITTER_LOG_MAX_SIZE" envDefault:"100"`
	LogMaxBackups int    `json:"log_max_backups,omitempty" env:"EMITTER_LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `json:"log_max_age,omitempty" env:"EMITTER_LOG_MAX_AGE" envDefault:"28"`
	Recover       bool   `json:"recover,omitempty" env:"EMITTER_RECOVER" envDefault:"false"`
}

// Conf is the active configuration, set by Apply.
var Conf = Config{Mode: ModeProduction, LogMode: "TEXT", LogLevel: "info"}

// logOutput is the rotating writer opened by the last Apply, if any.
var logOutput io.Closer

// Load reads the configuration from the environment.
// An optional dotenv file is loaded first; variables already set win.
func Load(envfile ...string) (Config, error) {
	cfg := Config{}
	for _, file := range envfile {
		if file == "" {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	cfg.Mode = strings.ToLower(cfg.Mode)
	if cfg.Mode != ModeProduction && cfg.Mode != ModeDevelopment {
		return cfg, fmt.Errorf("config: EMITTER_MODE must be %q or %q, got %q", ModeProduction, ModeDevelopment, cfg.Mode)
	}

	cfg.LogMode = strings.ToUpper(cfg.LogMode)
	if cfg.LogMode != "TEXT" && cfg.LogMode != "JSON" {
		return cfg, fmt.Errorf("config: EMITTER_LOG_MODE must be TEXT or JSON, got %q", cfg.LogMode)
	}

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Apply makes cfg the active configuration and sets up kun/log accordingly.
func Apply(cfg Config) error {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	CloseLog()
	Conf = cfg

	log.SetLevel(level)
	if cfg.Mode == ModeDevelopment {
		log.SetLevel(log.TraceLevel)
	}

	log.SetFormatter(log.TEXT)
	if cfg.LogMode == "JSON" {
		log.SetFormatter(log.JSON)
	}

	if cfg.Log == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	out := &lumberjack.Logger{
		Filename:   cfg.Log,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		LocalTime:  true,
	}
	logOutput = out
	log.SetOutput(out)
	return nil
}

// CloseLog closes the log file opened by Apply.
func CloseLog() {
	if logOutput != nil {
		_ = logOutput.Close()
		logOutput = nil
	}
}

// IsDevelopment reports whether the active mode is development.
func IsDevelopment() bool {
	return Conf.Mode == ModeDevelopment
}

// ParseLevel converts a level name to a kun/log level.
func ParseLevel(name string) (log.Level, error) {
	switch strings.ToLower(name) {
	case "trace":
		return log.TraceLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("config: unknown log level %q", name)
}
