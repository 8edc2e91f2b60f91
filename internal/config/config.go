package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string        `mapstructure:"PORT"`
	DBDSN           string        `mapstructure:"DB_DSN"`
	LogFile         string        `mapstructure:"LOG_FILE"`
	CORSOrigins     string        `mapstructure:"CORS_ORIGINS"`
	BodyLimit       int           `mapstructure:"BODY_LIMIT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	RateLimit       int           `mapstructure:"RATE_LIMIT"` // requests per client per minute; 0 disables
}

// Load reads settings from the environment, optionally layered over an
// env-style file named by CONFIG_FILE. Environment variables win.
func Load() Config {
	v := viper.New()
	v.SetDefault("PORT", "3000")
	v.SetDefault("DB_DSN", "users.db") // sqlite file in working dir
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("BODY_LIMIT", 1<<20) // 1 MiB
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("RATE_LIMIT", 0)
	v.AutomaticEnv()

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Printf("[warn] could not read config file %s: %v", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("[warn] could not decode config: %v", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s CORS_ORIGINS=%s RATE_LIMIT=%d", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.CORSOrigins, cfg.RateLimit)
	return cfg
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }
