// Package config loads application configuration from yaml files and
// JARVIS_-prefixed environment variables via viper.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/Belkouche/jarvis-sub000/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Email      sharedConfig.EmailConfig      `mapstructure:"email"`
	NLU        sharedConfig.NLUConfig        `mapstructure:"nlu"`
	CRM        sharedConfig.CRMConfig        `mapstructure:"crm"`
	Orange     sharedConfig.OrangeConfig     `mapstructure:"orange"`
	Escalation sharedConfig.EscalationConfig `mapstructure:"escalation"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("JARVIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; defaults plus env vars are enough to run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "jarvis_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("email.smtp_host", "")
	viper.SetDefault("email.smtp_port", 587)
	viper.SetDefault("email.from_address", "support@jarvis.local")
	viper.SetDefault("email.from_name", "Jarvis Support")

	viper.SetDefault("nlu.endpoint", "")
	viper.SetDefault("nlu.model", "")
	viper.SetDefault("nlu.timeout_seconds", 10)

	viper.SetDefault("crm.base_url", "")
	viper.SetDefault("crm.attempt_timeout_seconds", 15)
	viper.SetDefault("crm.overall_timeout_seconds", 50)
	viper.SetDefault("crm.max_attempts", 3)
	viper.SetDefault("crm.backoff_base_millis", 500)
	viper.SetDefault("crm.cache_ttl_seconds", 300)

	viper.SetDefault("orange.base_url", "")
	viper.SetDefault("orange.timeout_seconds", 15)

	viper.SetDefault("escalation.interval_minutes", 30)
}
