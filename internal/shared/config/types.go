package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type EmailConfig struct {
	SMTPHost     string   `mapstructure:"smtp_host"`
	SMTPPort     int      `mapstructure:"smtp_port"`
	SMTPUser     string   `mapstructure:"smtp_user"`
	SMTPPassword string   `mapstructure:"smtp_password"`
	FromAddress  string   `mapstructure:"from_address"`
	FromName     string   `mapstructure:"from_name"`
	SupportTeam  []string `mapstructure:"support_team"`
}

// NLUConfig configures the remote intent-extraction endpoint.
type NLUConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (n *NLUConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSeconds) * time.Second
}

// CRMConfig configures the external contract-status lookup.
type CRMConfig struct {
	BaseURL               string `mapstructure:"base_url"`
	APIKey                string `mapstructure:"api_key"`
	AttemptTimeoutSeconds int    `mapstructure:"attempt_timeout_seconds"`
	OverallTimeoutSeconds int    `mapstructure:"overall_timeout_seconds"`
	MaxAttempts           int    `mapstructure:"max_attempts"`
	BackoffBaseMillis     int    `mapstructure:"backoff_base_millis"`
	CacheTTLSeconds       int    `mapstructure:"cache_ttl_seconds"`
}

func (c *CRMConfig) AttemptTimeout() time.Duration {
	return time.Duration(c.AttemptTimeoutSeconds) * time.Second
}

func (c *CRMConfig) OverallTimeout() time.Duration {
	return time.Duration(c.OverallTimeoutSeconds) * time.Second
}

func (c *CRMConfig) BackoffBase() time.Duration {
	return time.Duration(c.BackoffBaseMillis) * time.Millisecond
}

func (c *CRMConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// OrangeConfig configures the external ticketing provider.
type OrangeConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (o *OrangeConfig) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

func (o *OrangeConfig) Configured() bool {
	return o.BaseURL != "" && o.APIKey != ""
}

// EscalationConfig configures the periodic complaint sweep.
type EscalationConfig struct {
	IntervalMinutes int `mapstructure:"interval_minutes"`
}

func (e *EscalationConfig) Interval() time.Duration {
	return time.Duration(e.IntervalMinutes) * time.Minute
}
