// Package config は任意のYAMLファイルと環境変数からアプリケーション設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile はパス未指定時に読み込む設定ファイルです（存在する場合のみ）。
const DefaultFile = "config.yaml"

// デフォルト値
const (
	DefaultPort               = "8080"
	DefaultBaseURL            = "https://www.alphavantage.co/query"
	DefaultTimeoutSec         = 10
	DefaultShutdownTimeoutSec = 10
	DefaultLogLevel           = "info"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	Server struct {
		Port               string `yaml:"port"`
		ShutdownTimeoutSec int    `yaml:"shutdown_timeout_sec"`
	} `yaml:"server"`
	AlphaVantage struct {
		APIKey     string `yaml:"api_key"`
		BaseURL    string `yaml:"base_url"`
		TimeoutSec int    `yaml:"timeout_sec"`
	} `yaml:"alphavantage"`
	LogLevel string `yaml:"log_level"`
}

// Load はYAMLファイルを読み込んだ後、環境変数による上書きとデフォルト値の適用を行います。
// ファイルが存在しない場合はエラーにしません。
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("AV_KEY"); v != "" {
		cfg.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("AV_BASE_URL"); v != "" {
		cfg.AlphaVantage.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	// 数値の設定は解釈できなければエラー
	for name, dst := range map[string]*int{
		"AV_TIMEOUT_SEC":       &cfg.AlphaVantage.TimeoutSec,
		"SHUTDOWN_TIMEOUT_SEC": &cfg.Server.ShutdownTimeoutSec,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		*dst = n
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.ShutdownTimeoutSec == 0 {
		cfg.Server.ShutdownTimeoutSec = DefaultShutdownTimeoutSec
	}
	if cfg.AlphaVantage.BaseURL == "" {
		cfg.AlphaVantage.BaseURL = DefaultBaseURL
	}
	if cfg.AlphaVantage.TimeoutSec == 0 {
		cfg.AlphaVantage.TimeoutSec = DefaultTimeoutSec
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// Validate はサーバーを起動できない設定をまとめて報告します。
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.AlphaVantage.APIKey) == "" {
		errs = append(errs, errors.New("AV_KEY is not set"))
	}
	if c.AlphaVantage.TimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("alphavantage timeout must be positive, got %d", c.AlphaVantage.TimeoutSec))
	}
	if c.Server.ShutdownTimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %d", c.Server.ShutdownTimeoutSec))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ProviderTimeout は外部API呼び出し1回あたりの全体タイムアウトです。
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.AlphaVantage.TimeoutSec) * time.Second
}

// ShutdownTimeout はグレースフルシャットダウンの上限時間です。
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutSec) * time.Second
}

// SlogLevel は設定されたログレベルを返します。解釈できない場合はinfoです。
func (c *Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
