package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 執行環境配置
type Config struct {
	Locale string `mapstructure:"locale"`
	Debug  bool   `mapstructure:"debug"`
}

// DefaultConfig 返回預設配置
func DefaultConfig() *Config {
	return &Config{
		Locale: "C",
		Debug:  false,
	}
}

// LoadConfig 從環境變數載入配置
//
// 語系依 setlocale 的優先順序取第一個非空值: LC_ALL, LC_MESSAGES, LANG。
func LoadConfig(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	v.SetDefault("locale", cfg.Locale)
	v.SetDefault("debug", cfg.Debug)

	if err := v.BindEnv("locale", "LC_ALL", "LC_MESSAGES", "LANG"); err != nil {
		return nil, fmt.Errorf("綁定語系環境變數失敗: %w", err)
	}
	if err := v.BindEnv("debug", "TAILLE_DEBUG"); err != nil {
		return nil, fmt.Errorf("綁定除錯環境變數失敗: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析配置失敗: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置驗證失敗: %w", err)
	}

	return cfg, nil
}

// Validate 驗證配置
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Locale, " \t\n") {
		return fmt.Errorf("無效的語系: %q", c.Locale)
	}
	return nil
}

// LogLevel 依配置回傳日誌等級
func (c *Config) LogLevel() string {
	if c.Debug {
		return "debug"
	}
	return "warn"
}
