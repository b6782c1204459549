package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings govctl 运行配置
type Settings struct {
	BaseURL        string        `mapstructure:"base_url" json:"base_url"`
	TokenFile      string        `mapstructure:"token_file" json:"token_file"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" json:"request_timeout"`
	Log            LogSettings   `mapstructure:"log" json:"log"`
}

// LogSettings 日志配置
type LogSettings struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// EnvPrefix govctl 环境变量前缀，如 GOVCTL_BASE_URL
const EnvPrefix = "GOVCTL"

// SettingsDefaults 默认配置项
func SettingsDefaults() map[string]any {
	return map[string]any{
		"base_url":        "http://localhost:8000/api/v1",
		"token_file":      "",
		"request_timeout": "30s",
		"log.level":       "info",
		"log.format":      "text",
	}
}

// LoadSettings 加载 govctl 配置，path 为空时仅使用默认值与环境变量
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return defaultSettings()
	}

	l, err := Load[Settings](path,
		WithDefaults[Settings](SettingsDefaults()),
		WithEnv[Settings](EnvPrefix),
	)
	if err != nil {
		return Settings{}, err
	}
	return l.Get(), nil
}

// defaultSettings 不读取文件，仅应用默认值与环境变量
func defaultSettings() (Settings, error) {
	v := viper.New()
	for k, d := range SettingsDefaults() {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
