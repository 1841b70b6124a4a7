package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Log  LogConfig
	POS  POSConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// POSConfig holds the point-of-sale behaviour settings the store is seeded
// with. allow_negative_stock is the only knob the stock engines consume.
type POSConfig struct {
	Currency           string
	AllowNegativeStock bool
	CompanyName        string
	CompanyTaxID       string
	CompanyPhone       string
	ThemeColor         string
	BaseFontSize       int
	PrinterBrand       string
	PrinterIP          string
}

// Load loads configuration from a TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with POS_ prefix (e.g. POS_APP_PORT)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine, defaults plus env vars apply
	}

	v.SetEnvPrefix("POS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:    v.GetDuration("http.read_timeout"),
			WriteTimeout:   v.GetDuration("http.write_timeout"),
			IdleTimeout:    v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes: v.GetInt("http.max_header_bytes"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		POS: POSConfig{
			Currency:           v.GetString("pos.currency"),
			AllowNegativeStock: v.GetBool("pos.allow_negative_stock"),
			CompanyName:        v.GetString("pos.company_name"),
			CompanyTaxID:       v.GetString("pos.company_tax_id"),
			CompanyPhone:       v.GetString("pos.company_phone"),
			ThemeColor:         v.GetString("pos.theme_color"),
			BaseFontSize:       v.GetInt("pos.base_font_size"),
			PrinterBrand:       v.GetString("pos.printer_brand"),
			PrinterIP:          v.GetString("pos.printer_ip"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "vinpos-backend")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")

	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.max_header_bytes", 1<<20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("pos.currency", "AZN")
	v.SetDefault("pos.allow_negative_stock", true)
	v.SetDefault("pos.company_name", "VinPOS Global LLC")
	v.SetDefault("pos.company_tax_id", "9988776655")
	v.SetDefault("pos.company_phone", "+994 50 123 45 67")
	v.SetDefault("pos.theme_color", "blue")
	v.SetDefault("pos.base_font_size", 14)
	v.SetDefault("pos.printer_brand", "Epson")
	v.SetDefault("pos.printer_ip", "192.168.1.100")
}
