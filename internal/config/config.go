package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Session   SessionConfig
	Printer   PrinterConfig
	Render    RenderConfig
	Upload    UploadConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type SessionConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

type PrinterConfig struct {
	Type       string // usb, network, file, none
	USBPath    string
	Address    string
	PaperWidth int // characters per line: 32 for 58mm, 48 for 80mm
}

type RenderConfig struct {
	Width    int
	Scale    float64
	FontPath string
}

type UploadConfig struct {
	MaxLogoSize int64
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "fuelbill-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("SESSION_TTL_MINUTES", 120)
	viper.SetDefault("SESSION_CLEANUP_MINUTES", 5)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_PAPER_WIDTH", 32)
	viper.SetDefault("RENDER_WIDTH", 300)
	viper.SetDefault("RENDER_SCALE", 2.0)
	viper.SetDefault("RENDER_FONT_PATH", "")
	viper.SetDefault("UPLOAD_MAX_LOGO_SIZE", 2097152)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Session: SessionConfig{
			TTL:             time.Duration(viper.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
			CleanupInterval: time.Duration(viper.GetInt("SESSION_CLEANUP_MINUTES")) * time.Minute,
		},
		Printer: PrinterConfig{
			Type:       viper.GetString("PRINTER_TYPE"),
			USBPath:    viper.GetString("PRINTER_USB_PATH"),
			Address:    viper.GetString("PRINTER_ADDRESS"),
			PaperWidth: viper.GetInt("PRINTER_PAPER_WIDTH"),
		},
		Render: RenderConfig{
			Width:    viper.GetInt("RENDER_WIDTH"),
			Scale:    viper.GetFloat64("RENDER_SCALE"),
			FontPath: viper.GetString("RENDER_FONT_PATH"),
		},
		Upload: UploadConfig{
			MaxLogoSize: viper.GetInt64("UPLOAD_MAX_LOGO_SIZE"),
		},
	}
}
