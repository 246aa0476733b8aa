package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string   `mapstructure:"PORT"`
	Env               string   `mapstructure:"ENV"`
	StoreDriver       string   `mapstructure:"STORE_DRIVER"`
	StoreDir          string   `mapstructure:"STORE_DIR"`
	DatabaseURL       string   `mapstructure:"DATABASE_URL"`
	DBMaxConns        int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns        int32    `mapstructure:"DB_MIN_CONNS"`
	JWTSecret         string   `mapstructure:"JWT_SECRET"`
	TokenTTLHours     int      `mapstructure:"TOKEN_TTL_HOURS"`
	CORSOrigins       []string `mapstructure:"CORS_ORIGINS"`
	GeminiAPIKey      string   `mapstructure:"GEMINI_API_KEY"`
	GeminiModel       string   `mapstructure:"GEMINI_MODEL"`
	RazorpayKeyID     string   `mapstructure:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string   `mapstructure:"RAZORPAY_KEY_SECRET"`
	RateLimitRPS      float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int      `mapstructure:"RATE_LIMIT_BURST"`
	ChatChunkDelayMS  int      `mapstructure:"CHAT_CHUNK_DELAY_MS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("STORE_DRIVER", "file")
	v.SetDefault("STORE_DIR", "data")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("TOKEN_TTL_HOURS", 24)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 100)
	v.SetDefault("CHAT_CHUNK_DELAY_MS", 50)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("STORE_DRIVER")
	v.BindEnv("STORE_DIR")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("TOKEN_TTL_HOURS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("GEMINI_MODEL")
	v.BindEnv("RAZORPAY_KEY_ID")
	v.BindEnv("RAZORPAY_KEY_SECRET")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("CHAT_CHUNK_DELAY_MS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.IsDev() && cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set; using an insecure development secret.")
		log.Println("WARNING: Set JWT_SECRET before running in production.")
		cfg.JWTSecret = "dev-insecure-secret"
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GeminiEnabled reports whether live Gemini collaborators should be used
// instead of the static stubs.
func (c *Config) GeminiEnabled() bool {
	return c.GeminiAPIKey != ""
}

// Validate checks that the configuration is safe to run. Production requires
// a real JWT secret, and the postgres store driver requires a database URL.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "file", "postgres":
	default:
		return fmt.Errorf("STORE_DRIVER must be \"file\" or \"postgres\", got %q", c.StoreDriver)
	}
	if c.StoreDriver == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER is \"postgres\"")
	}
	if c.StoreDriver == "file" && c.StoreDir == "" {
		return fmt.Errorf("STORE_DIR is required when STORE_DRIVER is \"file\"")
	}
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == "dev-insecure-secret") {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	if c.TokenTTLHours <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive, got %d", c.TokenTTLHours)
	}
	if c.RazorpayKeyID != "" && c.RazorpayKeySecret == "" {
		return fmt.Errorf("RAZORPAY_KEY_SECRET is required when RAZORPAY_KEY_ID is set")
	}
	return nil
}
