package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"PORT"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DirectURL    string `mapstructure:"DIRECT_URL"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	MailDriver       string `mapstructure:"MAIL_DRIVER"`
	MailHost         string `mapstructure:"MAIL_HOST"`
	MailPort         int    `mapstructure:"MAIL_PORT"`
	MailUser         string `mapstructure:"MAIL_USER"`
	MailPass         string `mapstructure:"MAIL_PASS"`
	BookingEmailFrom string `mapstructure:"BOOKING_EMAIL_FROM"`
	EmailFrom        string `mapstructure:"EMAIL_FROM"`
	BookingLogoURL   string `mapstructure:"BOOKING_EMAIL_LOGO_URL"`
	LogoURLFallback  string `mapstructure:"LOGO_URL"`
	EmailAssetsDir   string `mapstructure:"EMAIL_ASSETS_DIR"`
	DefaultLocale    string `mapstructure:"DEFAULT_LOCALE"`
	RedisURL         string `mapstructure:"REDIS_URL"`

	PublicSiteBaseURL          string `mapstructure:"PUBLIC_SITE_BASE_URL"`
	PublicSiteRevalidateURL    string `mapstructure:"PUBLIC_SITE_REVALIDATE_URL"`
	PublicSiteRevalidateSecret string `mapstructure:"PUBLIC_SITE_REVALIDATE_SECRET"`

	StorageDriver          string `mapstructure:"STORAGE_DRIVER"`
	SupabaseURL            string `mapstructure:"SUPABASE_URL"`
	SupabaseServiceRoleKey string `mapstructure:"SUPABASE_SERVICE_ROLE_KEY"`
	SupabaseStorageBucket  string `mapstructure:"SUPABASE_STORAGE_BUCKET"`
	S3Endpoint             string `mapstructure:"S3_ENDPOINT"`
	S3Region               string `mapstructure:"S3_REGION"`
	S3Bucket               string `mapstructure:"S3_BUCKET"`
	S3AccessKeyID          string `mapstructure:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey      string `mapstructure:"S3_SECRET_ACCESS_KEY"`
	S3PublicBaseURL        string `mapstructure:"S3_PUBLIC_BASE_URL"`
	UploadMaxWidth         uint   `mapstructure:"UPLOAD_MAX_WIDTH"`
	UploadRatePerMinute    int    `mapstructure:"UPLOAD_RATE_PER_MINUTE"`

	JWTSecret          string   `mapstructure:"JWT_SECRET"`
	GoogleClientID     string   `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string   `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string   `mapstructure:"GOOGLE_REDIRECT_URL"`
	AdminEmailDomain   string   `mapstructure:"ADMIN_EMAIL_DOMAIN"`
	AdminEmails        []string `mapstructure:"ADMIN_EMAILS"`
	FrontendURL        string   `mapstructure:"FRONTEND_URL"`
	EnableCORS         bool     `mapstructure:"ENABLE_CORS"`
	CORSOrigins        []string `mapstructure:"CORS_ORIGINS"`

	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`

	PromotionSchedule string        `mapstructure:"PROMOTION_SCHEDULE"`
	PromotionLead     time.Duration `mapstructure:"PROMOTION_LEAD"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var boundEnv = []string{
	"DATABASE_URL",
	"DIRECT_URL",
	"MAIL_HOST",
	"MAIL_USER",
	"MAIL_PASS",
	"BOOKING_EMAIL_FROM",
	"EMAIL_FROM",
	"BOOKING_EMAIL_LOGO_URL",
	"LOGO_URL",
	"PUBLIC_SITE_BASE_URL",
	"PUBLIC_SITE_REVALIDATE_URL",
	"PUBLIC_SITE_REVALIDATE_SECRET",
	"SUPABASE_URL",
	"SUPABASE_SERVICE_ROLE_KEY",
	"SUPABASE_STORAGE_BUCKET",
	"S3_ENDPOINT",
	"S3_BUCKET",
	"S3_ACCESS_KEY_ID",
	"S3_SECRET_ACCESS_KEY",
	"S3_PUBLIC_BASE_URL",
	"REDIS_URL",
	"JWT_SECRET",
	"GOOGLE_CLIENT_ID",
	"GOOGLE_CLIENT_SECRET",
	"ADMIN_EMAIL_DOMAIN",
	"ADMIN_EMAILS",
	"ENABLE_CORS",
	"CORS_ORIGINS",
	"DISCORD_BOT_TOKEN",
	"DISCORD_NOTIFICATIONS_CHANNEL_ID",
}

// LoadConfig reads a .env file when one exists, then the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_PATH", "car-rental.db")
	v.SetDefault("MAIL_DRIVER", "smtp")
	v.SetDefault("MAIL_PORT", 587)
	v.SetDefault("EMAIL_ASSETS_DIR", "public")
	v.SetDefault("DEFAULT_LOCALE", "en")
	v.SetDefault("STORAGE_DRIVER", "supabase")
	v.SetDefault("SUPABASE_STORAGE_BUCKET", "cars")
	v.SetDefault("S3_REGION", "eu-central-1")
	v.SetDefault("UPLOAD_MAX_WIDTH", 1600)
	v.SetDefault("UPLOAD_RATE_PER_MINUTE", 30)
	v.SetDefault("GOOGLE_REDIRECT_URL", "http://127.0.0.1:8080/auth/google/callback")
	v.SetDefault("FRONTEND_URL", "http://127.0.0.1:3000")
	v.SetDefault("CORS_ORIGINS", []string{"http://127.0.0.1:3000"})
	v.SetDefault("PROMOTION_SCHEDULE", "0 * * * * *")
	v.SetDefault("PROMOTION_LEAD", 48*time.Hour)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	for _, key := range boundEnv {
		v.BindEnv(key)
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.AdminEmails = splitList(cfg.AdminEmails)
	cfg.CORSOrigins = splitList(cfg.CORSOrigins)

	return &cfg, nil
}

// Comma separated env values arrive as a single element.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// MailFrom is the sender address: BOOKING_EMAIL_FROM, then EMAIL_FROM, then MAIL_USER.
func (c *Config) MailFrom() string {
	for _, v := range []string{c.BookingEmailFrom, c.EmailFrom, c.MailUser} {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// LogoURL is BOOKING_EMAIL_LOGO_URL, then LOGO_URL.
func (c *Config) LogoURL() string {
	if s := strings.TrimSpace(c.BookingLogoURL); s != "" {
		return s
	}
	return strings.TrimSpace(c.LogoURLFallback)
}

// MailConfigured reports whether SMTP credentials are present.
func (c *Config) MailConfigured() bool {
	return c.MailHost != "" && c.MailUser != "" && c.MailFrom() != ""
}

// MigrationDSN prefers the direct (non-pooled) connection for schema changes.
func (c *Config) MigrationDSN() string {
	if c.DirectURL != "" {
		return c.DirectURL
	}
	return c.DatabaseURL
}
