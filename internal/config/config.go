package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported mail provider identifiers.
const (
	MailProviderSMTP    = "smtp"
	MailProviderMailgun = "mailgun"
	MailProviderLog     = "log"
)

// Config holds runtime configuration values for the contact API service.
type Config struct {
	AppName string
	AppEnv  string
	AppPort string

	DatabaseURL string
	RedisURL    string
	NATSServer  string
	NATSSubject string

	CORSAllowOrigins string

	MailProvider  string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	MailgunDomain string
	MailgunAPIKey string

	FromAddress   string
	FromName      string
	OperatorEmail string
	DashboardURL  string

	ExcerptLimit    int
	DedupeTTL       time.Duration
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CONTACT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Wawasan Contact API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("nats.subject", "contact.submitted")
	v.SetDefault("cors.allow_origins", "*")
	v.SetDefault("mail.provider", MailProviderLog)
	v.SetDefault("mail.smtp_port", 587)
	v.SetDefault("mail.from_name", "Wawasan Digital")
	v.SetDefault("mail.excerpt_limit", 300)
	v.SetDefault("dedupe.ttl", "5m")
	v.SetDefault("rate_limit.max", 5)
	v.SetDefault("rate_limit.window", "1m")

	dedupeTTL, err := time.ParseDuration(v.GetString("dedupe.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid dedupe ttl: %w", err)
	}

	rateWindow, err := time.ParseDuration(v.GetString("rate_limit.window"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid rate limit window: %w", err)
	}

	cfg := Config{
		AppName:          v.GetString("app.name"),
		AppEnv:           v.GetString("app.env"),
		AppPort:          v.GetString("app.port"),
		DatabaseURL:      v.GetString("database.url"),
		RedisURL:         v.GetString("redis.url"),
		NATSServer:       v.GetString("nats.url"),
		NATSSubject:      v.GetString("nats.subject"),
		CORSAllowOrigins: v.GetString("cors.allow_origins"),
		MailProvider:     strings.ToLower(v.GetString("mail.provider")),
		SMTPHost:         v.GetString("mail.smtp_host"),
		SMTPPort:         v.GetInt("mail.smtp_port"),
		SMTPUsername:     v.GetString("mail.smtp_username"),
		SMTPPassword:     v.GetString("mail.smtp_password"),
		MailgunDomain:    v.GetString("mail.mailgun_domain"),
		MailgunAPIKey:    v.GetString("mail.mailgun_api_key"),
		FromAddress:      v.GetString("mail.from_address"),
		FromName:         v.GetString("mail.from_name"),
		OperatorEmail:    v.GetString("mail.operator_email"),
		DashboardURL:     v.GetString("mail.dashboard_url"),
		ExcerptLimit:     v.GetInt("mail.excerpt_limit"),
		DedupeTTL:        dedupeTTL,
		RateLimitMax:     v.GetInt("rate_limit.max"),
		RateLimitWindow:  rateWindow,
	}

	switch cfg.MailProvider {
	case MailProviderSMTP, MailProviderMailgun, MailProviderLog:
	default:
		return Config{}, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}

	if cfg.OperatorEmail == "" {
		return Config{}, fmt.Errorf("operator email must be provided")
	}

	if cfg.FromAddress == "" {
		return Config{}, fmt.Errorf("mail sender address must be provided")
	}

	if cfg.ExcerptLimit <= 0 {
		cfg.ExcerptLimit = 300
	}

	return cfg, nil
}
