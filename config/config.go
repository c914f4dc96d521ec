package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Quick-event specifics
	Parser         ParserConfig
	Profiles       ProfilesConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig carries the quick-add parsing preferences. They are passed
// explicitly into the pipeline's entry point; nothing reads them as ambient
// state during a parse.
type ParserConfig struct {
	Timezone               string
	DefaultDurationMinutes int
	GuestAliases           string // "name=email, name=email"
}

// ProfileConfig selects which calendar a query lands on. BaseURL is the
// pre-filled event page, Src an optional source-calendar id, Keyword the
// invocation word that picks this profile.
type ProfileConfig struct {
	Keyword string
	BaseURL string
	Src     string
}

type ProfilesConfig struct {
	Personal ProfileConfig
	Work     ProfileConfig
	Other    ProfileConfig
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

const (
	DefaultTimezone        = "America/Denver"
	DefaultDurationMinutes = 60
)

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parser preferences
	cfg.Parser.Timezone = strings.TrimSpace(viper.GetString("parser.timezone"))
	if cfg.Parser.Timezone == "" {
		cfg.Parser.Timezone = DefaultTimezone
	}
	// Malformed values arrive as 0 through viper; fall back to the hardcoded default.
	cfg.Parser.DefaultDurationMinutes = viper.GetInt("parser.default_duration_minutes")
	if cfg.Parser.DefaultDurationMinutes <= 0 {
		cfg.Parser.DefaultDurationMinutes = DefaultDurationMinutes
	}
	cfg.Parser.GuestAliases = viper.GetString("parser.guest_aliases")
	if aliases := viper.GetString("guest_aliases"); aliases != "" {
		cfg.Parser.GuestAliases = aliases
	}

	// Calendar profiles
	cfg.Profiles.Personal = loadProfile("personal")
	cfg.Profiles.Work = loadProfile("work")
	cfg.Profiles.Other = loadProfile("other")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Google Calendar (optional API insert)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func loadProfile(name string) ProfileConfig {
	return ProfileConfig{
		Keyword: viper.GetString("profiles." + name + ".keyword"),
		BaseURL: strings.TrimSpace(viper.GetString("profiles." + name + ".base_url")),
		Src:     strings.TrimSpace(viper.GetString("profiles." + name + ".src")),
	}
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("parser.timezone", DefaultTimezone)
	viper.SetDefault("parser.default_duration_minutes", DefaultDurationMinutes)
	viper.SetDefault("parser.guest_aliases", "")

	viper.SetDefault("profiles.personal.keyword", "event")
	viper.SetDefault("profiles.personal.base_url", "https://calendar.google.com/calendar/u/0/r/eventedit")
	viper.SetDefault("profiles.work.keyword", "wevent")
	viper.SetDefault("profiles.work.base_url", "https://calendar.google.com/calendar/u/1/r/eventedit")
	viper.SetDefault("profiles.other.keyword", "oevent")
	viper.SetDefault("profiles.other.base_url", "https://calendar.google.com/calendar/u/2/r/eventedit")
}
