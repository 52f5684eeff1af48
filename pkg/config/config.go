package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Per-upstream credential blocks. Services receive these explicitly;
// nothing below pkg/config reads the process environment.

type YouTubeConfig struct {
	APIKey    string
	ChannelID string
}

type MailchimpConfig struct {
	APIKey  string
	Server  string // datacenter prefix, e.g. "us21"
	ListID  string
	BaseURL string // override for tests; empty means the real API
}

type MemberfulConfig struct {
	Subdomain string
	APIKey    string
	BaseURL   string // override for tests
}

type DiscordConfig struct {
	BotToken string
	GuildID  string
	BaseURL  string // override for tests
}

type AnalyticsConfig struct {
	ClientEmail string
	PrivateKey  string // PEM, possibly with literal \n from the env file
	PropertyID  string
}

type HistoryConfig struct {
	Driver      string // "file" (default) or "postgres"
	FilePath    string
	PostgresURL string
}

type Config struct {
	Port      string
	StaticDir string

	YouTube   YouTubeConfig
	Mailchimp MailchimpConfig
	Memberful MemberfulConfig
	Discord   DiscordConfig
	Analytics AnalyticsConfig
	History   HistoryConfig
}

// Load reads .env (when present) and assembles the config. Missing
// credentials are not an error here: each fetcher reports its own
// failure when called, so one unconfigured upstream does not take the
// whole service down.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := &Config{
		Port:      getenvDefault("PORT", "5000"),
		StaticDir: getenvDefault("STATIC_DIR", "public"),
		YouTube: YouTubeConfig{
			APIKey:    firstEnv("GOOGLE_API_KEY", "YOUTUBE_API_KEY"),
			ChannelID: os.Getenv("YOUTUBE_CHANNEL_ID"),
		},
		Mailchimp: MailchimpConfig{
			APIKey: os.Getenv("MAILCHIMP_API_KEY"),
			Server: os.Getenv("MAILCHIMP_SERVER"),
			ListID: os.Getenv("MAILCHIMP_LIST_ID"),
		},
		Memberful: MemberfulConfig{
			Subdomain: os.Getenv("MEMBERFUL_SUBDOMAIN"),
			APIKey:    os.Getenv("MEMBERFUL_API_KEY"),
		},
		Discord: DiscordConfig{
			BotToken: os.Getenv("DISCORD_BOT_TOKEN"),
			GuildID:  os.Getenv("DISCORD_GUILD_ID"),
		},
		Analytics: AnalyticsConfig{
			ClientEmail: os.Getenv("GA_CLIENT_EMAIL"),
			PrivateKey:  strings.ReplaceAll(os.Getenv("GA_PRIVATE_KEY"), `\n`, "\n"),
			PropertyID:  os.Getenv("GA_PROPERTY_ID"),
		},
		History: HistoryConfig{
			Driver:      getenvDefault("HISTORY_DRIVER", "file"),
			FilePath:    getenvDefault("HISTORY_FILE", "data/history.json"),
			PostgresURL: os.Getenv("POSTGRES_URL"),
		},
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
