package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all process configuration, read once at startup and injected
// into the components that need it.
type Config struct {
	Server   ServerConfig
	Supabase SupabaseConfig
	OpenAI   OpenAIConfig
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string
}

// SupabaseConfig holds the hosted data-store settings. DatabaseURL takes
// precedence as the connection string; when absent the DSN is derived from the
// project URL and the strongest available key.
type SupabaseConfig struct {
	URL         string
	DatabaseURL string
	AnonKey     string
	ServiceKey  string
}

// OpenAIConfig holds the completion-API settings. SummaryModel drives the
// weekly summary pipeline, ChatModel the interactive chat.
type OpenAIConfig struct {
	APIKey       string
	SummaryModel string
	ChatModel    string
}

// Load reads configuration from the environment and validates the parts the
// process cannot run without.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8000")
	v.SetDefault("OPENAI_MODEL", "gpt-4")
	v.SetDefault("OPENAI_CHAT_MODEL", "gpt-4o-mini")

	anonKey := v.GetString("SUPABASE_ANON_KEY")
	if anonKey == "" {
		anonKey = v.GetString("SUPABASE_KEY")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
		},
		Supabase: SupabaseConfig{
			URL:         strings.TrimSpace(v.GetString("SUPABASE_URL")),
			DatabaseURL: strings.TrimSpace(v.GetString("SUPABASE_DB_URL")),
			AnonKey:     strings.TrimSpace(anonKey),
			ServiceKey:  strings.TrimSpace(v.GetString("SUPABASE_SERVICE_ROLE_KEY")),
		},
		OpenAI: OpenAIConfig{
			APIKey:       v.GetString("OPENAI_API_KEY"),
			SummaryModel: v.GetString("OPENAI_MODEL"),
			ChatModel:    v.GetString("OPENAI_CHAT_MODEL"),
		},
	}

	if cfg.Supabase.URL == "" && cfg.Supabase.DatabaseURL == "" {
		return nil, fmt.Errorf("missing SUPABASE_URL or SUPABASE_DB_URL in environment")
	}
	if cfg.Supabase.DatabaseURL == "" && cfg.Supabase.AnonKey == "" && cfg.Supabase.ServiceKey == "" {
		return nil, fmt.Errorf("missing SUPABASE_ANON_KEY (or SUPABASE_KEY) or SUPABASE_SERVICE_ROLE_KEY in environment")
	}

	return cfg, nil
}

// DSN returns the postgres connection string for the hosted store. The service
// key is preferred over the anon key when the DSN has to be derived.
func (c SupabaseConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	host := strings.TrimPrefix(c.URL, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimSuffix(host, "/")
	key := c.ServiceKey
	if key == "" {
		key = c.AnonKey
	}
	return fmt.Sprintf("postgres://postgres:%s@db.%s:5432/postgres", key, host)
}
