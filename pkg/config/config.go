package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// EditScope controls which roster members a dashboard visitor may update.
type EditScope string

const (
	// EditScopeSelf limits updates to the member matching the token's email claim.
	EditScopeSelf EditScope = "self"
	// EditScopeAny lets any holder of a valid token update any member of the startup.
	EditScopeAny EditScope = "any"
)

// Config holds all process configuration, loaded once at startup.
type Config struct {
	AirtableAPIKey   string        `env:"AIRTABLE_API_KEY"`
	AirtableBaseID   string        `env:"AIRTABLE_BASE_ID"`
	JWTSecret        string        `env:"JWT_SECRET"`
	ServerPort       string        `env:"SERVER_PORT" envDefault:"3000"`
	BaseURL          string        `env:"BASE_URL"`
	MagicLinkTTL     time.Duration `env:"MAGIC_LINK_TTL" envDefault:"15m"`
	EditScope        EditScope     `env:"EDIT_SCOPE" envDefault:"self"`
	StartupsTable    string        `env:"STARTUPS_TABLE" envDefault:"UTS Startups"`
	TeamMembersTable string        `env:"TEAM_MEMBERS_TABLE" envDefault:"Team members"`
	SendgridAPIKey   string        `env:"SENDGRID_API_KEY"`
	SenderEmail      string        `env:"SENDGRID_SENDER_EMAIL"`
	SenderName       string        `env:"SENDGRID_SENDER_NAME" envDefault:"FounderDesk"`
	CORSOrigins      string        `env:"CORS_ALLOWED_ORIGINS"`
	CORSCredentials  bool          `env:"CORS_ALLOW_CREDENTIALS"`
}

// Load parses configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if strings.TrimSpace(cfg.AirtableAPIKey) == "" {
		return Config{}, fmt.Errorf("AIRTABLE_API_KEY is required")
	}
	if strings.TrimSpace(cfg.AirtableBaseID) == "" {
		return Config{}, fmt.Errorf("AIRTABLE_BASE_ID is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.MagicLinkTTL <= 0 {
		return Config{}, fmt.Errorf("MAGIC_LINK_TTL must be positive")
	}

	switch cfg.EditScope {
	case EditScopeSelf, EditScopeAny:
	default:
		return Config{}, fmt.Errorf("EDIT_SCOPE must be %q or %q", EditScopeSelf, EditScopeAny)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.ServerPort
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return cfg, nil
}

// EmailEnabled reports whether outgoing email is configured.
func (c Config) EmailEnabled() bool {
	return c.SendgridAPIKey != "" && c.SenderEmail != ""
}

// AllowedOrigins splits the CORS origin list, defaulting to the wildcard.
func (c Config) AllowedOrigins() []string {
	if c.CORSOrigins == "" {
		return []string{"*"}
	}
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
