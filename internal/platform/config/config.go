package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL           string   `mapstructure:"PGSQL_URL" validate:"required"`
	Port                  string   `mapstructure:"PORT" validate:"required,numeric"`
	IsProduction          bool     `mapstructure:"IS_PRODUCTION"`
	JWTSecret             string   `mapstructure:"JWT_SECRET" validate:"required,min=16"`
	JWTIssuer             string   `mapstructure:"JWT_ISSUER"`
	RateLimit             string   `mapstructure:"RATE_LIMIT" validate:"required"`
	CORSAllowedOrigins    []string `mapstructure:"CORS_ALLOWED_ORIGINS" validate:"dive,required"`
	MigrationsPath        string   `mapstructure:"MIGRATIONS_PATH" validate:"required"`
	ChartOfAccountsFile   string   `mapstructure:"CHART_OF_ACCOUNTS_FILE"`
	JournalEntryTaxPolicy string   `mapstructure:"JOURNAL_ENTRY_TAX_POLICY" validate:"omitempty,oneof=zero-tax control-account"`
	DBMaxConns            int32    `mapstructure:"DB_MAX_CONNS" validate:"gte=0,lte=1000"`

	// ChartOfAccounts maps account IDs to category labels, read from ChartOfAccountsFile.
	ChartOfAccounts map[uuid.UUID]string `validate:"-"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "money-valuation")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("CHART_OF_ACCOUNTS_FILE", "")
	v.SetDefault("JOURNAL_ENTRY_TAX_POLICY", "zero-tax")
	v.SetDefault("DB_MAX_CONNS", 0)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:           v.GetString("PGSQL_URL"),
		Port:                  v.GetString("PORT"),
		IsProduction:          v.GetBool("IS_PRODUCTION"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		JWTIssuer:             v.GetString("JWT_ISSUER"),
		RateLimit:             v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		MigrationsPath:        v.GetString("MIGRATIONS_PATH"),
		ChartOfAccountsFile:   v.GetString("CHART_OF_ACCOUNTS_FILE"),
		JournalEntryTaxPolicy: v.GetString("JOURNAL_ENTRY_TAX_POLICY"),
		DBMaxConns:            v.GetInt32("DB_MAX_CONNS"),
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.ChartOfAccountsFile != "" {
		chart, err := LoadChartOfAccounts(cfg.ChartOfAccountsFile)
		if err != nil {
			return nil, err
		}
		cfg.ChartOfAccounts = chart
	}

	return cfg, nil
}

// LoadChartOfAccounts reads a YAML, JSON or TOML file holding a `chart_of_accounts` table of
// account ID to category label.
func LoadChartOfAccounts(path string) (map[uuid.UUID]string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read chart of accounts file '%s': %w", path, err)
	}

	raw := v.GetStringMapString("chart_of_accounts")
	chart := make(map[uuid.UUID]string, len(raw))
	for key, label := range raw {
		id, err := uuid.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("chart of accounts key '%s' is not a valid account ID: %w", key, err)
		}
		if strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("chart of accounts entry '%s' has an empty label", key)
		}
		chart[id] = label
	}
	return chart, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
