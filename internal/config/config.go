package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
)

// Configuration is the full runtime configuration, loaded from environment
// variables and an optional config file via viper.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment"`
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	Document   DocumentConfig   `mapstructure:"document"`
	RateCard   RateCardConfig   `mapstructure:"ratecard"`
}

type DeploymentConfig struct {
	Mode types.DeploymentMode `mapstructure:"mode"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type LoggingConfig struct {
	Level          types.LogLevel `mapstructure:"level"`
	FluentdEnabled bool           `mapstructure:"fluentd_enabled"`
	FluentdHost    string         `mapstructure:"fluentd_host"`
	FluentdPort    int            `mapstructure:"fluentd_port"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int    `mapstructure:"max_conns"`
}

type DocumentConfig struct {
	// CompanyName and CompanyAddress appear on rendered documents.
	CompanyName    string `mapstructure:"company_name"`
	CompanyAddress string `mapstructure:"company_address"`
	// GSTNumber is printed on quotations; the tax rate itself is fixed.
	GSTNumber string `mapstructure:"gst_number"`
}

type RateCardConfig struct {
	// CacheTTLSeconds bounds staleness of the in-process rate cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`
	// DebounceMillis is the quiescence window for inline rate edits.
	DebounceMillis int `mapstructure:"debounce_millis"`
}

// NewConfig loads configuration from the environment (QUOTEDESK_* variables)
// and an optional ./config.yaml, with defaults applied.
func NewConfig() (*Configuration, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("QUOTEDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithHint("Failed to read config file").
				Mark(ierr.ErrInternal)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to parse configuration").
			Mark(ierr.ErrInternal)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeServer))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("logging.fluentd_enabled", false)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "quotedesk")
	v.SetDefault("postgres.dbname", "quotedesk")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("document.company_name", "Quotedesk Interiors")
	v.SetDefault("ratecard.cache_ttl_seconds", 300)
	v.SetDefault("ratecard.debounce_millis", 500)
}

// GetDefaultConfig returns the configuration used by tests and scripts that
// do not go through NewConfig.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Postgres: PostgresConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "quotedesk",
			DBName:  "quotedesk",
			SSLMode: "disable",
		},
		Document: DocumentConfig{CompanyName: "Quotedesk Interiors"},
		RateCard: RateCardConfig{CacheTTLSeconds: 300, DebounceMillis: 500},
	}
}
