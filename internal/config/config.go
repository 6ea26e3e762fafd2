// Package config provides configuration for the application
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/glossarygateway/backend/internal/models"
	"github.com/glossarygateway/backend/internal/translation"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	defaultDeepLOptions   = "tag_handling=xml&ignore_tags=ignore&split_sentences=nonewlines"
	defaultDeepLTimeout   = 30 * time.Second
	defaultGlossaryName   = "glossary"
	languagePairSeparator = ":"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	DeepL    DeepLConfig
	Glossary GlossaryConfig
	APIKey   string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// DeepLConfig holds the translation provider settings
type DeepLConfig struct {
	AuthKey        string
	BaseURI        string
	BaseURIFree    string
	DefaultOptions url.Values
	Timeout        time.Duration
	IgnoredTerms   []string
}

// GlossaryConfig holds glossary settings
type GlossaryConfig struct {
	LanguagePairs []models.LanguagePair
	// SortByLanguage is the language whose text orders entry aggregates in listings
	SortByLanguage string
	// NamePrefix prefixes the name of every glossary created at the provider
	NamePrefix string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Database configuration
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return nil, fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	cfg.CORS.AllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	}

	// Admin API key, admin routes are open when empty
	cfg.APIKey = os.Getenv("API_KEY")

	if err := loadDeepL(&cfg.DeepL); err != nil {
		return nil, err
	}
	if err := loadGlossary(&cfg.Glossary); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadDeepL(cfg *DeepLConfig) error {
	cfg.AuthKey = os.Getenv("DEEPL_AUTH_KEY")
	if cfg.AuthKey == "" {
		return fmt.Errorf("DEEPL_AUTH_KEY is required")
	}

	cfg.BaseURI = os.Getenv("DEEPL_BASE_URI")
	if cfg.BaseURI == "" {
		cfg.BaseURI = translation.DefaultBaseURI
	}
	cfg.BaseURIFree = os.Getenv("DEEPL_BASE_URI_FREE")
	if cfg.BaseURIFree == "" {
		cfg.BaseURIFree = translation.DefaultBaseURIFree
	}

	options, ok := os.LookupEnv("DEEPL_DEFAULT_OPTIONS")
	if !ok {
		options = defaultDeepLOptions
	}
	defaultOptions, err := url.ParseQuery(options)
	if err != nil {
		return fmt.Errorf("invalid DEEPL_DEFAULT_OPTIONS: %w", err)
	}
	cfg.DefaultOptions = defaultOptions

	cfg.Timeout = defaultDeepLTimeout
	if timeoutStr := os.Getenv("DEEPL_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return fmt.Errorf("invalid DEEPL_TIMEOUT: %w", err)
		}
		if timeout < 0 {
			return fmt.Errorf("invalid DEEPL_TIMEOUT: must not be negative")
		}
		cfg.Timeout = timeout
	}

	cfg.IgnoredTerms = splitList(os.Getenv("DEEPL_IGNORED_TERMS"))
	return nil
}

func loadGlossary(cfg *GlossaryConfig) error {
	pairs, err := ParseLanguagePairs(os.Getenv("GLOSSARY_LANGUAGE_PAIRS"))
	if err != nil {
		return fmt.Errorf("invalid GLOSSARY_LANGUAGE_PAIRS: %w", err)
	}
	cfg.LanguagePairs = pairs

	cfg.SortByLanguage = strings.ToUpper(strings.TrimSpace(os.Getenv("GLOSSARY_SORT_BY_LANGUAGE")))
	if cfg.SortByLanguage == "" && len(pairs) > 0 {
		cfg.SortByLanguage = pairs[0].Source
	}

	cfg.NamePrefix = os.Getenv("GLOSSARY_NAME_PREFIX")
	if cfg.NamePrefix == "" {
		cfg.NamePrefix = defaultGlossaryName
	}
	return nil
}

// ParseLanguagePairs parses a comma-separated list of SOURCE:TARGET pairs.
// Codes are upper-cased and must be valid BCP 47 primary language subtags, e.g. EN but not EN-GB.
func ParseLanguagePairs(value string) ([]models.LanguagePair, error) {
	var pairs []models.LanguagePair
	for _, item := range splitList(value) {
		source, target, found := strings.Cut(item, languagePairSeparator)
		if !found {
			return nil, fmt.Errorf("language pair %q must have the form SOURCE%sTARGET", item, languagePairSeparator)
		}

		pair := models.LanguagePair{
			Source: strings.ToUpper(strings.TrimSpace(source)),
			Target: strings.ToUpper(strings.TrimSpace(target)),
		}
		for _, code := range []string{pair.Source, pair.Target} {
			if _, err := language.Parse(code); err != nil {
				return nil, fmt.Errorf("invalid language %q in pair %q: %w", code, item, err)
			}
			// glossaries are keyed by primary subtag only
			if translation.PrimarySubtag(code) != code {
				return nil, fmt.Errorf("language %q in pair %q must not carry a region or script subtag", code, item)
			}
		}
		if strings.EqualFold(pair.Source, pair.Target) {
			return nil, fmt.Errorf("language pair %q translates a language into itself", item)
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// Gateway returns the immutable translation gateway configuration
func (c *Config) Gateway() translation.Config {
	return translation.Config{
		AuthKey:        c.DeepL.AuthKey,
		BaseURI:        c.DeepL.BaseURI,
		BaseURIFree:    c.DeepL.BaseURIFree,
		DefaultOptions: c.DeepL.DefaultOptions,
		IgnoredTerms:   c.DeepL.IgnoredTerms,
		LanguagePairs:  c.Glossary.LanguagePairs,
		Timeout:        c.DeepL.Timeout,
	}
}

// splitList splits a comma-separated value, dropping blank items
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
