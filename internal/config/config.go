// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	BugzillaURL    string
	PhabricatorURL string
	ListenAddr     string
	DBPath         string
	LogLevel       slog.Level
}

// Load reads configuration from environment variables and returns a validated Config.
// Variables are first seeded from the dotenv file named by LANDOUI_ENV_FILE (default
// ".env"); variables already present in the environment take precedence.
//
// Required: LANDOUI_BUGZILLA_URL, LANDOUI_PHABRICATOR_URL. Both must be absolute
// http(s) URLs; a trailing slash is dropped.
// Optional variables with defaults: LANDOUI_LISTEN_ADDR (127.0.0.1:8080),
// LANDOUI_DB_PATH (landoui.db), LANDOUI_LOG_LEVEL (info).
func Load() (*Config, error) {
	bugzillaURL, phabricatorURL, err := LoadBaseURLs("", "")
	if err != nil {
		return nil, err
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("LANDOUI_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "landoui.db"
	if v, ok := os.LookupEnv("LANDOUI_DB_PATH"); ok {
		dbPath = v
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("LANDOUI_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("LANDOUI_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	return &Config{
		BugzillaURL:    bugzillaURL,
		PhabricatorURL: phabricatorURL,
		ListenAddr:     listenAddr,
		DBPath:         dbPath,
		LogLevel:       logLevel,
	}, nil
}

// LoadBaseURLs seeds the environment from the dotenv file and returns the
// validated Bugzilla and Phabricator base URLs. A non-empty override replaces
// the corresponding environment variable.
func LoadBaseURLs(bugzillaOverride, phabricatorOverride string) (bugzillaURL, phabricatorURL string, err error) {
	if err := loadEnvFile(); err != nil {
		return "", "", err
	}

	bugzillaURL, err = baseURL("LANDOUI_BUGZILLA_URL", bugzillaOverride)
	if err != nil {
		return "", "", err
	}

	phabricatorURL, err = baseURL("LANDOUI_PHABRICATOR_URL", phabricatorOverride)
	if err != nil {
		return "", "", err
	}

	return bugzillaURL, phabricatorURL, nil
}

// loadEnvFile copies entries from the dotenv file into the environment without
// overriding existing variables. A missing default file is not an error; a
// missing file named explicitly by LANDOUI_ENV_FILE is.
func loadEnvFile() error {
	path := os.Getenv("LANDOUI_ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("LANDOUI_ENV_FILE %q could not be loaded: %w", path, err)
}

func baseURL(key, override string) (string, error) {
	v := strings.TrimSpace(override)
	if v == "" {
		v = strings.TrimSpace(os.Getenv(key))
	}
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}

	if _, err := ParseHTTPURL(v); err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}

	return strings.TrimRight(v, "/"), nil
}

// ParseHTTPURL parses v and requires it to be an absolute http or https url.
// Quotes, angle brackets and whitespace are rejected even where url.Parse
// would accept them in a host.
func ParseHTTPURL(v string) (*url.URL, error) {
	if strings.ContainsAny(v, "\"'<> \t\r\n") {
		return nil, fmt.Errorf("url %q contains characters that must be escaped", v)
	}
	u, err := url.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", v, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("must be an absolute http(s) url, got %q", v)
	}
	return u, nil
}
