// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/retdec-client/retdec-go/lib/apierror"
)

// DefaultAPIURL is the public retdec.com API.
const DefaultAPIURL = "https://retdec.com/service/api"

// Environment variable names.
const (
	EnvAPIKey = "RETDEC_API_KEY"
	EnvAPIURL = "RETDEC_API_URL"
	EnvConfig = "RETDEC_CONFIG"
)

// Settings for the retdec services.
type Settings struct {
	// APIKey authenticates every request. Empty means not configured.
	APIKey string `yaml:"api_key" json:"api_key"`

	// APIURL is the root of the API, without a trailing slash.
	APIURL string `yaml:"api_url" json:"api_url"`
}

// Default returns settings with the default API URL and no API key.
func Default() Settings {
	return Settings{APIURL: DefaultAPIURL}
}

// Override returns s with every non-empty field of other applied on top.
func (s Settings) Override(other Settings) Settings {
	if other.APIKey != "" {
		s.APIKey = other.APIKey
	}
	if other.APIURL != "" {
		s.APIURL = other.APIURL
	}
	return s
}

// Normalize strips trailing slashes from the API URL.
func (s Settings) Normalize() Settings {
	s.APIURL = strings.TrimRight(s.APIURL, "/")
	return s
}

// Validate checks that the API URL is an absolute http or https URL.
func (s Settings) Validate() error {
	if s.APIURL == "" {
		return apierror.New(apierror.KindConfig, "API URL is empty")
	}
	parsed, err := url.Parse(s.APIURL)
	if err != nil {
		return apierror.New(apierror.KindConfig, "invalid API URL %q: %w", s.APIURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return apierror.New(apierror.KindConfig, "invalid API URL %q: scheme must be http or https", s.APIURL)
	}
	if parsed.Host == "" {
		return apierror.New(apierror.KindConfig, "invalid API URL %q: missing host", s.APIURL)
	}
	return nil
}

// Lookup returns the value of a configuration variable, or "" when it is
// not set. os.Getenv is a Lookup.
type Lookup func(key string) string

// Chain returns a Lookup that consults each lookup in order and returns
// the first non-empty value.
func Chain(lookups ...Lookup) Lookup {
	return func(key string) string {
		for _, lookup := range lookups {
			if lookup == nil {
				continue
			}
			if value := lookup(key); value != "" {
				return value
			}
		}
		return ""
	}
}

// FromEnvironment returns the settings found through getenv. Fields that
// are not set are left empty.
func FromEnvironment(getenv Lookup) Settings {
	if getenv == nil {
		return Settings{}
	}
	return Settings{
		APIKey: getenv(EnvAPIKey),
		APIURL: getenv(EnvAPIURL),
	}
}

// DotEnv reads the given .env files into a Lookup. Files that do not
// exist are skipped. Earlier files take precedence over later ones.
func DotEnv(paths ...string) (Lookup, error) {
	values := map[string]string{}
	for _, path := range paths {
		fileValues, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, apierror.New(apierror.KindConfig, "reading %s: %w", path, err)
		}
		for key, value := range fileValues {
			if _, ok := values[key]; !ok {
				values[key] = value
			}
		}
	}
	return func(key string) string { return values[key] }, nil
}

// LoadFile reads settings from a YAML or JSONC file, chosen by
// extension. Unknown extensions are parsed as YAML.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, apierror.New(apierror.KindConfig, "reading config file: %w", err)
	}

	var settings Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), &settings)
	default:
		err = yaml.Unmarshal(data, &settings)
	}
	if err != nil {
		return Settings{}, apierror.New(apierror.KindConfig, "parsing config file %s: %w", path, err)
	}
	return settings, nil
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Explicit settings win over every other source.
	Explicit Settings

	// ConfigFile is the config file to read. When empty, the file named
	// by RETDEC_CONFIG is used, if any.
	ConfigFile string

	// Getenv looks up environment variables. Nil disables the
	// environment entirely.
	Getenv Lookup
}

// Load resolves settings from all sources and validates the result.
func Load(options LoadOptions) (Settings, error) {
	settings := Default()

	configFile := options.ConfigFile
	if configFile == "" && options.Getenv != nil {
		configFile = options.Getenv(EnvConfig)
	}
	if configFile != "" {
		fileSettings, err := LoadFile(configFile)
		if err != nil {
			return Settings{}, err
		}
		settings = settings.Override(fileSettings)
	}

	settings = settings.Override(FromEnvironment(options.Getenv))
	settings = settings.Override(options.Explicit).Normalize()
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}
