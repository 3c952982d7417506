// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retdec-client/retdec-go/lib/apierror"
)

// mapLookup turns a map into a Lookup so tests never touch the process
// environment.
func mapLookup(values map[string]string) Lookup {
	return func(key string) string { return values[key] }
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	settings := Default()

	if settings.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", settings.APIKey)
	}
	if settings.APIURL != "https://retdec.com/service/api" {
		t.Errorf("APIURL = %q, want default", settings.APIURL)
	}
}

func TestLoad_DefaultsWithoutSources(t *testing.T) {
	settings, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings != Default() {
		t.Errorf("Load() = %+v, want %+v", settings, Default())
	}
}

func TestLoad_EnvironmentOverridesDefault(t *testing.T) {
	settings, err := Load(LoadOptions{
		Getenv: mapLookup(map[string]string{
			EnvAPIKey: "ENV-KEY",
			EnvAPIURL: "https://127.0.0.1:8000/api/",
		}),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.APIKey != "ENV-KEY" {
		t.Errorf("APIKey = %q, want %q", settings.APIKey, "ENV-KEY")
	}
	if settings.APIURL != "https://127.0.0.1:8000/api" {
		t.Errorf("APIURL = %q, want trailing slash stripped", settings.APIURL)
	}
}

func TestLoad_ExplicitOverridesEnvironment(t *testing.T) {
	settings, err := Load(LoadOptions{
		Explicit: Settings{APIKey: "FLAG-KEY"},
		Getenv: mapLookup(map[string]string{
			EnvAPIKey: "ENV-KEY",
			EnvAPIURL: "https://env.example/api",
		}),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.APIKey != "FLAG-KEY" {
		t.Errorf("APIKey = %q, want %q", settings.APIKey, "FLAG-KEY")
	}
	if settings.APIURL != "https://env.example/api" {
		t.Errorf("APIURL = %q, want the environment value", settings.APIURL)
	}
}

func TestLoad_YAMLConfigFile(t *testing.T) {
	path := writeFile(t, "retdec.yaml", "api_key: FILE-KEY\napi_url: https://file.example/api//\n")

	settings, err := Load(LoadOptions{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.APIKey != "FILE-KEY" {
		t.Errorf("APIKey = %q, want %q", settings.APIKey, "FILE-KEY")
	}
	if settings.APIURL != "https://file.example/api" {
		t.Errorf("APIURL = %q", settings.APIURL)
	}
}

func TestLoad_JSONCConfigFileFromEnvironment(t *testing.T) {
	path := writeFile(t, "retdec.jsonc", `{
		// Key issued for CI.
		"api_key": "JSONC-KEY",
	}`)

	settings, err := Load(LoadOptions{
		Getenv: mapLookup(map[string]string{EnvConfig: path}),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.APIKey != "JSONC-KEY" {
		t.Errorf("APIKey = %q, want %q", settings.APIKey, "JSONC-KEY")
	}
	if settings.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want default", settings.APIURL)
	}
}

func TestLoad_EnvironmentOverridesConfigFile(t *testing.T) {
	path := writeFile(t, "retdec.yml", "api_key: FILE-KEY\n")

	settings, err := Load(LoadOptions{
		ConfigFile: path,
		Getenv:     mapLookup(map[string]string{EnvAPIKey: "ENV-KEY"}),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.APIKey != "ENV-KEY" {
		t.Errorf("APIKey = %q, want %q", settings.APIKey, "ENV-KEY")
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	if !apierror.Is(err, apierror.KindConfig) {
		t.Fatalf("Load() error = %v, want a config error", err)
	}
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	path := writeFile(t, "retdec.json", `{"api_key": `)
	_, err := Load(LoadOptions{ConfigFile: path})
	if !apierror.Is(err, apierror.KindConfig) {
		t.Fatalf("Load() error = %v, want a config error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://retdec.com/service/api", true},
		{"http://127.0.0.1:8080", true},
		{"", false},
		{"retdec.com/service/api", false},
		{"ftp://retdec.com", false},
		{"https://", false},
	}
	for _, test := range tests {
		err := Settings{APIURL: test.url}.Validate()
		if test.valid && err != nil {
			t.Errorf("Validate(%q) = %v, want nil", test.url, err)
		}
		if !test.valid && !apierror.Is(err, apierror.KindConfig) {
			t.Errorf("Validate(%q) = %v, want a config error", test.url, err)
		}
	}
}

func TestDotEnvAndChain(t *testing.T) {
	path := writeFile(t, ".env", "RETDEC_API_KEY=DOTENV-KEY\nRETDEC_API_URL=https://dotenv.example/api\n")

	dotenv, err := DotEnv(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("DotEnv: %v", err)
	}

	lookup := Chain(mapLookup(map[string]string{EnvAPIKey: "ENV-KEY"}), dotenv)
	settings := FromEnvironment(lookup)

	if settings.APIKey != "ENV-KEY" {
		t.Errorf("APIKey = %q, want the environment to win over .env", settings.APIKey)
	}
	if settings.APIURL != "https://dotenv.example/api" {
		t.Errorf("APIURL = %q, want the .env value", settings.APIURL)
	}
}

func TestFromEnvironmentNilLookup(t *testing.T) {
	if settings := FromEnvironment(nil); settings != (Settings{}) {
		t.Errorf("FromEnvironment(nil) = %+v, want zero settings", settings)
	}
}
