// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"github.com/spf13/pflag"

	"github.com/retdec-client/retdec-go/lib/config"
)

// DotEnvFiles are read, when present in the working directory, as a
// fallback for environment variables.
var DotEnvFiles = []string{".env", ".env.local"}

// ConnectionFlags are the flags that select the API and credentials.
type ConnectionFlags struct {
	APIKey     string
	APIURL     string
	ConfigFile string
}

// AddFlags adds -k/--api-key, -u/--api-url and --config to flags.
func (c *ConnectionFlags) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.APIKey, "api-key", "k", "", "API key (default $"+config.EnvAPIKey+")")
	flags.StringVarP(&c.APIURL, "api-url", "u", "", "API URL (default $"+config.EnvAPIURL+" or "+config.DefaultAPIURL+")")
	flags.StringVar(&c.ConfigFile, "config", "", "settings file, YAML or JSON with comments (default $"+config.EnvConfig+")")
}

// Settings resolves the connection settings. Flags win over getenv,
// which wins over .env files, which win over the config file.
func (c *ConnectionFlags) Settings(getenv config.Lookup) (config.Settings, error) {
	dotenv, err := config.DotEnv(DotEnvFiles...)
	if err != nil {
		return config.Settings{}, err
	}
	return config.Load(config.LoadOptions{
		Explicit:   config.Settings{APIKey: c.APIKey, APIURL: c.APIURL},
		ConfigFile: c.ConfigFile,
		Getenv:     config.Chain(getenv, dotenv),
	})
}

// OutputFlags control how a command presents its work.
type OutputFlags struct {
	Color    Mode
	Progress Mode
	Debug    bool
}

// AddFlags adds --color, --progress and --debug to flags.
func (o *OutputFlags) AddFlags(flags *pflag.FlagSet) {
	o.Color = ModeAuto
	o.Progress = ModeAuto
	flags.Var(&o.Color, "color", "colorize output: auto, always or never")
	flags.Var(&o.Progress, "progress", "show a spinner while waiting: auto, always or never")
	flags.BoolVar(&o.Debug, "debug", false, "log API requests and job status")
}
