// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package config resolves the settings every retdec service needs: the
// API key and the API URL.
//
// Settings are a plain struct, resolved once at process start and passed
// to api.NewHTTPConnection. Nothing in the library reads the process
// environment; the tools pass an explicit [Lookup] into [Load].
//
// Sources, highest precedence first:
//
//   - explicit values (command-line flags or a struct literal)
//   - RETDEC_API_KEY and RETDEC_API_URL from the environment
//   - a .env file (read with godotenv; the process environment is not modified)
//   - a config file named by --config or RETDEC_CONFIG, YAML (.yaml, .yml)
//     or JSON with comments (.json, .jsonc), with keys api_key and api_url
//   - the built-in default URL, https://retdec.com/service/api
//
// There is no default API key. A missing key is reported when the first
// request is sent, not here, so that settings can be resolved before a
// key is known.
package config
