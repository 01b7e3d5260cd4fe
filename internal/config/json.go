// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON keys and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Version            string `json:"version"`
		SeedAdminName      string `json:"seed_admin_name"`
		SeedAdminEmail     string `json:"seed_admin_email"`
		PasswordIterations int    `json:"password_iterations"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
		DownloadRate   float64  `json:"download_rate"`
		DownloadBurst  int      `json:"download_burst"`
	} `json:"server,omitempty"`

	Security struct {
		LoginMaxAttempts    int      `json:"login_max_attempts"`
		LoginWindow         Duration `json:"login_window"`
		RegisterMaxAttempts int      `json:"register_max_attempts"`
		RegisterWindow      Duration `json:"register_window"`
	} `json:"security,omitempty"`

	Log struct {
		ClientFile string `json:"client_file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:            jsonCfg.App.Version,
			SeedAdminName:      jsonCfg.App.SeedAdminName,
			SeedAdminEmail:     jsonCfg.App.SeedAdminEmail,
			PasswordIterations: jsonCfg.App.PasswordIterations,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
			DownloadRate:   jsonCfg.Server.DownloadRate,
			DownloadBurst:  jsonCfg.Server.DownloadBurst,
		},
		Security: Security{
			LoginMaxAttempts:    jsonCfg.Security.LoginMaxAttempts,
			LoginWindow:         time.Duration(jsonCfg.Security.LoginWindow),
			RegisterMaxAttempts: jsonCfg.Security.RegisterMaxAttempts,
			RegisterWindow:      time.Duration(jsonCfg.Security.RegisterWindow),
		},
		Log: Log{
			ClientFile: jsonCfg.Log.ClientFile,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
