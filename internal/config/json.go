// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		AdminUsername     string `json:"admin_username"`
		AdminPasswordHash string `json:"admin_password_hash"`
		SessionSecret     string `json:"session_secret"`
		Production        bool   `json:"production"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		S3 struct {
			Endpoint      string `json:"endpoint"`
			AccessKey     string `json:"access_key"`
			SecretKey     string `json:"secret_key"`
			UseSSL        bool   `json:"use_ssl"`
			Region        string `json:"region"`
			Bucket        string `json:"bucket"`
			PublicBaseURL string `json:"public_base_url"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	RateLimit struct {
		LoginMax         int      `json:"login_max"`
		LoginWindow      Duration `json:"login_window"`
		SubmissionMax    int      `json:"submission_max"`
		SubmissionWindow Duration `json:"submission_window"`
	} `json:"rate_limit,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"workers,omitempty"`
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
			AdminUsername:     jsonCfg.App.AdminUsername,
			AdminPasswordHash: jsonCfg.App.AdminPasswordHash,
			SessionSecret:     jsonCfg.App.SessionSecret,
			Production:        jsonCfg.App.Production,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			S3: S3{
				Endpoint:      jsonCfg.Storage.S3.Endpoint,
				AccessKey:     jsonCfg.Storage.S3.AccessKey,
				SecretKey:     jsonCfg.Storage.S3.SecretKey,
				UseSSL:        jsonCfg.Storage.S3.UseSSL,
				Region:        jsonCfg.Storage.S3.Region,
				Bucket:        jsonCfg.Storage.S3.Bucket,
				PublicBaseURL: jsonCfg.Storage.S3.PublicBaseURL,
			},
		},
		RateLimit: RateLimit{
			LoginMax:         jsonCfg.RateLimit.LoginMax,
			LoginWindow:      time.Duration(jsonCfg.RateLimit.LoginWindow),
			SubmissionMax:    jsonCfg.RateLimit.SubmissionMax,
			SubmissionWindow: time.Duration(jsonCfg.RateLimit.SubmissionWindow),
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
