// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"admin_username": "admin",
			"session_secret": "secret",
			"production": true
		},
		"server": {
			"http_address": "localhost:8081",
			"request_timeout": "1m"
		},
		"storage": {
			"db": {"dsn": "postgres://localhost/realty"},
			"s3": {"endpoint": "s3.local:9000", "bucket": "images", "use_ssl": true}
		},
		"rate_limit": {
			"login_max": 3,
			"login_window": "60s",
			"submission_max": 5,
			"submission_window": "60s"
		},
		"workers": {"sweep_interval": "2m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.App.AdminUsername)
	assert.True(t, cfg.App.Production)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/realty", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Storage.S3.UseSSL)
	assert.Equal(t, "images", cfg.Storage.S3.Bucket)
	assert.Equal(t, 3, cfg.RateLimit.LoginMax)
	assert.Equal(t, time.Minute, cfg.RateLimit.SubmissionWindow)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SweepInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": 30000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9090", want: "127.0.0.1:9090"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:zero", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not an ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}
