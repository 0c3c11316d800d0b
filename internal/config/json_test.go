// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRawJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeRawJSON(t, `{
		"app": {
			"token_sign_key": "json-key",
			"token_issuer": "json-issuer",
			"token_duration": "12h",
			"bcrypt_cost": 10,
			"version": "2.0.0"
		},
		"storage": {"db": {"dsn": "postgres://u:p@db/dms"}},
		"server": {"http_address": ":3000", "grpc_address": ":9090", "request_timeout": "20s"},
		"audit": {
			"sink": "vault",
			"queue_size": 32,
			"send_timeout": "1s",
			"vault": {"address": "http://vault:8200", "token": "t", "mount": "secret"},
			"redis": {"address": "r:6379", "db": 1, "stream": "s"}
		},
		"workers": {"health_check_interval": "10s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "postgres://u:p@db/dms", cfg.Storage.DB.DSN)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "vault", cfg.Audit.Sink)
	assert.Equal(t, 32, cfg.Audit.QueueSize)
	assert.Equal(t, time.Second, cfg.Audit.SendTimeout)
	assert.Equal(t, "http://vault:8200", cfg.Audit.Vault.Address)
	assert.Equal(t, 1, cfg.Audit.Redis.DB)
	assert.Equal(t, 10*time.Second, cfg.Workers.HealthCheckInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeRawJSON(t, `{"app": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeRawJSON(t, `{"app": {"token_duration": "a while"}}`))
	assert.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeRawJSON(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds number", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(time.Minute).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(b))
}
