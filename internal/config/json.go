// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Audit struct {
		Sink        string   `json:"sink"`
		QueueSize   int      `json:"queue_size"`
		SendTimeout Duration `json:"send_timeout"`
		Vault       struct {
			Address string `json:"address"`
			Token   string `json:"token"`
			Mount   string `json:"mount"`
		} `json:"vault,omitempty"`
		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
			Stream   string `json:"stream"`
		} `json:"redis,omitempty"`
	} `json:"audit,omitempty"`

	Workers struct {
		HealthCheckInterval Duration `json:"health_check_interval"`
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
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			BcryptCost:    jsonCfg.App.BcryptCost,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Audit: Audit{
			Sink:        jsonCfg.Audit.Sink,
			QueueSize:   jsonCfg.Audit.QueueSize,
			SendTimeout: time.Duration(jsonCfg.Audit.SendTimeout),
			Vault: Vault{
				Address: jsonCfg.Audit.Vault.Address,
				Token:   jsonCfg.Audit.Vault.Token,
				Mount:   jsonCfg.Audit.Vault.Mount,
			},
			Redis: Redis{
				Address:  jsonCfg.Audit.Redis.Address,
				Password: jsonCfg.Audit.Redis.Password,
				DB:       jsonCfg.Audit.Redis.DB,
				Stream:   jsonCfg.Audit.Redis.Stream,
			},
		},
		Workers: Workers{
			HealthCheckInterval: time.Duration(jsonCfg.Workers.HealthCheckInterval),
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
