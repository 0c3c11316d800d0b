// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a              http server address in format [host]:[port]
//	-grpc-address   grpc server address in format [host]:[port]
//	-d              database DSN (memory://, postgres://..., sqlite://...)
//	-c / -config    json file path with configs
//	-token-sign-key token signing key
//	-token-issuer   token issuer name
//	-token-duration token duration (e.g. "24h")
//	-bcrypt-cost    bcrypt work factor
//	-request-timeout request timeout (e.g. "30s")
//	-audit-sink     log | vault | redis
//	-vault-address  vault address for the vault audit sink
//	-vault-token    vault token for the vault audit sink
//	-redis-address  redis address for the redis audit sink
//	-log-level      zerolog level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("legal-dms", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var bcryptCost int
	var requestTimeout time.Duration
	var auditSink string
	var vaultAddress string
	var vaultToken string
	var redisAddress string
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&auditSink, "audit-sink", "", "Audit sink: log, vault or redis")
	fs.StringVar(&vaultAddress, "vault-address", "", "Vault address")
	fs.StringVar(&vaultToken, "vault-token", "", "Vault token")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			BcryptCost:    bcryptCost,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Audit: Audit{
			Sink:  auditSink,
			Vault: Vault{Address: vaultAddress, Token: vaultToken},
			Redis: Redis{Address: redisAddress},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
