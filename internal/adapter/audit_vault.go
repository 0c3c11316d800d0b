// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/legal-dms/internal/config"
	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/models"
	"github.com/go-resty/resty/v2"
)

const vaultTokenHeader = "X-Vault-Token"

// vaultAuditSink writes each entry as a secret into a Vault KV v2 engine at
// {mount}/data/audit/{unixMillis}-{userId}.
type vaultAuditSink struct {
	client *resty.Client
	mount  string

	logger *logger.Logger
}

// vaultWriteRequest is the KV v2 write payload.
type vaultWriteRequest struct {
	Data models.AuditEntry `json:"data"`
}

// NewVaultAuditSink builds a Vault sink from cfg. The address may omit the
// scheme, in which case http is assumed. timeout bounds each request.
func NewVaultAuditSink(cfg config.Vault, timeout time.Duration, logger *logger.Logger) (AuditSink, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSinkAddress, err)
	}

	mount := strings.Trim(cfg.Mount, "/")
	if mount == "" {
		mount = "secret"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader(vaultTokenHeader, cfg.Token).
		SetHeader("Content-Type", "application/json")

	return &vaultAuditSink{client: client, mount: mount, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Record PUTs entry to Vault.
func (v *vaultAuditSink) Record(ctx context.Context, entry models.AuditEntry) error {
	resp, err := v.client.R().
		SetContext(ctx).
		SetBody(vaultWriteRequest{Data: entry}).
		Put(v.secretPath(entry))
	if err != nil {
		return fmt.Errorf("%w: vault write: %w", ErrSinkUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (v *vaultAuditSink) secretPath(entry models.AuditEntry) string {
	userID := entry.UserID
	if userID == "" {
		userID = "anonymous"
	}
	return fmt.Sprintf("/v1/%s/data/audit/%d-%s", v.mount, entry.Timestamp.UnixMilli(), url.PathEscape(userID))
}
