// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditResult is the outcome of an authorization decision.
type AuditResult string

const (
	AuditGranted AuditResult = "GRANTED"
	AuditDenied  AuditResult = "DENIED"
)

// Audit actions emitted by the authorization flow.
const (
	AuditActionAuthorizedAccess   = "AUTHORIZED_ACCESS"
	AuditActionUnauthorizedAccess = "UNAUTHORIZED_ACCESS"
)

// AuditEntry is a write-only record of one authorization decision.
type AuditEntry struct {
	Timestamp     time.Time   `json:"timestamp"`
	Action        string      `json:"action"`
	Username      string      `json:"user"`
	UserID        string      `json:"userId"`
	Role          Role        `json:"role"`
	Resource      string      `json:"resource"`
	Result        AuditResult `json:"result"`
	SourceAddress string      `json:"ip"`
}

// Access describes the protected resource and the caller address of an
// authorization request. Both fields are informational and go to the audit
// trail only.
type Access struct {
	Resource      string
	SourceAddress string
}
