// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// legal-dms server handlers.
//
// All Msg* constants are human-readable message strings written into the
// Message field of successful JSON responses. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgServiceRunning is returned by the liveness endpoint.
	MsgServiceRunning = "Legal DMS API is running"

	MsgUserRegistered = "User registered successfully"
	MsgLoginSuccess   = "Login successful"

	// MsgAdminCreated and MsgDemoUserCreated are returned by the one-time
	// provisioning endpoints.
	MsgAdminCreated    = "Admin user created successfully"
	MsgDemoUserCreated = "Demo user created successfully"

	MsgDocumentCreated = "Document created successfully"
	MsgDocumentUpdated = "Document updated successfully"
	MsgDocumentDeleted = "Document deleted successfully"
)
