// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the envelope shared by every JSON response of the API.
// Operation-specific payload fields are populated as needed and omitted
// otherwise.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	// Code is a stable machine-readable error code, set on failures only.
	Code string `json:"code,omitempty"`

	Token     string       `json:"token,omitempty"`
	User      *PublicUser  `json:"user,omitempty"`
	Users     []PublicUser `json:"users,omitempty"`
	Document  *Document    `json:"document,omitempty"`
	Documents []Document   `json:"documents,omitempty"`

	// Count accompanies list payloads.
	Count *int `json:"count,omitempty"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token Token
	User  PublicUser
}
