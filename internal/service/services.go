// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the legal-dms server: the
// authentication and authorization core and the document service built on
// top of it.
package service

import (
	"fmt"

	"github.com/MKhiriev/legal-dms/internal/adapter"
	"github.com/MKhiriev/legal-dms/internal/config"
	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/internal/store"
	"github.com/MKhiriev/legal-dms/internal/utils"
	"github.com/MKhiriev/legal-dms/internal/validators"
)

type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
	AppInfoService  AppInfoService
}

// NewServices wires the services over storages. audit receives every
// authorization decision; in production it is an [AuditQueue].
func NewServices(storages *store.Storages, cfg config.StructuredConfig, audit adapter.AuditSink, logger *logger.Logger) (*Services, error) {
	if cfg.App.TokenSignKey == "" {
		return nil, fmt.Errorf("%w: token sign key is empty", ErrTokenCreation)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()

	authService := NewAuthService(AuthDependencies{
		Credentials:   NewCredentialStore(storages.UserRepository),
		Hasher:        utils.NewBcryptHasher(cfg.App.BcryptCost),
		Tokens:        NewTokenService(cfg.App.TokenSignKey, cfg.App.TokenIssuer, nil),
		Permissions:   NewPermissionRegistry(),
		Audit:         audit,
		Validator:     validators.NewCredentialsValidator(),
		IDs:           ids,
		TokenDuration: cfg.App.TokenDuration,
	}, logger)

	return &Services{
		AuthService:     authService,
		DocumentService: NewDocumentService(storages.DocumentRepository, validators.NewDocumentValidator(), ids, nil, logger),
		AppInfoService:  appInfoService,
	}, nil
}
