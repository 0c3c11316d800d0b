// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/legal-dms/models"
	"github.com/stretchr/testify/assert"
)

func TestPermissionRegistry_IsAllowed(t *testing.T) {
	want := map[models.Role][]models.Action{
		models.RoleAdmin:  {models.ActionRead, models.ActionWrite, models.ActionDelete, models.ActionManage},
		models.RoleUser:   {models.ActionRead, models.ActionWrite},
		models.RoleViewer: {models.ActionRead},
	}

	registry := NewPermissionRegistry()
	for _, role := range models.AllRoles() {
		for _, action := range models.AllActions() {
			expected := false
			for _, allowed := range want[role] {
				if allowed == action {
					expected = true
				}
			}
			assert.Equal(t, expected, registry.IsAllowed(role, action), "role=%s action=%s", role, action)
		}
	}
}

func TestPermissionRegistry_DefaultDeny(t *testing.T) {
	registry := NewPermissionRegistry()

	assert.False(t, registry.IsAllowed("superuser", models.ActionRead))
	assert.False(t, registry.IsAllowed("", models.ActionRead))
	assert.False(t, registry.IsAllowed(models.RoleAdmin, "publish"))
	assert.False(t, registry.IsAllowed(models.RoleAdmin, ""))
	assert.False(t, registry.IsAllowed("ADMIN", models.ActionRead))
}
