// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/legal-dms/models"

// rolePermissions is fixed at process start. Anything not listed is denied.
var rolePermissions = map[models.Role]map[models.Action]struct{}{
	models.RoleAdmin: {
		models.ActionRead:   {},
		models.ActionWrite:  {},
		models.ActionDelete: {},
		models.ActionManage: {},
	},
	models.RoleUser: {
		models.ActionRead:  {},
		models.ActionWrite: {},
	},
	models.RoleViewer: {
		models.ActionRead: {},
	},
}

type staticPermissionRegistry struct {
	table map[models.Role]map[models.Action]struct{}
}

// NewPermissionRegistry returns the read-only role to action table.
func NewPermissionRegistry() PermissionRegistry {
	return &staticPermissionRegistry{table: rolePermissions}
}

// IsAllowed reports whether role may perform action.
// Unknown roles and actions are never allowed.
func (r *staticPermissionRegistry) IsAllowed(role models.Role, action models.Action) bool {
	actions, ok := r.table[role]
	if !ok {
		return false
	}
	_, ok = actions[action]
	return ok
}
