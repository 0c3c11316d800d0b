// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is a named permission tier.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleViewer Role = "viewer"
)

// IsValid checks if the role is one of the predefined roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleViewer:
		return true
	default:
		return false
	}
}

// Action is a named capability checked against a role.
type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
)

// IsValid checks if the action is one of the predefined actions.
func (a Action) IsValid() bool {
	switch a {
	case ActionRead, ActionWrite, ActionDelete, ActionManage:
		return true
	default:
		return false
	}
}

// AllRoles returns every predefined role.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleUser, RoleViewer}
}

// AllActions returns every predefined action.
func AllActions() []Action {
	return []Action{ActionRead, ActionWrite, ActionDelete, ActionManage}
}
