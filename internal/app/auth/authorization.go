// Package auth implements the role-based authorization policy evaluated
// before handler invocation.
package auth

import (
	"github.com/itai/estagios/internal/app/models"
)

// DenyReason explains why a request was denied
type DenyReason string

const (
	// DenyUnauthenticated means no valid identity was presented (HTTP 401)
	DenyUnauthenticated DenyReason = "UNAUTHENTICATED"
	// DenyForbidden means the identity is valid but the role is insufficient (HTTP 403)
	DenyForbidden DenyReason = "FORBIDDEN"
)

// Decision is the outcome of an authorization check
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Allowed is the positive decision
func Allowed() Decision {
	return Decision{Allowed: true}
}

// Denied creates a negative decision with a reason
func Denied(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize evaluates a role claim against a required role. Authentication is
// always checked before the role: an absent role claim never yields FORBIDDEN.
func Authorize(roleClaim string, requiredRole models.RoleType) Decision {
	if roleClaim == "" {
		return Denied(DenyUnauthenticated)
	}

	if !IsKnownRole(roleClaim) {
		return Denied(DenyUnauthenticated)
	}

	if models.RoleType(roleClaim) != requiredRole {
		return Denied(DenyForbidden)
	}

	return Allowed()
}

// IsKnownRole reports whether the claim names one of the portal roles
func IsKnownRole(roleClaim string) bool {
	switch models.RoleType(roleClaim) {
	case models.RoleAdmin, models.RoleStudent:
		return true
	}
	return false
}
