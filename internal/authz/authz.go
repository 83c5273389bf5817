// Package authz holds the single ownership rule shared by every
// mutating endpoint, so the check cannot drift between controllers.
package authz

import (
	"inkwell/internal/models"
)

// Owned is any record with a single owning user.
type Owned interface {
	OwnerID() uint
}

// CanMutate reports whether actor may update or delete resource:
// the owner may, and an admin always may.
func CanMutate(actor *models.User, resource Owned) bool {
	if actor == nil {
		return false
	}
	return resource.OwnerID() == actor.ID || actor.IsAdmin()
}
