package app

import "github.com/mmrchat/murmur/domain"

// ProfileDirectory is a read-only, synchronous snapshot lookup of user
// profiles. Implementations must never block; a missing profile is
// reported with ok=false, not an error.
type ProfileDirectory interface {
	Lookup(userID string) (domain.UserProfile, bool)
}
