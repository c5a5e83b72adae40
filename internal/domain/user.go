package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an application user. Players start as anonymous users; the
// id is the only identity the game needs.
type User struct {
	ID          uuid.UUID
	IsAnonymous bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Role returns the token role claim for the user.
func (u *User) Role() string {
	if u.IsAnonymous {
		return RoleAnonymous
	}
	return RoleUser
}

// Token role claims.
const (
	RoleAnonymous = "anonymous"
	RoleUser      = "user"
)
