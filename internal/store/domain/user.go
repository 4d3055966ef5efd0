package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID            string
	Nickname      string
	Email         string
	Role          UserRole
	Status        UserStatus
	FavoriteGames []string
	TotalSpent    decimal.Decimal
	LastActive    time.Time
}

// Clone returns a copy that does not share the FavoriteGames backing array.
func (u User) Clone() User {
	u.FavoriteGames = cloneStrings(u.FavoriteGames)
	return u
}

type UserRole string

const (
	RolePlayer    UserRole = "player"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RolePlayer, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
	UserNew       UserStatus = "new"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserSuspended, UserNew:
		return true
	}
	return false
}
