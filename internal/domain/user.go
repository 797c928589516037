// Package domain contains entity without logic, just meta-data
package domain

import (
	"errors"

	"github.com/google/uuid"
)

const (
	MaxIdentityLen    = 64
	MaxDisplayNameLen = 64
)

var (
	ErrIdentityEmpty      = errors.New("identity empty")
	ErrIdentityTooLong    = errors.New("identity too long")
	ErrDisplayNameTooLong = errors.New("display name too long")
)

// Identity is the caller-asserted stable user id. It is distinct from the
// transient connection identifier assigned by the transport.
type Identity string

type User struct {
	Identity    Identity `json:"identity"`
	DisplayName string   `json:"displayName"`
}

// NewUser validates caller-supplied fields and fills in a generated
// placeholder when no display name was given.
func NewUser(identity, displayName string) (*User, error) {
	if len(identity) == 0 {
		return nil, ErrIdentityEmpty
	}
	if len(identity) > MaxIdentityLen {
		return nil, ErrIdentityTooLong
	}
	if len(displayName) > MaxDisplayNameLen {
		return nil, ErrDisplayNameTooLong
	}
	if displayName == "" {
		displayName = placeholderName()
	}
	return &User{Identity: Identity(identity), DisplayName: displayName}, nil
}

func placeholderName() string {
	return "User-" + uuid.NewString()[:5]
}
