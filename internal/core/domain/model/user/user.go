// Package user describes the authenticated caller handed to use cases.
package user

import (
	"errors"
	"slices"
)

// Admin is the role required by every staff operation.
const Admin = "ADMIN"

var ErrInvalidUser = errors.New("invalid user")

// InvalidUserError is returned when the caller is missing or lacks a required role.
type InvalidUserError struct {
	Message string
}

func NewNotAdminError() *InvalidUserError {
	return &InvalidUserError{Message: "User has to be ADMIN to execute this action"}
}

func (e *InvalidUserError) Error() string {
	return e.Message
}

func (e *InvalidUserError) Unwrap() error {
	return ErrInvalidUser
}

// User is an authenticated principal. A nil *User stands for an anonymous caller.
type User struct {
	Username string
	Roles    []string
}

func NewAdmin(username string) *User {
	return &User{Username: username, Roles: []string{Admin}}
}

func (u *User) HasRole(role string) bool {
	return u != nil && slices.Contains(u.Roles, role)
}

func (u *User) IsAdmin() bool {
	return u.HasRole(Admin)
}
