package service

import "errors"

var (
	ErrTeamNotFound      = errors.New("Team not found")
	ErrUserNotRegistered = errors.New("Not a registered user")
	ErrAlreadyMember     = errors.New("User is already a member of this team")
	ErrNotAMember        = errors.New("User is not a member of this team")
	ErrInvalidCredential = errors.New("Invalid credential")
	ErrUserExists        = errors.New("userName or emailId already in use")

	// Signup validation errors. The messages are part of the HTTP
	// contract and are returned to the client verbatim.
	ErrInvalidName  = errors.New("Name is not valid")
	ErrInvalidEmail = errors.New("Email is not valid")
	ErrWeakPassword = errors.New("Please enter a strong Password")
)
