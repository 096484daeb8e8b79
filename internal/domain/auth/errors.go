package auth

import "errors"

// Auth domain errors. Unknown username and wrong password deliberately
// collapse into the same error so responses never reveal which usernames
// exist.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
