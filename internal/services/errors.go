package services

import "errors"

// ErrEmailTaken indicates a sign-up attempt with an email already in use.
var ErrEmailTaken = errors.New("email already in use")

// ErrInvalidCredentials indicates a failed authentication. Unknown email
// and wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound indicates a record that does not exist or is not owned by
// the requesting identity.
var ErrNotFound = errors.New("not found")
