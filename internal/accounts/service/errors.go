package service

import "errors"

var (
	// ErrUserNotFound covers both unknown ids and unknown sign-in emails.
	ErrUserNotFound = errors.New("service: user not found")

	// ErrBadCredentials is a failed password match at sign-in.
	ErrBadCredentials = errors.New("service: email and password don't match")

	// ErrDuplicateEmail is a create or update that would reuse an email.
	ErrDuplicateEmail = errors.New("service: email already exists")
)
