package domain

import "errors"

// Token verification failures are distinct so the auth gate can report
// expired, tampered and garbage tokens precisely.
var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
)
