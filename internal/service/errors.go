package service

import "errors"

var (
	// ErrInvalidDataProvided wraps validation failures of inbound models.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("inactive user")
	ErrIncorrectPassword  = errors.New("incorrect current password")
	ErrAdminRequired      = errors.New("admin access required")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrStorageNotFound      = errors.New("private storage not found")
	ErrStorageLocked        = errors.New("private storage is locked or not found")
	ErrInvalidUnlockMethod  = errors.New("invalid unlock method")
	ErrInvalidPIN           = errors.New("invalid PIN")
	ErrInvalidPattern       = errors.New("invalid pattern")
)
