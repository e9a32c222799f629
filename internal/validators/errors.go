package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail         = errors.New("invalid email address")
	ErrEmptyFullName        = errors.New("full name is required")
	ErrWeakPassword         = errors.New("password must be at least 8 characters")
	ErrEmptyPassword        = errors.New("password is required")
	ErrCurrentPasswordEmpty = errors.New("current password is required to set a new password")
	ErrEmptyTitle           = errors.New("title is required")
	ErrEmptyUsername        = errors.New("username is required")
	ErrEmptyContent         = errors.New("content is required")
	ErrEmptyData            = errors.New("data is required")
	ErrEmptyItemType        = errors.New("item type is required")
	ErrUnsupportedPlatform  = errors.New("unsupported platform")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
	ErrNoUnlockSecret       = errors.New("either pattern or PIN must be provided")
	ErrInvalidPINLength     = errors.New("PIN must be 4 to 6 characters")
	ErrInvalidPatternLength = errors.New("pattern must be 4 to 100 characters")
)
