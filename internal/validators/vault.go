package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-god/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail    = "email"
	FieldFullName = "full_name"
	FieldPassword = "password"
	FieldTitle    = "title"
	FieldUsername = "username"
	FieldPlatform = "platform"
)

const (
	minPasswordLength = 8
	minPINLength      = 4
	maxPINLength      = 6
	minPatternLength  = 4
	maxPatternLength  = 100
)

// VaultValidator checks inbound request models before they reach the
// services. It holds no state and is safe for concurrent use.
type VaultValidator struct{}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	case models.UpdateUserRequest:
		return v.validateUserUpdate(value)
	case *models.UpdateUserRequest:
		return v.validateUserUpdate(*value)

	case models.PasswordInput:
		return v.validatePasswordInput(value, fields...)
	case *models.PasswordInput:
		return v.validatePasswordInput(*value, fields...)

	case models.PasswordUpdate:
		return v.validatePasswordUpdate(value)
	case *models.PasswordUpdate:
		return v.validatePasswordUpdate(*value)

	case models.SocialAccountInput:
		return v.validateSocialAccountInput(value, fields...)
	case *models.SocialAccountInput:
		return v.validateSocialAccountInput(*value, fields...)

	case models.SocialAccountUpdate:
		return v.validateSocialAccountUpdate(value)
	case *models.SocialAccountUpdate:
		return v.validateSocialAccountUpdate(*value)

	case models.NoteInput:
		return v.validateNoteInput(value)
	case *models.NoteInput:
		return v.validateNoteInput(*value)

	case models.NoteUpdate:
		return v.validateNoteUpdate(value)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(*value)

	case models.ShareCreateRequest:
		return v.validateShareCreate(value)
	case *models.ShareCreateRequest:
		return v.validateShareCreate(*value)

	case models.CheckPasswordRequest:
		if value.Password == "" {
			return ErrEmptyPassword
		}
		return nil

	case models.LockRequest:
		return v.validateLockRequest(value)
	case *models.LockRequest:
		return v.validateLockRequest(*value)

	case models.PrivateItemInput:
		return v.validatePrivateItemInput(value)
	case *models.PrivateItemInput:
		return v.validatePrivateItemInput(*value)

	default:
		return ErrUnsupportedType
	}
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func (v *VaultValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldFullName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !validEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldFullName:
			if strings.TrimSpace(req.FullName) == "" {
				return ErrEmptyFullName
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < minPasswordLength {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateLogin(req models.LoginRequest) error {
	if req.Email == "" {
		return ErrInvalidEmail
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (v *VaultValidator) validateUserUpdate(req models.UpdateUserRequest) error {
	if req.Email == nil && req.FullName == nil && req.NewPassword == nil {
		return ErrNoFieldsToUpdate
	}
	if req.Email != nil && !validEmail(*req.Email) {
		return ErrInvalidEmail
	}
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return ErrEmptyFullName
	}
	if req.NewPassword != nil {
		if req.CurrentPassword == nil || *req.CurrentPassword == "" {
			return ErrCurrentPasswordEmpty
		}
		if utf8.RuneCountInString(*req.NewPassword) < minPasswordLength {
			return ErrWeakPassword
		}
	}
	return nil
}

func (v *VaultValidator) validatePasswordInput(in models.PasswordInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(in.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldPassword:
			if in.Password == "" {
				return ErrEmptyPassword
			}
		case FieldUsername:
			if in.Username == "" {
				return ErrEmptyUsername
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validatePasswordUpdate(upd models.PasswordUpdate) error {
	if upd.Title == nil && upd.Username == nil && upd.Password == nil && upd.WebsiteURL == nil && upd.Notes == nil {
		return ErrNoFieldsToUpdate
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return ErrEmptyTitle
	}
	if upd.Password != nil && *upd.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func checkPlatform(platform string) error {
	if _, ok := models.NormalizePlatform(platform); !ok {
		return fmt.Errorf("%w: supported platforms: %s", ErrUnsupportedPlatform, strings.Join(models.PlatformNames(), ", "))
	}
	return nil
}

func (v *VaultValidator) validateSocialAccountInput(in models.SocialAccountInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlatform, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPlatform:
			if err := checkPlatform(in.Platform); err != nil {
				return err
			}
		case FieldUsername:
			if strings.TrimSpace(in.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if in.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateSocialAccountUpdate(upd models.SocialAccountUpdate) error {
	if upd.Platform == nil && upd.Username == nil && upd.Password == nil && upd.AdditionalData == nil {
		return ErrNoFieldsToUpdate
	}
	if upd.Platform != nil {
		if err := checkPlatform(*upd.Platform); err != nil {
			return err
		}
	}
	if upd.Username != nil && strings.TrimSpace(*upd.Username) == "" {
		return ErrEmptyUsername
	}
	if upd.Password != nil && *upd.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (v *VaultValidator) validateNoteInput(in models.NoteInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrEmptyTitle
	}
	if in.Content == "" {
		return ErrEmptyContent
	}
	return nil
}

func (v *VaultValidator) validateNoteUpdate(upd models.NoteUpdate) error {
	if upd.Title == nil && upd.Content == nil {
		return ErrNoFieldsToUpdate
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return ErrEmptyTitle
	}
	if upd.Content != nil && *upd.Content == "" {
		return ErrEmptyContent
	}
	return nil
}

// validateShareCreate only checks presence; lifetime bounds belong to the
// exchange, which knows the configured cap.
func (v *VaultValidator) validateShareCreate(req models.ShareCreateRequest) error {
	if req.EncryptedData == "" {
		return ErrEmptyData
	}
	return nil
}

// validateLockRequest checks the lengths of whichever unlock secrets are
// present. At least one is required.
func (v *VaultValidator) validateLockRequest(req models.LockRequest) error {
	if (req.Pin == nil || *req.Pin == "") && (req.Pattern == nil || *req.Pattern == "") {
		return ErrNoUnlockSecret
	}
	if req.Pin != nil && *req.Pin != "" {
		if n := utf8.RuneCountInString(*req.Pin); n < minPINLength || n > maxPINLength {
			return ErrInvalidPINLength
		}
	}
	if req.Pattern != nil && *req.Pattern != "" {
		if n := utf8.RuneCountInString(*req.Pattern); n < minPatternLength || n > maxPatternLength {
			return ErrInvalidPatternLength
		}
	}
	return nil
}

func (v *VaultValidator) validatePrivateItemInput(in models.PrivateItemInput) error {
	if strings.TrimSpace(in.ItemType) == "" {
		return ErrEmptyItemType
	}
	if in.Data == "" {
		return ErrEmptyData
	}
	return nil
}
