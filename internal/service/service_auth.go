package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-god/internal/crypto"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/internal/token"
	"github.com/MKhiriev/go-pass-god/internal/validators"
	"github.com/MKhiriev/go-pass-god/models"
)

const tokenTypeBearer = "bearer"

// authService is the concrete implementation of AuthService.
// It registers accounts, verifies credentials against stored hash records
// and issues session tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks the password hash records.
	hasher crypto.Hasher

	// issuer signs and verifies session tokens.
	issuer *token.Issuer

	validator validators.Validator

	// dummyRecord is verified against when the email is unknown so that both
	// failure paths cost one hash verification.
	dummyMu     sync.Mutex
	dummyRecord string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.Hasher, issuer *token.Issuer, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		issuer:         issuer,
		validator:      validator,
		logger:         logger,
	}
}

// Register creates a new active account. The email is stored lower-cased.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the request does not validate.
//   - store.ErrAlreadyExists if the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	record, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("hashing password failed")
		return models.User{}, fmt.Errorf("hashing password failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: record,
		IsActive:     true,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an account by email and password.
//
// An unknown email and a wrong password both return ErrInvalidCredentials.
// A record produced by an outdated scheme is replaced after a successful
// verification; failing to persist it does not fail the login.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if err := a.validator.Validate(ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
		log.Err(err).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		a.hasher.Verify(password, a.dummyHash())
		log.Info().Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(password, foundUser.PasswordHash) {
		log.Info().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Info().Int64("user_id", foundUser.UserID).Msg("inactive user tried to log in")
		return models.User{}, ErrInactiveUser
	}

	if a.hasher.NeedsRehash(foundUser.PasswordHash) {
		a.rehash(ctx, foundUser.UserID, password)
	}

	return foundUser, nil
}

func (a *authService) rehash(ctx context.Context, userID int64, password string) {
	log := logger.FromContext(ctx)

	record, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("rehashing password failed")
		return
	}

	if _, err = a.userRepository.UpdateUser(ctx, userID, models.UserUpdate{PasswordHash: &record}); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("storing upgraded password hash failed")
		return
	}

	log.Info().Int64("user_id", userID).Msg("password hash upgraded")
}

// CreateToken issues a bearer session token for user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.TokenResponse, error) {
	issued, err := a.issuer.Issue(strconv.FormatInt(user.UserID, 10), 0)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenResponse{
		AccessToken: issued.Token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
	}, nil
}

// ParseToken verifies tokenString and returns the user ID in its subject.
// token.ErrExpiredToken and token.ErrInvalidToken are passed through so the
// transport can tell them apart.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (int64, error) {
	subject, err := a.issuer.Subject(tokenString)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: malformed subject", token.ErrInvalidToken)
	}

	return userID, nil
}

// fallbackDummyRecord is a well-formed argon2id record with default
// parameters, used until the hasher manages to produce one.
const fallbackDummyRecord = "$argon2id$v=19$m=65536,t=1,p=4$S3HF+37LPqjMnXvnw/qH0A$PcNGI37kTY3thyZQufBiAXuEJ7YV7apXQ8/AhVo8e2U"

func (a *authService) dummyHash() string {
	a.dummyMu.Lock()
	defer a.dummyMu.Unlock()

	if a.dummyRecord != "" {
		return a.dummyRecord
	}

	record, err := a.hasher.Hash("dummy-password-for-timing")
	if err != nil {
		// not cached: the next unknown-email login retries
		a.logger.Warn().Err(err).Msg("dummy hash generation failed, using fallback record")
		return fallbackDummyRecord
	}

	a.dummyRecord = record
	return a.dummyRecord
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
