package http

import (
	"context"

	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/service"
	"github.com/MKhiriev/go-pass-god/models"
)

// Each stub embeds the service interface it fakes; methods a test does not
// override panic if called.

type stubAppInfo struct{ service.AppInfoService }

func (stubAppInfo) GetAppVersion(context.Context) string { return "1.2.3" }

func (stubAppInfo) Info(context.Context) models.ServiceInfo {
	return models.ServiceInfo{Message: "Welcome to PassGod API", Version: "1.2.3", Status: "running"}
}

func (stubAppInfo) Health(context.Context) models.HealthStatus {
	return models.HealthStatus{Status: "healthy", Version: "1.2.3"}
}

type stubAuth struct {
	service.AuthService
	parseTokenFn  func(ctx context.Context, tok string) (int64, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.TokenResponse, error)
}

func (s stubAuth) ParseToken(ctx context.Context, tok string) (int64, error) {
	return s.parseTokenFn(ctx, tok)
}

func (s stubAuth) Login(ctx context.Context, email, password string) (models.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s stubAuth) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return s.registerFn(ctx, req)
}

func (s stubAuth) CreateToken(ctx context.Context, user models.User) (models.TokenResponse, error) {
	return s.createTokenFn(ctx, user)
}

type stubUsers struct {
	service.UserService
	meFn func(ctx context.Context, userID int64) (models.User, error)
}

func (s stubUsers) Me(ctx context.Context, userID int64) (models.User, error) {
	return s.meFn(ctx, userID)
}

type stubPasswords struct {
	service.PasswordService
	createFn func(ctx context.Context, userID int64, in models.PasswordInput) (models.Password, error)
	listFn   func(ctx context.Context, userID int64, page models.Page) ([]models.Password, error)
	revealFn func(ctx context.Context, userID, id int64) (models.RevealedSecret, error)
}

func (s stubPasswords) Create(ctx context.Context, userID int64, in models.PasswordInput) (models.Password, error) {
	return s.createFn(ctx, userID, in)
}

func (s stubPasswords) List(ctx context.Context, userID int64, page models.Page) ([]models.Password, error) {
	return s.listFn(ctx, userID, page)
}

func (s stubPasswords) Reveal(ctx context.Context, userID, id int64) (models.RevealedSecret, error) {
	return s.revealFn(ctx, userID, id)
}

type stubShares struct {
	service.ShareService
	consumeFn func(ctx context.Context, token string) (models.ShareConsumeResponse, error)
}

func (s stubShares) Consume(ctx context.Context, token string) (models.ShareConsumeResponse, error) {
	return s.consumeFn(ctx, token)
}

type stubBreach struct {
	service.BreachService
	checkPasswordFn func(ctx context.Context, secret string) models.BreachStatus
	alertsFn        func(ctx context.Context, filter models.AlertFilter) ([]models.BreachAlert, error)
}

func (s stubBreach) CheckPassword(ctx context.Context, secret string) models.BreachStatus {
	return s.checkPasswordFn(ctx, secret)
}

func (s stubBreach) Alerts(ctx context.Context, filter models.AlertFilter) ([]models.BreachAlert, error) {
	return s.alertsFn(ctx, filter)
}

type stubPrivateStorage struct {
	service.PrivateStorageService
	unlockFn    func(ctx context.Context, userID int64, req models.LockRequest) error
	listItemsFn func(ctx context.Context, userID int64, itemType *string) ([]models.PrivateItem, error)
}

func (s stubPrivateStorage) Unlock(ctx context.Context, userID int64, req models.LockRequest) error {
	return s.unlockFn(ctx, userID, req)
}

func (s stubPrivateStorage) ListItems(ctx context.Context, userID int64, itemType *string) ([]models.PrivateItem, error) {
	return s.listItemsFn(ctx, userID, itemType)
}

type stubAdmin struct {
	service.AdminService
	listUsersFn func(ctx context.Context, page models.Page) ([]models.User, error)
}

func (s stubAdmin) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	return s.listUsersFn(ctx, page)
}

// acceptToken authenticates "good-token" as user 1 and "admin-token" as
// user 2.
func acceptToken(_ context.Context, tok string) (int64, error) {
	switch tok {
	case "good-token":
		return 1, nil
	case "admin-token":
		return 2, nil
	}
	return 0, errBadTestToken
}

func newTestHandler(services *service.Services) *Handler {
	if services.AppInfoService == nil {
		services.AppInfoService = stubAppInfo{}
	}
	if services.AuthService == nil {
		services.AuthService = stubAuth{parseTokenFn: acceptToken}
	}
	return NewHandler(services, logger.Nop())
}
