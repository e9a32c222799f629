package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-god/internal/adapter"
	"github.com/MKhiriev/go-pass-god/internal/crypto"
	"github.com/MKhiriev/go-pass-god/internal/exchange"
	"github.com/MKhiriev/go-pass-god/internal/service"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/internal/token"
	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBadTestToken = fmt.Errorf("%w: signature", token.ErrInvalidToken)

func serve(h *Handler, method, target, bearer string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func detailOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Detail
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("invalid email")), http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrInvalidPIN, http.StatusUnauthorized},
		{service.ErrStorageLocked, http.StatusForbidden},
		{service.ErrStorageNotFound, http.StatusNotFound},
		{fmt.Errorf("getting password failed: %w", store.ErrNotFound), http.StatusNotFound},
		{exchange.ErrNotFound, http.StatusNotFound},
		{store.ErrAlreadyExists, http.StatusConflict},
		{exchange.ErrInvalidTTL, http.StatusBadRequest},
		{adapter.ErrBreachCheckUnavailable, http.StatusServiceUnavailable},
		{crypto.ErrDecryption, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestDetailFromError_HidesServerErrors(t *testing.T) {
	assert.Equal(t, detailInternal, detailFromError(fmt.Errorf("%w: pq: relation missing", store.ErrExecutingQuery)))
	assert.Equal(t, detailInternal, detailFromError(crypto.ErrDecryption))
	assert.Equal(t, "invalid or expired", detailFromError(exchange.ErrNotFound))
	assert.Equal(t, "invalid data provided: invalid email", detailFromError(fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("invalid email"))))
}

func TestAuthMiddleware(t *testing.T) {
	expired := func(context.Context, string) (int64, error) { return 0, token.ErrExpiredToken }

	tests := []struct {
		name       string
		header     string
		parse      func(context.Context, string) (int64, error)
		wantStatus int
		wantDetail string
	}{
		{name: "no header", parse: acceptToken, wantStatus: http.StatusUnauthorized, wantDetail: "not authenticated"},
		{name: "wrong scheme", header: "Basic abc", parse: acceptToken, wantStatus: http.StatusUnauthorized, wantDetail: "invalid credentials"},
		{name: "invalid token", header: "Bearer forged", parse: acceptToken, wantStatus: http.StatusUnauthorized, wantDetail: "invalid credentials"},
		{name: "expired token", header: "Bearer old", parse: expired, wantStatus: http.StatusUnauthorized, wantDetail: "token is expired"},
		{name: "valid token", header: "bearer good-token", parse: acceptToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{AuthService: stubAuth{parseTokenFn: tt.parse}})

			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
				assert.Equal(t, tt.wantDetail, detailOf(t, rr))
				return
			}
			assert.Equal(t, int64(1), gotUserID)
		})
	}
}

func TestAdminRoutes(t *testing.T) {
	users := stubUsers{meFn: func(_ context.Context, id int64) (models.User, error) {
		return models.User{UserID: id, IsActive: true, IsAdmin: id == 2}, nil
	}}
	admin := stubAdmin{listUsersFn: func(_ context.Context, page models.Page) ([]models.User, error) {
		return []models.User{{UserID: 1}, {UserID: 2}}, nil
	}}
	h := newTestHandler(&service.Services{UserService: users, AdminService: admin})

	rr := serve(h, http.MethodGet, "/api/v1/admin/users", "good-token", "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Admin access required", detailOf(t, rr))

	rr = serve(h, http.MethodGet, "/api/v1/admin/users", "admin-token", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list []models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	rr = serve(h, http.MethodGet, "/api/v1/admin/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestTraceID(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rr := serve(h, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rr = httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	assert.Equal(t, "trace-123", rr.Header().Get("X-Trace-ID"))
}

func TestPublicInfoRoutes(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rr := serve(h, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var info models.ServiceInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, "running", info.Status)

	rr = serve(h, http.MethodGet, "/version", "", "")
	assert.Equal(t, "1.2.3", rr.Body.String())
}

func TestMethodNotAllowedAnswersNotFound(t *testing.T) {
	h := newTestHandler(&service.Services{})

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodPost, "/health", "", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/nowhere", "", "").Code)
}

func TestLoginRoutes(t *testing.T) {
	auth := stubAuth{
		parseTokenFn: acceptToken,
		loginFn: func(_ context.Context, email, password string) (models.User, error) {
			if email == "alice@example.com" && password == "secret-pass" {
				return models.User{UserID: 1}, nil
			}
			return models.User{}, service.ErrInvalidCredentials
		},
		createTokenFn: func(context.Context, models.User) (models.TokenResponse, error) {
			return models.TokenResponse{AccessToken: "jwt", TokenType: "bearer"}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := serve(h, http.MethodPost, "/api/v1/auth/login", "", `{"email":"alice@example.com","password":"secret-pass"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "jwt", resp.AccessToken)

	form := url.Values{"username": {"alice@example.com"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr = httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid credentials", detailOf(t, rr))
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))

	rr = serve(h, http.MethodPost, "/api/v1/auth/login", "", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterConflict(t *testing.T) {
	auth := stubAuth{
		parseTokenFn: acceptToken,
		registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
			return models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrAlreadyExists)
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := serve(h, http.MethodPost, "/api/v1/auth/register", "", `{"email":"a@b.co","full_name":"A","password":"long enough"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestPasswordRoutes(t *testing.T) {
	var gotPage models.Page
	passwords := stubPasswords{
		createFn: func(_ context.Context, userID int64, in models.PasswordInput) (models.Password, error) {
			return models.Password{PasswordID: 5, UserID: userID, Title: in.Title, EncryptedPassword: "sealed"}, nil
		},
		listFn: func(_ context.Context, _ int64, page models.Page) ([]models.Password, error) {
			gotPage = page
			return []models.Password{}, nil
		},
		revealFn: func(_ context.Context, userID, id int64) (models.RevealedSecret, error) {
			if id != 5 {
				return models.RevealedSecret{}, fmt.Errorf("getting password failed: %w", store.ErrNotFound)
			}
			return models.RevealedSecret{ID: id, Password: "hunter22"}, nil
		},
	}
	h := newTestHandler(&service.Services{PasswordService: passwords})

	rr := serve(h, http.MethodPost, "/api/v1/passwords/", "good-token", `{"title":"GitHub","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "sealed")

	rr = serve(h, http.MethodGet, "/api/v1/passwords?skip=10&limit=5", "good-token", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.Page{Skip: 10, Limit: 5}, gotPage)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = serve(h, http.MethodGet, "/api/v1/passwords?limit=abc", "good-token", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(h, http.MethodGet, "/api/v1/passwords/5/reveal", "good-token", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"id":5,"password":"hunter22"}`, rr.Body.String())

	rr = serve(h, http.MethodGet, "/api/v1/passwords/6/reveal", "good-token", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(h, http.MethodGet, "/api/v1/passwords/x/reveal", "good-token", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestConsumeShareIsPublic(t *testing.T) {
	shares := stubShares{consumeFn: func(_ context.Context, tok string) (models.ShareConsumeResponse, error) {
		if tok == "live" {
			return models.ShareConsumeResponse{Data: "payload"}, nil
		}
		return models.ShareConsumeResponse{}, exchange.ErrNotFound
	}}
	h := newTestHandler(&service.Services{ShareService: shares})

	rr := serve(h, http.MethodGet, "/api/v1/share/live", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":"payload"}`, rr.Body.String())

	rr = serve(h, http.MethodGet, "/api/v1/share/used", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "invalid or expired", detailOf(t, rr))
}

func TestBreachRoutes(t *testing.T) {
	var gotFilter models.AlertFilter
	breach := stubBreach{
		checkPasswordFn: func(context.Context, string) models.BreachStatus { return models.BreachStatusUnavailable },
		alertsFn: func(_ context.Context, filter models.AlertFilter) ([]models.BreachAlert, error) {
			gotFilter = filter
			return []models.BreachAlert{}, nil
		},
	}
	h := newTestHandler(&service.Services{BreachService: breach})

	rr := serve(h, http.MethodPost, "/api/v1/breach/check-password", "good-token", `{"password":"p"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rr.Body.String())

	rr = serve(h, http.MethodGet, "/api/v1/breach/alerts?resolved=false", "good-token", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, gotFilter.Resolved)
	assert.False(t, *gotFilter.Resolved)
	assert.Equal(t, int64(1), gotFilter.UserID)

	rr = serve(h, http.MethodGet, "/api/v1/breach/alerts?resolved=maybe", "good-token", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPrivateStorageRoutes(t *testing.T) {
	storage := stubPrivateStorage{
		unlockFn: func(_ context.Context, _ int64, req models.LockRequest) error {
			if req.Pin != nil && *req.Pin == "1234" {
				return nil
			}
			return service.ErrInvalidPIN
		},
		listItemsFn: func(context.Context, int64, *string) ([]models.PrivateItem, error) {
			return nil, service.ErrStorageLocked
		},
	}
	h := newTestHandler(&service.Services{PrivateStorageService: storage})

	rr := serve(h, http.MethodPost, "/api/v1/private-storage/unlock", "good-token", `{"pin":"1234"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(h, http.MethodPost, "/api/v1/private-storage/unlock", "good-token", `{"pin":"0000"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid PIN", detailOf(t, rr))

	rr = serve(h, http.MethodGet, "/api/v1/private-storage/items", "good-token", "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "private storage is locked or not found", detailOf(t, rr))
}
