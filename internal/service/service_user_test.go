package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/mock"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/internal/validators"
	"github.com/MKhiriev/go-pass-god/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_UpdateMe(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateUserRequest
		setup   func(repo *mock.MockUserRepository, hasher *mock.MockHasher)
		wantErr error
	}{
		{
			name:    "no fields",
			req:     models.UpdateUserRequest{},
			setup:   func(*mock.MockUserRepository, *mock.MockHasher) {},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name: "name only",
			req:  models.UpdateUserRequest{FullName: ptr("New Name")},
			setup: func(repo *mock.MockUserRepository, _ *mock.MockHasher) {
				repo.EXPECT().UpdateUser(gomock.Any(), int64(1), models.UserUpdate{FullName: ptr("New Name")}).
					Return(models.User{UserID: 1, FullName: "New Name"}, nil)
			},
		},
		{
			name: "email is normalized",
			req:  models.UpdateUserRequest{Email: ptr(" New@Example.COM")},
			setup: func(repo *mock.MockUserRepository, _ *mock.MockHasher) {
				repo.EXPECT().UpdateUser(gomock.Any(), int64(1), models.UserUpdate{Email: ptr("new@example.com")}).
					Return(models.User{UserID: 1}, nil)
			},
		},
		{
			name: "wrong current password",
			req:  models.UpdateUserRequest{CurrentPassword: ptr("wrong-one"), NewPassword: ptr("brand new pass")},
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockHasher) {
				repo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, PasswordHash: "rec"}, nil)
				hasher.EXPECT().Verify("wrong-one", "rec").Return(false)
			},
			wantErr: ErrIncorrectPassword,
		},
		{
			name: "password change",
			req:  models.UpdateUserRequest{CurrentPassword: ptr("old-pass"), NewPassword: ptr("brand new pass")},
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockHasher) {
				repo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, PasswordHash: "rec"}, nil)
				hasher.EXPECT().Verify("old-pass", "rec").Return(true)
				hasher.EXPECT().Hash("brand new pass").Return("new-rec", nil)
				repo.EXPECT().UpdateUser(gomock.Any(), int64(1), models.UserUpdate{PasswordHash: ptr("new-rec")}).
					Return(models.User{UserID: 1}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockUserRepository(ctrl)
			hasher := mock.NewMockHasher(ctrl)
			tt.setup(repo, hasher)

			svc := NewUserService(repo, hasher, validators.NewVaultValidator(), logger.Nop())
			_, err := svc.UpdateMe(context.Background(), 1, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserService_MeAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, mock.NewMockHasher(ctrl), validators.NewVaultValidator(), logger.Nop())

	repo.EXPECT().FindUserByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrNotFound)
	_, err := svc.Me(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrNotFound)

	repo.EXPECT().DeleteUser(gomock.Any(), int64(9)).Return(nil)
	assert.NoError(t, svc.DeleteMe(context.Background(), 9))
}
