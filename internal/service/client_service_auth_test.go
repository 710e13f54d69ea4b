// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pet-storefront/internal/adapter"
	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/internal/mock"
	"github.com/MKhiriev/go-pet-storefront/internal/session"
	"github.com/MKhiriev/go-pet-storefront/models"
)

// newTestAuthSvc builds a clientAuthService over mocks and a real session
// store.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (
	*clientAuthService,
	*mock.MockAuthGateway,
	*mock.MockCredentialCipher,
	*session.Store,
) {
	t.Helper()
	gateway := mock.NewMockAuthGateway(ctrl)
	cipher := mock.NewMockCredentialCipher(ctrl)
	store := session.NewStore()

	svc := NewClientAuthService(gateway, cipher, store, logger.Nop()).(*clientAuthService)
	return svc, gateway, cipher, store
}

func account(name, email string) models.Account {
	return models.Account{
		UserDetails: models.UserDetails{Name: name, Email: email},
		AccessToken: "token",
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway, cipher, store := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		cipher.EXPECT().Encrypt("secret").Return("U2FsdGVkX1enc", nil),
		gateway.EXPECT().EmailLogin(ctx, "ann@x.io", "U2FsdGVkX1enc").Return(account("Ann", "ann@x.io"), nil),
	)

	got, err := svc.Login(ctx, models.LoginFields{EmailAddress: "ann@x.io", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, models.UserDetails{Name: "Ann", Email: "ann@x.io"}, got)
	assert.Equal(t, got, store.UserDetails())
}

func TestClientAuthService_Login_StoresExactlyReturnedDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway, cipher, store := newTestAuthSvc(t, ctrl)

	cipher.EXPECT().Encrypt(gomock.Any()).Return("c", nil)
	gateway.EXPECT().EmailLogin(gomock.Any(), "ANN@X.IO", "c").Return(account("Ann Lee", "ann@x.io"), nil)

	_, err := svc.Login(context.Background(), models.LoginFields{EmailAddress: "ANN@X.IO", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "ann@x.io", store.UserDetails().Email)
	assert.Equal(t, "Ann Lee", store.UserDetails().Name)
}

func TestClientAuthService_Login_ShortPassword(t *testing.T) {
	tests := []string{"", "a", "abcd", "пять"}

	for _, password := range tests {
		t.Run(fmt.Sprintf("%q", password), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _, store := newTestAuthSvc(t, ctrl)

			_, err := svc.Login(context.Background(), models.LoginFields{EmailAddress: "ann@x.io", Password: password})

			assert.ErrorIs(t, err, ErrInvalidPassword)
			assert.Equal(t, MsgInvalidPassword, UserMessage(err))
			assert.False(t, store.UserDetails().IsAuthenticated())
		})
	}
}

func TestClientAuthService_Login_FiveCharactersAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway, cipher, _ := newTestAuthSvc(t, ctrl)

	cipher.EXPECT().Encrypt("12345").Return("c", nil)
	gateway.EXPECT().EmailLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(account("Ann", "ann@x.io"), nil)

	_, err := svc.Login(context.Background(), models.LoginFields{EmailAddress: "ann@x.io", Password: "12345"})
	assert.NoError(t, err)
}

func TestClientAuthService_PasswordLengthCountsCodePoints(t *testing.T) {
	// four emoji are eight UTF-16 units but four characters
	fourEmoji := "\U0001F436\U0001F436\U0001F436\U0001F436"
	fiveEmoji := fourEmoji + "\U0001F436"

	ctrl := gomock.NewController(t)
	svc, gateway, cipher, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.LoginFields{EmailAddress: "ann@x.io", Password: fourEmoji})
	assert.ErrorIs(t, err, ErrInvalidPassword)

	fields := validRegistration()
	fields.Password, fields.PasswordConfirm = fourEmoji, fourEmoji
	_, err = svc.Register(context.Background(), fields)
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	cipher.EXPECT().Encrypt(fiveEmoji).Return("c", nil)
	gateway.EXPECT().EmailLogin(gomock.Any(), "ann@x.io", "c").Return(account("Ann", "ann@x.io"), nil)

	_, err = svc.Login(context.Background(), models.LoginFields{EmailAddress: "ann@x.io", Password: fiveEmoji})
	assert.NoError(t, err)
}

func TestClientAuthService_Login_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway, cipher, store := newTestAuthSvc(t, ctrl)

	cipher.EXPECT().Encrypt(gomock.Any()).Return("c", nil)
	gateway.EXPECT().EmailLogin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Account{}, fmt.Errorf("AuthenticateUser: %w", adapter.ErrAuthRejected))

	_, err := svc.Login(context.Background(), models.LoginFields{EmailAddress: "ann@x.io", Password: "secret"})

	assert.ErrorIs(t, err, ErrWrongCredentials)
	assert.Equal(t, MsgWrongCredentials, UserMessage(err))
	assert.False(t, store.UserDetails().IsAuthenticated())
}

func TestClientAuthService_Login_GatewayFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    error
		message string
	}{
		{
			name:    "server unavailable",
			err:     fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrServerUnavailable),
			want:    ErrServerUnavailable,
			message: MsgServerUnavailable,
		},
		{
			name:    "graphql error",
			err:     fmt.Errorf("%w: boom", adapter.ErrGraphQL),
			want:    ErrRequestFailed,
			message: MsgSomethingWentWrong,
		},
		{
			name:    "malformed",
			err:     adapter.ErrMalformedResponse,
			want:    ErrRequestFailed,
			message: MsgSomethingWentWrong,
		},
		{
			name:    "canceled",
			err:     fmt.Errorf("request: %w", context.Canceled),
			want:    context.Canceled,
			message: MsgSomethingWentWrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, gateway, cipher, store := newTestAuthSvc(t, ctrl)

			cipher.EXPECT().Encrypt(gomock.Any()).Return("c", nil)
			gateway.EXPECT().EmailLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Account{}, tt.err)

			_, err := svc.Login(context.Background(), models.LoginFields{EmailAddress: "ann@x.io", Password: "secret"})

			assert.ErrorIs(t, err, tt.want)
			assert.NotErrorIs(t, err, ErrWrongCredentials)
			assert.Equal(t, tt.message, UserMessage(err))
			assert.False(t, store.UserDetails().IsAuthenticated())
		})
	}
}

func TestClientAuthService_Login_CipherError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, cipher, _ := newTestAuthSvc(t, ctrl)

	cipher.EXPECT().Encrypt(gomock.Any()).Return("", errors.New("no entropy"))

	_, err := svc.Login(context.Background(), models.LoginFields{EmailAddress: "ann@x.io", Password: "secret"})

	assert.ErrorIs(t, err, ErrObfuscatingPassword)
}

// ── GoogleLogin ──────────────────────────────────────────────────────────────

func TestClientAuthService_GoogleLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway, _, store := newTestAuthSvc(t, ctrl)

	gateway.EXPECT().GoogleLogin(gomock.Any(), "google-token").Return(account("Ann", "ann@x.io"), nil)

	got, err := svc.GoogleLogin(context.Background(), "google-token")

	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, got, store.UserDetails())
}

func TestClientAuthService_GoogleLogin_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.GoogleLogin(context.Background(), "")

	assert.ErrorIs(t, err, ErrGoogleLoginFailed)
}

func TestClientAuthService_GoogleLogin_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway, _, store := newTestAuthSvc(t, ctrl)

	gateway.EXPECT().GoogleLogin(gomock.Any(), gomock.Any()).Return(models.Account{}, adapter.ErrAuthRejected)

	_, err := svc.GoogleLogin(context.Background(), "google-token")

	assert.ErrorIs(t, err, ErrGoogleLoginFailed)
	assert.Equal(t, MsgGoogleLoginFailed, UserMessage(err))
	assert.False(t, store.UserDetails().IsAuthenticated())
}

func TestClientAuthService_Login_CanceledAfterAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway, cipher, store := newTestAuthSvc(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	cipher.EXPECT().Encrypt("secret").Return("U2FsdGVkX1enc", nil)
	gateway.EXPECT().EmailLogin(ctx, "ann@x.io", "U2FsdGVkX1enc").
		DoAndReturn(func(context.Context, string, string) (models.Account, error) {
			cancel()
			return account("Ann", "ann@x.io"), nil
		})
	gateway.EXPECT().SetToken("")

	_, err := svc.Login(ctx, models.LoginFields{EmailAddress: "ann@x.io", Password: "secret"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.False(t, store.UserDetails().IsAuthenticated())
}

func TestClientAuthService_GoogleLogin_CanceledAfterAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway, _, store := newTestAuthSvc(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	gateway.EXPECT().GoogleLogin(ctx, "google-token").
		DoAndReturn(func(context.Context, string) (models.Account, error) {
			cancel()
			return account("Ann", "ann@x.io"), nil
		})
	gateway.EXPECT().SetToken("")

	_, err := svc.GoogleLogin(ctx, "google-token")

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, store.UserDetails().IsAuthenticated())
}

// ── Register ─────────────────────────────────────────────────────────────────

func validRegistration() models.RegistrationFields {
	return models.RegistrationFields{
		Name:            "Ann",
		EmailAddress:    "ann@x.io",
		Password:        "secret",
		PasswordConfirm: "secret",
	}
}

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway, cipher, store := newTestAuthSvc(t, ctrl)

	gomock.InOrder(
		cipher.EXPECT().Encrypt("secret").Return("enc", nil),
		gateway.EXPECT().Register(gomock.Any(), "Ann", "ann@x.io", "enc").
			Return(models.UserDetails{Name: "Ann", Email: "ann@x.io"}, nil),
	)

	got, err := svc.Register(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.False(t, store.UserDetails().IsAuthenticated(), "registration must not log in")
}

func TestClientAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *models.RegistrationFields)
		want    error
		message string
	}{
		{
			name:    "empty name",
			mutate:  func(f *models.RegistrationFields) { f.Name = "" },
			want:    ErrEmptyField,
			message: "Invalid. name is empty",
		},
		{
			name:    "empty email",
			mutate:  func(f *models.RegistrationFields) { f.EmailAddress = "" },
			want:    ErrEmptyField,
			message: "Invalid. emailAddress is empty",
		},
		{
			name:    "empty password",
			mutate:  func(f *models.RegistrationFields) { f.Password = "" },
			want:    ErrEmptyField,
			message: "Invalid. password is empty",
		},
		{
			name:    "empty confirmation",
			mutate:  func(f *models.RegistrationFields) { f.PasswordConfirm = "" },
			want:    ErrEmptyField,
			message: "Invalid. passwordConfirm is empty",
		},
		{
			name:    "first empty field wins",
			mutate:  func(f *models.RegistrationFields) { f.EmailAddress = ""; f.PasswordConfirm = "" },
			want:    ErrEmptyField,
			message: "Invalid. emailAddress is empty",
		},
		{
			name:    "short password",
			mutate:  func(f *models.RegistrationFields) { f.Password = "abc"; f.PasswordConfirm = "abc" },
			want:    ErrPasswordTooShort,
			message: MsgPasswordTooShort,
		},
		{
			name:    "mismatch",
			mutate:  func(f *models.RegistrationFields) { f.PasswordConfirm = "secreT" },
			want:    ErrPasswordMismatch,
			message: MsgPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _, _ := newTestAuthSvc(t, ctrl)

			fields := validRegistration()
			tt.mutate(&fields)

			_, err := svc.Register(context.Background(), fields)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.message, UserMessage(err))
		})
	}
}

func TestClientAuthService_Register_AlreadyRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway, cipher, _ := newTestAuthSvc(t, ctrl)

	cipher.EXPECT().Encrypt(gomock.Any()).Return("enc", nil)
	gateway.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.UserDetails{}, adapter.ErrAlreadyRegistered)

	_, err := svc.Register(context.Background(), validRegistration())

	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	assert.Equal(t, MsgEmailAlreadyRegistered, UserMessage(err))
}

func TestClientAuthService_Register_ServerUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway, cipher, _ := newTestAuthSvc(t, ctrl)

	cipher.EXPECT().Encrypt(gomock.Any()).Return("enc", nil)
	gateway.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.UserDetails{}, adapter.ErrServerUnavailable)

	_, err := svc.Register(context.Background(), validRegistration())

	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.NotErrorIs(t, err, ErrEmailAlreadyRegistered)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "remote success"},
		{name: "remote failure is ignored", err: adapter.ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, gateway, _, store := newTestAuthSvc(t, ctrl)
			store.SetLoggedInUserDetails(models.UserDetails{Name: "Ann", Email: "ann@x.io"})

			gomock.InOrder(
				gateway.EXPECT().Logout(gomock.Any(), "ann@x.io").Return(models.UserDetails{}, tt.err),
				gateway.EXPECT().SetToken(""),
			)

			svc.Logout(context.Background())

			assert.Equal(t, models.UserDetails{}, store.UserDetails())
		})
	}
}
