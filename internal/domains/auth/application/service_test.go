package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	authmemory "github.com/Apurer/scanpack-api/internal/domains/auth/adapters/memory"
	"github.com/Apurer/scanpack-api/internal/domains/auth/ports"
)

func TestLogin_Success(t *testing.T) {
	svc := NewService(Credentials{Username: "warehouse", Password: "secret"}, authmemory.NewSessionStore())

	token, err := svc.Login(context.Background(), "warehouse", "secret")

	require.NoError(t, err)
	require.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(Credentials{Username: "warehouse", Password: "secret"}, authmemory.NewSessionStore())

	_, err := svc.Login(context.Background(), "warehouse", "nope")

	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogin_EmptyInput(t *testing.T) {
	svc := NewService(Credentials{Username: "warehouse", Password: "secret"}, authmemory.NewSessionStore())

	_, err := svc.Login(context.Background(), "  ", "secret")

	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogin_NoCredentialsConfigured(t *testing.T) {
	svc := NewService(Credentials{}, authmemory.NewSessionStore())

	_, err := svc.Login(context.Background(), "warehouse", "secret")

	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogout_UnknownTokenIsNoop(t *testing.T) {
	svc := NewService(Credentials{Username: "warehouse", Password: "secret"}, authmemory.NewSessionStore())

	svc.Logout(context.Background(), "never-issued")
}
