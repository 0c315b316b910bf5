// Package services contains application services for the ComboVault client.
// This file defines the authentication service: login, register and a
// liveness probe against the server.
package services

import (
	"context"
	"fmt"

	"github.com/fgclabs/combovault/internal/client/client"
	"github.com/fgclabs/combovault/internal/common"
	"github.com/fgclabs/combovault/internal/cryptox"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: derive credentials from the password and authenticate.
//   - Register: create a new user on the server.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username string, password []byte) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client.
type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

// Login fetches the account salt, derives a verifier from the password
// and authenticates against the server. The password itself never leaves
// the client.
func (a *authService) Login(ctx context.Context, userName string, password []byte) error {
	salt, err := a.client.GetSalt(ctx, userName)
	if err != nil {
		return fmt.Errorf("get salt error: %w", err)
	}

	masterKey := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(masterKey)
	verifierCandidate := cryptox.MakeVerifier(masterKey)

	if err := a.client.Login(ctx, userName, verifierCandidate); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	return nil
}

// Register creates a new account on the server. It generates a random salt,
// derives a master key from the provided password, computes a verifier,
// and sends salt/verifier to the server.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	verifier := cryptox.MakeVerifier(key)

	if err := a.client.Register(ctx, username, salt, verifier); err != nil {
		return err
	}
	return nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
