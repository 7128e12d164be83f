// Package services contains application services for the Atelier client.
// This file defines the authentication service: register, login, session
// resume across restarts and logout.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/atelier/internal/client/client"
	"github.com/dmitrijs2005/atelier/internal/client/models"
	"github.com/dmitrijs2005/atelier/internal/client/repositories/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the session.
//   - Resume: restore the stored session; ok is false when there is none
//     or the server no longer accepts it.
//   - Logout: forget tokens locally and in the journal.
//   - Close: persist the latest refresh token and release the client.
type AuthService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error
	Resume(ctx context.Context) (email string, ok bool, err error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session session.Repository
	email   string
}

func NewAuthService(c client.Client, s session.Repository) AuthService {
	return &authService{client: c, session: s}
}

func (a *authService) Register(ctx context.Context, email, password string) error {
	return a.client.Register(ctx, email, password)
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	if err := a.client.Login(ctx, email, password); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	a.email = email

	if err := a.session.Save(ctx, models.Session{Email: email, RefreshToken: a.client.RefreshToken()}); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Resume(ctx context.Context) (string, bool, error) {
	s, err := a.session.Load(ctx)
	if err != nil {
		return "", false, err
	}
	if s == nil {
		return "", false, nil
	}

	if err := a.client.Resume(ctx, s.RefreshToken); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return "", false, a.session.Clear(ctx)
		}
		return "", false, err
	}
	a.email = s.Email

	if err := a.session.Save(ctx, models.Session{Email: s.Email, RefreshToken: a.client.RefreshToken()}); err != nil {
		return "", false, fmt.Errorf("session saving error: %w", err)
	}
	return s.Email, true, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.Logout()
	a.email = ""
	return a.session.Clear(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	var saveErr error
	if refresh := a.client.RefreshToken(); refresh != "" && a.email != "" {
		saveErr = a.session.Save(ctx, models.Session{Email: a.email, RefreshToken: refresh})
	}
	return errors.Join(saveErr, a.client.Close())
}
