// Package services contains application services for the ideatrack client:
// the OTP authentication flow, idea submission and triage, and the glue that
// keeps the idea cache in step with the session.
package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/ideatrack/internal/client/api"
	"github.com/dmitrijs2005/ideatrack/internal/client/session"
	"github.com/dmitrijs2005/ideatrack/internal/common"
)

// AuthAPI is the remote surface of the two-step OTP flow.
type AuthAPI interface {
	SendOTP(ctx context.Context, employeeNumber string) error
	VerifyOTP(ctx context.Context, employeeNumber, otp string) (*api.AuthData, error)
}

// AuthService drives the login flow: request a passcode, then exchange it
// for a session.
type AuthService interface {
	RequestOTP(ctx context.Context, employeeNumber string) error
	VerifyOTP(ctx context.Context, employeeNumber, otp string) error
	Logout(ctx context.Context) error
}

type authService struct {
	api      AuthAPI
	session  *session.Store
	validate *validator.Validate
}

func NewAuthService(a AuthAPI, s *session.Store) AuthService {
	return &authService{api: a, session: s, validate: validator.New()}
}

type otpRequest struct {
	EmployeeNumber string `validate:"required,numeric"`
}

// RequestOTP validates the employee number and asks the backend to deliver
// a passcode. Validation failures are surfaced immediately, never retried.
func (s *authService) RequestOTP(ctx context.Context, employeeNumber string) error {
	if employeeNumber == "" {
		return common.ErrMissingEmployeeNumber
	}
	if err := s.validate.Struct(otpRequest{EmployeeNumber: employeeNumber}); err != nil {
		return fmt.Errorf("invalid employee number: %w", err)
	}
	return s.api.SendOTP(ctx, employeeNumber)
}

// VerifyOTP exchanges the passcode for a session and hands the result to the
// session store. Success is reported only after the credential pair has been
// persisted.
func (s *authService) VerifyOTP(ctx context.Context, employeeNumber, otp string) error {
	if employeeNumber == "" {
		return common.ErrMissingEmployeeNumber
	}
	if otp == "" {
		return common.ErrMissingOTP
	}

	data, err := s.api.VerifyOTP(ctx, employeeNumber, otp)
	if err != nil {
		return err
	}
	return s.session.Login(ctx, data.Token, data.User)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.session.Logout(ctx)
}
