package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/ideatrack/internal/client/models"
)

// AuthData is the payload of a successful OTP verification.
type AuthData struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type sendOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type verifyOTPResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    AuthData `json:"data"`
}

// SendOTP asks the backend to deliver a one-time passcode to the employee's
// registered mobile number.
func (c *Client) SendOTP(ctx context.Context, employeeNumber string) error {
	var resp sendOTPResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/send-otp",
		map[string]string{"employeeNumber": employeeNumber}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		if resp.Message != "" {
			return errors.New(resp.Message)
		}
		return errors.New("failed to send OTP")
	}
	return nil
}

// VerifyOTP exchanges the employee number and passcode for a session.
// The returned AuthData may be incomplete on a misbehaving backend; the
// session store validates it before accepting the login.
func (c *Client) VerifyOTP(ctx context.Context, employeeNumber, otp string) (*AuthData, error) {
	var resp verifyOTPResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/verify-otp",
		map[string]string{"employeeNumber": employeeNumber, "otp": otp}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		if resp.Message != "" {
			return nil, errors.New(resp.Message)
		}
		return nil, errors.New("login failed")
	}
	return &resp.Data, nil
}
