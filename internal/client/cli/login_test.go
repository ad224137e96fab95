package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"
)

func quietOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		line := ""
		for i, v := range a {
			if i > 0 {
				line += " "
			}
			line += toString(v)
		}
		lines = append(lines, line)
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func stubInputs(t *testing.T, employeeNumber, otp string) {
	t.Helper()
	origST, origOTP := getSimpleText, getOTP
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return employeeNumber, nil }
	getOTP = func(_ io.Writer) (string, error) { return otp, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getOTP = origOTP
	})
}

type fakeAuth struct {
	otpEmployee string
	otpErr      error

	verifyEmployee string
	verifyOTP      string
	verifyErr      error

	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuth) RequestOTP(_ context.Context, employeeNumber string) error {
	f.otpEmployee = employeeNumber
	return f.otpErr
}
func (f *fakeAuth) VerifyOTP(_ context.Context, employeeNumber, otp string) error {
	f.verifyEmployee, f.verifyOTP = employeeNumber, otp
	return f.verifyErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func TestLogin_TwoStepFlow(t *testing.T) {
	quietOutput(t)
	stubInputs(t, "12345", "1234")

	f := &fakeAuth{}
	a := &App{authService: f}

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.otpEmployee != "12345" {
		t.Fatalf("RequestOTP employee mismatch: %q", f.otpEmployee)
	}
	if f.verifyEmployee != "12345" || f.verifyOTP != "1234" {
		t.Fatalf("VerifyOTP mismatch: %q %q", f.verifyEmployee, f.verifyOTP)
	}
}

func TestLogin_RequestOTPFails_NoVerify(t *testing.T) {
	quietOutput(t)
	stubInputs(t, "12345", "1234")

	f := &fakeAuth{otpErr: errors.New("unknown employee")}
	a := &App{authService: f}

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("want error from RequestOTP")
	}
	if f.verifyEmployee != "" {
		t.Fatalf("VerifyOTP should not have been called: %q", f.verifyEmployee)
	}
}

func TestLogin_VerifyFails(t *testing.T) {
	quietOutput(t)
	stubInputs(t, "12345", "9999")

	f := &fakeAuth{verifyErr: errors.New("invalid passcode")}
	a := &App{authService: f}

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("want error from VerifyOTP")
	}
}

func TestLogout(t *testing.T) {
	quietOutput(t)

	f := &fakeAuth{}
	a := &App{authService: f}
	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatal("Logout not forwarded to the auth service")
	}
}

func TestLogout_ErrorPropagates(t *testing.T) {
	quietOutput(t)

	f := &fakeAuth{logoutErr: errors.New("clean-fail")}
	a := &App{authService: f}
	if err := a.Logout(context.Background()); err == nil {
		t.Fatal("want error from Logout")
	}
}
