package cli

import (
	"context"
	"os"
)

// getSimpleText and getOTP are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getOTP = GetOTP

// Login drives the two-step OTP flow: prompt for the employee number, ask the
// backend to deliver a passcode, then prompt for the passcode and exchange it
// for a session. The session store persists the credential pair before Login
// reports success; a restored session after restart needs no new passcode.
func (a *App) Login(ctx context.Context) error {
	employeeNumber, err := getSimpleText(a.reader, "Enter employee number", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.RequestOTP(ctx, employeeNumber); err != nil {
		printError(err)
		return err
	}
	printlnFn("Passcode sent.")

	otp, err := getOTP(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.VerifyOTP(ctx, employeeNumber, otp); err != nil {
		printError(err)
		return err
	}

	printSuccess("Success!")
	return nil
}

// Logout ends the session. Durable session keys are cleared; other local data
// (config, caches outside the session) is untouched.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		printError(err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}
