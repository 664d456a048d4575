package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword point at the interactive input helpers and
// can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) askCredentials() (string, string, error) {
	phone, err := getSimpleText(a.reader, "Enter phone", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	return phone, password, nil
}

// Register creates a primary account, logs in and shows the recovery id.
func (a *App) Register(ctx context.Context) error {
	phone, password, err := a.askCredentials()
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	sess, err := a.client.Register(ctx, phone, password)
	if err != nil {
		return err
	}
	a.phone = phone

	fmt.Fprintf(a.out, "Account #%d created. Recovery id: %s (keep it safe)\n", sess.AccountID, sess.RecoveryID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	phone, password, err := a.askCredentials()
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if _, err := a.client.Login(ctx, phone, password); err != nil {
		return err
	}
	a.phone = phone

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Recover prints the phone and password bound to a recovery id.
func (a *App) Recover(ctx context.Context) error {
	recoveryID, err := getSimpleText(a.reader, "Enter recovery id", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	phone, password, err := a.client.Recover(ctx, recoveryID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Phone: %s\nPassword: %s\n", phone, password)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.phone = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
