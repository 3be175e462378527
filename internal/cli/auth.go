package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/journalquiz/internal/common"
	"github.com/dmitrijs2005/journalquiz/internal/services"
)

// getSimpleText, getPassword and getRow are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getRow = GetRow

// Register prompts for name, email, phone and password, creates the account
// and starts the quiz for it. The password byte slice is wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nom", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Téléphone", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.identity.Register(ctx, name, email, password, phone)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateIdentity):
			fmt.Fprintln(a.out, "Cet email ou ce téléphone est déjà utilisé.")
		case errors.Is(err, common.ErrorMissingField):
			fmt.Fprintln(a.out, "Email, téléphone et mot de passe sont obligatoires.")
		default:
			a.logger.Error(ctx, "register failed", "err", err)
		}
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Bienvenue, %s !\n", user.Name)
	return a.startQuiz(ctx)
}

// Login prompts for an email or phone number plus password and starts the
// quiz from the saved progress. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Email ou téléphone", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.identity.Login(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Identifiants incorrects.")
		} else {
			a.logger.Error(ctx, "login failed", "err", err)
		}
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Bon retour, %s !\n", user.Name)
	return a.startQuiz(ctx)
}

// Logout ends the session and hands control back to register/login. It is
// accepted without a session so a half-started one can always be dropped.
func (a *App) Logout(ctx context.Context) error {
	if err := a.identity.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "err", err)
		return err
	}
	a.user = nil
	a.controller.Clear()
	fmt.Fprintln(a.out, "Déconnecté.")
	return nil
}
