package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jobtechradar/radar/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates the account; on
// success the session is already logged in (auto-login).
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Nom d'utilisateur", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.session.Register(ctx, email, username, string(password)); err != nil {
		log.Println(a.session.Err())
		return err
	}

	fmt.Println("Compte créé, vous êtes connecté.")
	return nil
}

// Login prompts for credentials and authenticates the session.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.session.Login(ctx, identifier, string(password)); err != nil {
		log.Println(a.session.Err())
		return err
	}

	fmt.Println("Connexion réussie.")
	return nil
}

// Logout clears the persisted token and resets the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Déconnecté.")
	return nil
}

// Whoami prints the current account.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		fmt.Println("Non connecté.")
		return nil
	}
	fmt.Printf("%s <%s>\n", u.Username, u.Email)
	return nil
}
