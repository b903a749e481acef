package cli

import (
	"context"
	"errors"
	"os"

	"github.com/jaynujangad03/moodcam/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a first name, email and password (entered twice) and
// creates the account. Duplicate emails leave the existing account untouched
// and are reported to the user.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match.")
		return errors.New("password confirmation mismatch")
	}

	if err := a.auth.Register(ctx, firstName, email, string(password)); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			printlnFn("An account with this email already exists.")
		} else {
			printlnFn("Registration failed, please try again.")
		}
		return err
	}

	printlnFn("Account created, you can login now.")
	return nil
}

// Login prompts for credentials and installs the session on success. The
// greeting prefers the saved display name over the registration first name.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, ok := a.auth.Authenticate(ctx, email, string(password))
	if !ok {
		printlnFn("Invalid email or password.")
		return nil
	}
	a.session.Set(sess)

	name, err := a.store.Profiles().GetName(ctx, sess.Email)
	if err != nil || name == "" {
		name = sess.FirstName
	}
	printlnFn("Welcome back, " + name + "!")

	// One daily reminder per login; re-logging replaces it.
	a.daily.CancelAll()
	a.daily.ScheduleDaily(a.config.DailyReminderHour, a.config.DailyReminderMinute,
		"Time to check in with MoodCam!")
	return nil
}

// Logout clears the session and disarms every pending reminder.
func (a *App) Logout(ctx context.Context) error {
	a.session.Clear()
	a.nudges.CancelAll()
	a.daily.CancelAll()
	printlnFn("Logged out.")
	return nil
}

// SetName saves the display name shown in greetings.
func (a *App) SetName(ctx context.Context) error {
	email, err := a.currentEmail()
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.store.Profiles().SetName(ctx, email, name); err != nil {
		printlnFn("Could not save the name.")
		return err
	}
	printlnFn("Saved. Hello, " + name + "!")
	return nil
}
