package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddEntry(ctx context.Context) error
	Today(ctx context.Context) error
	Calendar(ctx context.Context) error
	History(ctx context.Context) error
	Gallery(ctx context.Context) error
	Summary(ctx context.Context) error
	Weekly(ctx context.Context) error
	Trends(ctx context.Context) error
	Export(ctx context.Context) error
	SetName(ctx context.Context) error
	ClearEntries(ctx context.Context) error
	Music(ctx context.Context) error
	Remind(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the MoodCam CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - add            — log today's mood
//	  - today          — today's entries, streak and last mood
//	  - calendar       — per-day mood marks
//	  - history        — entries of one month, newest first
//	  - gallery        — entries with photos
//	  - summary        — monthly totals and most frequent mood
//	  - weekly         — 7-day check-in stats
//	  - trends         — mood distribution over the whole journal
//	  - export         — write the journal as a JSON file
//	  - music          — search mood-matched music
//	  - remind         — arm the evening nudge and daily reminder
//	  - name           — set the display name
//	  - clear          — delete all entries
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("moodcam %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, today, calendar, history, gallery, summary, weekly, trends, export, music, remind, name, clear, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "add":
			_ = a.AddEntry(ctx)

		case "today":
			_ = a.Today(ctx)

		case "calendar":
			_ = a.Calendar(ctx)

		case "history":
			_ = a.History(ctx)

		case "gallery":
			_ = a.Gallery(ctx)

		case "summary":
			_ = a.Summary(ctx)

		case "weekly":
			_ = a.Weekly(ctx)

		case "trends":
			_ = a.Trends(ctx)

		case "export":
			_ = a.Export(ctx)

		case "music":
			_ = a.Music(ctx)

		case "remind":
			_ = a.Remind(ctx)

		case "name":
			_ = a.SetName(ctx)

		case "clear":
			_ = a.ClearEntries(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
