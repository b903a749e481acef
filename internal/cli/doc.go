// Package cli is the interactive MoodCam terminal client: a small REPL over
// the auth, journal, reminder and music services.
//
// Commands are plain words ("add", "calendar", "export"); interactive input
// is collected with the helpers in input.go. The REPL itself only dispatches;
// command handlers own their prompts and output.
package cli
