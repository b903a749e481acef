package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) AddEntry(ctx context.Context) error     { return f.record("add") }
func (f *fakeExec) Today(ctx context.Context) error        { return f.record("today") }
func (f *fakeExec) Calendar(ctx context.Context) error     { return f.record("calendar") }
func (f *fakeExec) History(ctx context.Context) error      { return f.record("history") }
func (f *fakeExec) Gallery(ctx context.Context) error      { return f.record("gallery") }
func (f *fakeExec) Summary(ctx context.Context) error      { return f.record("summary") }
func (f *fakeExec) Weekly(ctx context.Context) error       { return f.record("weekly") }
func (f *fakeExec) Trends(ctx context.Context) error       { return f.record("trends") }
func (f *fakeExec) Export(ctx context.Context) error       { return f.record("export") }
func (f *fakeExec) SetName(ctx context.Context) error      { return f.record("name") }
func (f *fakeExec) ClearEntries(ctx context.Context) error { return f.record("clear") }
func (f *fakeExec) Music(ctx context.Context) error        { return f.record("music") }
func (f *fakeExec) Remind(ctx context.Context) error       { return f.record("remind") }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"add",
		"today",
		"calendar",
		"summary",
		"export",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "add", "today", "calendar", "summary", "export"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_BlankLinesAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("remind\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "remind" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
