package cli

import (
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.loggedIn = true
	return f.record("register", nil)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Show(ctx context.Context) error     { return f.record("show", nil) }
func (f *fakeExec) Answer(ctx context.Context) error   { return f.record("answer", nil) }
func (f *fakeExec) Solution(ctx context.Context) error { return f.record("solution", nil) }
func (f *fakeExec) Next(ctx context.Context) error     { return f.record("next", nil) }
func (f *fakeExec) Jump(ctx context.Context, args []string) error {
	return f.record("jump", args)
}
func (f *fakeExec) Search(ctx context.Context, args []string) error {
	return f.record("search", args)
}
func (f *fakeExec) Reset(ctx context.Context) error { return f.record("reset", nil) }
func (f *fakeExec) Account(ctx context.Context, args []string) error {
	return f.record("account", args)
}
func (f *fakeExec) AddQuiz(ctx context.Context) error { return f.record("addquiz", nil) }
func (f *fakeExec) Import(ctx context.Context, args []string) error {
	return f.record("import", args)
}

func (f *fakeExec) ClearQuizzes(ctx context.Context) error { return f.record("clearquizzes", nil) }

func silence(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i], _ = v.(string)
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silence(t)

	input := rdr(strings.Join([]string{
		"help",
		"answer",
		"login",
		"help",
		"show",
		"answer",
		"solution",
		"next",
		"jump 3",
		"search achat marchandises",
		"account 4411",
		"addquiz",
		"import quiz.xlsx",
		"clearquizzes",
		"reset",
		"foobar",
		"logout",
		"next",
		"exit",
		"show",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}

	runREPL(context.Background(), exec, func() string { return "status" }, input)

	want := []string{"login", "show", "answer", "solution", "next", "jump", "search", "account", "addquiz", "import", "clearquizzes", "reset", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	if got := strings.Join(exec.args[5], " "); got != "3" {
		t.Fatalf("jump args: %q", got)
	}
	if got := strings.Join(exec.args[6], " "); got != "achat marchandises" {
		t.Fatalf("search args: %q", got)
	}
}

func TestRunREPL_GuardsAndQuit(t *testing.T) {
	printed := silence(t)

	input := rdr("next\naccount 6111\nquit\n")
	exec := &fakeExec{loggedIn: false}

	runREPL(context.Background(), exec, func() string { return "s" }, input)

	if len(exec.calls) != 1 || exec.calls[0] != "account" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if !strings.Contains(strings.Join(*printed, "\n"), "Connectez-vous") {
		t.Fatalf("missing login hint in %v", *printed)
	}
}

func TestRunREPL_EOFStops(t *testing.T) {
	silence(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("show"))

	if len(exec.calls) != 1 || exec.calls[0] != "show" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_LogoutAllowedWithoutSession(t *testing.T) {
	silence(t)

	exec := &fakeExec{loggedIn: false}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("logout\nexit\n"))

	if len(exec.calls) != 1 || exec.calls[0] != "logout" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
