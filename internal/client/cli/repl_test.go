package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

// fakeExec records which commands the REPL dispatched.
type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Register(ctx context.Context) error    { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error       { return f.record("login") }
func (f *fakeExec) Logout(ctx context.Context) error      { return f.record("logout") }
func (f *fakeExec) Whoami(ctx context.Context) error      { return f.record("whoami") }
func (f *fakeExec) List(ctx context.Context) error        { return f.record("list") }
func (f *fakeExec) Add(ctx context.Context) error         { return f.record("add") }
func (f *fakeExec) Delete(ctx context.Context) error      { return f.record("del") }
func (f *fakeExec) Like(ctx context.Context) error        { return f.record("like") }
func (f *fakeExec) EditProfile(ctx context.Context) error { return f.record("profile") }
func (f *fakeExec) EditAvatar(ctx context.Context) error  { return f.record("avatar") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(t *testing.T, f *fakeExec, script string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
}

func TestREPL_ProtectedCommandsRedirectWhenLoggedOut(t *testing.T) {
	out := captureOutput(t)
	f := &fakeExec{loggedIn: false}

	runScript(t, f, "list\nlike\nexit\n")

	if len(f.calls) != 0 {
		t.Fatalf("protected commands dispatched while logged out: %v", f.calls)
	}
	found := false
	for _, l := range *out {
		if strings.Contains(l, "/sign-up") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no redirect message printed: %v", *out)
	}
}

func TestREPL_DispatchesWhenLoggedIn(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{loggedIn: true}

	runScript(t, f, "whoami\nlist\nadd\ndel\nlike\nprofile\navatar\nlogout\nexit\n")

	want := []string{"whoami", "list", "add", "del", "like", "profile", "avatar", "logout"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("calls[%d] = %q, want %q", i, f.calls[i], want[i])
		}
	}
}

func TestREPL_AuthCommandsAvailableLoggedOut(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{loggedIn: false}

	runScript(t, f, "register\nlogin\nquit\n")

	if len(f.calls) != 2 || f.calls[0] != "register" || f.calls[1] != "login" {
		t.Fatalf("calls = %v", f.calls)
	}
}

func TestREPL_UnknownCommand(t *testing.T) {
	out := captureOutput(t)
	f := &fakeExec{}

	runScript(t, f, "frobnicate\nexit\n")

	found := false
	for _, l := range *out {
		if strings.Contains(l, "Unknown command") {
			found = true
		}
	}
	if !found {
		t.Fatalf("unknown command not reported: %v", *out)
	}
}
