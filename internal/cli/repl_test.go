package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool               { return s.loggedIn }
func (s *stubExec) Register(context.Context) error { return s.record("register") }

func (s *stubExec) Login(context.Context) error {
	s.loggedIn = true
	return s.record("login")
}

func (s *stubExec) Logout(context.Context) error {
	s.loggedIn = false
	return s.record("logout")
}

func (s *stubExec) Wallet(context.Context) error   { return s.record("wallet") }
func (s *stubExec) Balance(context.Context) error  { return s.record("balance") }
func (s *stubExec) Mine(context.Context) error     { return s.record("mine") }
func (s *stubExec) StopMine(context.Context) error { return s.record("stopmine") }
func (s *stubExec) Send(context.Context) error     { return s.record("send") }
func (s *stubExec) History(context.Context) error  { return s.record("history") }

func runWithInput(t *testing.T, a execIface, input string) []string {
	t.Helper()

	var lines []string
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, 0, len(args))
		for _, v := range args {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), a, func() string { return "" }, scanner)
	return lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	s := &stubExec{}
	runWithInput(t, s, "register\nlogin\nwallet\nbalance\nmine\nstopmine\nsend\nhistory\nlogout\nexit\n")

	want := []string{"register", "login", "wallet", "balance", "mine", "stopmine", "send", "history", "logout"}
	if len(s.calls) != len(want) {
		t.Fatalf("expected %d calls, got %d: %v", len(want), len(s.calls), s.calls)
	}
	for i, name := range want {
		if s.calls[i] != name {
			t.Fatalf("call %d: expected %q, got %q", i, name, s.calls[i])
		}
	}
}

func TestRunREPL_Aliases(t *testing.T) {
	s := &stubExec{loggedIn: true}
	runWithInput(t, s, "b\nh\nquit\n")

	if len(s.calls) != 2 || s.calls[0] != "balance" || s.calls[1] != "history" {
		t.Fatalf("unexpected calls: %v", s.calls)
	}
}

func TestRunREPL_LoggedOutCommandsGated(t *testing.T) {
	s := &stubExec{}
	lines := runWithInput(t, s, "wallet\nbalance\nmine\nstopmine\nsend\nhistory\nlogout\nexit\n")

	if len(s.calls) != 0 {
		t.Fatalf("expected no dispatches while logged out, got: %v", s.calls)
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Please log in first.") {
		t.Fatalf("expected login prompt, got: %q", joined)
	}
}

func TestRunREPL_LoggedInAuthCommandsGated(t *testing.T) {
	s := &stubExec{loggedIn: true}
	lines := runWithInput(t, s, "register\nlogin\nexit\n")

	if len(s.calls) != 0 {
		t.Fatalf("expected no dispatches while logged in, got: %v", s.calls)
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Already logged in.") {
		t.Fatalf("expected already-logged-in notice, got: %q", joined)
	}
}

func TestRunREPL_LoginUnlocksWalletCommands(t *testing.T) {
	s := &stubExec{}
	runWithInput(t, s, "wallet\nlogin\nwallet\nlogout\nwallet\nexit\n")

	want := []string{"login", "wallet", "logout"}
	if len(s.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, s.calls)
	}
	for i, name := range want {
		if s.calls[i] != name {
			t.Fatalf("call %d: expected %q, got %q", i, name, s.calls[i])
		}
	}
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	s := &stubExec{}
	lines := runWithInput(t, s, "fly\nexit\n")

	found := false
	for _, l := range lines {
		if strings.Contains(l, "Unknown command:") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unknown-command message, got: %v", lines)
	}
	if len(s.calls) != 0 {
		t.Fatalf("expected no dispatches, got: %v", s.calls)
	}
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	loggedOut := runWithInput(t, &stubExec{loggedIn: false}, "help\nexit\n")
	loggedIn := runWithInput(t, &stubExec{loggedIn: true}, "help\nexit\n")

	joinedOut := strings.Join(loggedOut, "\n")
	joinedIn := strings.Join(loggedIn, "\n")

	if !strings.Contains(joinedOut, "register, login") {
		t.Fatalf("logged-out help missing: %q", joinedOut)
	}
	if !strings.Contains(joinedIn, "mine") || !strings.Contains(joinedIn, "send") {
		t.Fatalf("logged-in help missing: %q", joinedIn)
	}
}

func TestRunREPL_EmptyLinesSkipped(t *testing.T) {
	s := &stubExec{}
	runWithInput(t, s, "\n\n   \nexit\n")

	if len(s.calls) != 0 {
		t.Fatalf("expected no dispatches, got: %v", s.calls)
	}
}
