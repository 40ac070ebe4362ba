package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExec struct {
	loggedIn bool

	loginCalls  int
	listCalls   int
	filterRoles []string
	addCalls    int
	deletedIDs  []string

	listErr error
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }
func (s *stubExec) status() string   { return "" }

func (s *stubExec) Login(ctx context.Context) error {
	s.loginCalls++
	s.loggedIn = true
	return nil
}

func (s *stubExec) List(ctx context.Context) error {
	s.listCalls++
	return s.listErr
}

func (s *stubExec) Filter(ctx context.Context, role string) error {
	s.filterRoles = append(s.filterRoles, role)
	return nil
}

func (s *stubExec) Add(ctx context.Context) error {
	s.addCalls++
	return nil
}

func (s *stubExec) Delete(ctx context.Context, id string) error {
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	return &lines
}

func runScript(t *testing.T, a execIface, script string) {
	t.Helper()
	runREPL(context.Background(), bufio.NewScanner(strings.NewReader(script)), a)
}

func TestREPL_DispatchesCommands(t *testing.T) {
	lines := captureOutput(t)
	stub := &stubExec{}

	runScript(t, stub, "login\nlist\nfilter admin\nadd\ndelete u-1\nexit\n")

	assert.Equal(t, 1, stub.loginCalls)
	assert.Equal(t, 1, stub.listCalls)
	assert.Equal(t, []string{"admin"}, stub.filterRoles)
	assert.Equal(t, 1, stub.addCalls)
	assert.Equal(t, []string{"u-1"}, stub.deletedIDs)

	require.NotEmpty(t, *lines)
	assert.Contains(t, (*lines)[len(*lines)-1], "Bye!")
}

func TestREPL_UsageForMissingArgs(t *testing.T) {
	lines := captureOutput(t)
	stub := &stubExec{}

	runScript(t, stub, "filter\ndelete\nexit\n")

	assert.Empty(t, stub.filterRoles)
	assert.Empty(t, stub.deletedIDs)

	joined := strings.Join(*lines, "")
	assert.Contains(t, joined, "Usage: filter <role>")
	assert.Contains(t, joined, "Usage: delete <id>")
}

func TestREPL_CommandErrorIsReportedNotFatal(t *testing.T) {
	lines := captureOutput(t)
	stub := &stubExec{listErr: errors.New("boom")}

	runScript(t, stub, "list\nlist\nexit\n")

	// Both list attempts ran; the error was printed each time.
	assert.Equal(t, 2, stub.listCalls)
	joined := strings.Join(*lines, "")
	assert.Contains(t, joined, "boom")
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := captureOutput(t)

	runScript(t, &stubExec{}, "help\nexit\n")
	joined := strings.Join(*lines, "")
	assert.Contains(t, joined, "login")

	*lines = (*lines)[:0]
	runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	joined = strings.Join(*lines, "")
	assert.Contains(t, joined, "filter <role>")
}

func TestREPL_UnknownCommand(t *testing.T) {
	lines := captureOutput(t)

	runScript(t, &stubExec{}, "frobnicate\nexit\n")

	joined := strings.Join(*lines, "")
	assert.Contains(t, joined, "Unknown command")
}
