package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zappem.net/pub/math/symint/parse"
)

// run executes the command line args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "b*5 + 2", "(a - b)*(a + b) + 12")
	require.NoError(t, err)
	assert.Equal(t, "5*b + 2\na^2 - b^2 + 12\n", out)

	out, err = run(t, "show", "--code", "floor(a^2, b^2)")
	require.NoError(t, err)
	assert.Equal(t, "floor(a * a, b * b)\n", out)

	_, err = run(t, "show", "a +")
	assert.ErrorIs(t, err, parse.ErrSyntax)
}

func TestEval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "symint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\nvalues:\n  a: 3\n  c: 5\n"), 0o644))

	out, err := run(t, "eval", "--config", path, "--set", "b=2", "a*b + a*c + b + c", "max(a, c) - floor(c, b)")
	require.NoError(t, err)
	assert.Equal(t, "a*b + a*c + b + c = 28\n-floor(c, b) + max(a, c) = 3\n", out)

	// Flags override the config file.
	out, err = run(t, "eval", "--config", path, "--set", "b=2", "--set", "a=10", "a*b")
	require.NoError(t, err)
	assert.Equal(t, "a*b = 20\n", out)

	_, err = run(t, "eval", "--config", path, "a*b")
	assert.Error(t, err)
	_, err = run(t, "eval", "--set", "b", "b")
	assert.ErrorIs(t, err, parse.ErrSyntax)
}

func TestBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("values:\n  2x: 3\n"), 0o644))
	_, err := run(t, "eval", "--config", path, "1")
	assert.Error(t, err)
	_, err = run(t, "eval", "--config", filepath.Join(dir, "missing.yaml"), "1")
	assert.Error(t, err)
	_, err = run(t, "eval", "--log-level", "loud", "1")
	assert.Error(t, err)
}

func TestDeduce(t *testing.T) {
	out, err := run(t, "deduce", "5*b + 2 = 17", "a*b = 15", "a*b + a*c + b + c = 66")
	require.NoError(t, err)
	assert.Equal(t, "a = 5\nb = 3\nc = 8\n", out)

	_, err = run(t, "deduce", "a*b = 6")
	assert.Error(t, err)
}

func TestSession(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out, map[string]int64{"k": 2})
	vs := []struct {
		line, want string
		quit       bool
	}{
		{line: "# a comment", want: ""},
		{line: "area := w*h", want: ""},
		{line: "w := h + k", want: ""},
		{line: "area", want: " h^2 + 2*h\n"},
		{line: "h := area", want: "\"h\" may not depend on itself: h^2 + h*k\n"},
		{line: "h = 3", want: ""},
		{line: "eval area", want: " 15\n"},
		{line: "eval z", want: "z: value not provided for z\n"},
		{line: "deduce x*y = 12", want: "need more observations: not enough equations to deduce every identifier: unresolved [x y]\n"},
		{line: "deduce x - 1 = 3", want: " x = 4\n y = 3\n"},
		{line: "deduce x = 5", want: "inconsistent equations: x = 5 gives x=5, already 4\n"},
		{line: "w :=", want: ""},
		{line: "list", want: " area := h*w\n h = 3\n k = 2\n x = 4\n y = 3\n observed x*y = 12\n observed x - 1 = 3\n"},
		{line: "big := a^200", want: ""},
		{line: "big*big", want: "\"big*big\": power overflows its type\n"},
		{line: "2x = 1", want: "invalid assignment: parsing \"2x = 1\": want name=value: syntax error\n"},
		{line: "exit", want: "exiting\n", quit: true},
	}
	for i, v := range vs {
		out.Reset()
		if quit := s.exec(v.line); quit != v.quit {
			t.Errorf("[%d] %q quit got=%v want=%v", i, v.line, quit, v.quit)
		}
		if got := out.String(); got != v.want {
			t.Errorf("[%d] %q got=%q want=%q", i, v.line, got, v.want)
		}
	}
}
