package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"zappem.net/pub/io/lined"

	"zappem.net/pub/math/symint/deduce"
	"zappem.net/pub/math/symint/internal/log"
	"zappem.net/pub/math/symint/parse"
	"zappem.net/pub/math/symint/terms"
)

const replHelp = `  name := expr     define name, an empty expr removes it
  name = value     assign a value
  eval expr        evaluate
  deduce expr = n  record an observation and deduce values
  list             show definitions, values and observations
  exit
`

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Explore polynomials interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "symint: symbolic integer polynomials, type help\n\n")
			s := newSession(out, opts.cfg.Values)
			t := lined.NewReader()
			for {
				fmt.Fprint(out, "> ")
				line, err := t.ReadString()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return errors.Wrap(err, "unable to recover")
				}
				if s.exec(line) {
					return nil
				}
			}
		},
	}
}

// session holds the state of an interactive session.
type session struct {
	out    io.Writer
	defs   map[string]parse.Poly
	values terms.Map[string, int64]
	obs    []parse.Pair
}

func newSession(out io.Writer, values map[string]int64) *session {
	s := &session{
		out:    out,
		defs:   make(map[string]parse.Poly),
		values: make(terms.Map[string, int64]),
	}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// expand replaces defined names until none remain. Definitions are
// acyclic, so each pass resolves at least one level.
func (s *session) expand(p parse.Poly) parse.Poly {
	for i := 0; i <= len(s.defs); i++ {
		changed := false
		for _, id := range p.Identifiers() {
			if d, ok := s.defs[id]; ok {
				p = p.Replace(id, d)
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return p
}

func (s *session) parse(text string) (parse.Poly, error) {
	p, err := parse.Exp(text)
	if err != nil {
		return p, err
	}
	return s.expand(p), nil
}

// exec runs a single line of input and reports whether the session
// is over.
func (s *session) exec(line string) (quit bool) {
	defer func() {
		if r := recover(); r != nil {
			if r != terms.ErrPowerOverflow {
				panic(r)
			}
			fmt.Fprintf(s.out, "%q: %v\n", line, terms.ErrPowerOverflow)
		}
	}()
	line = strings.TrimSpace(line)
	cmd, rest, _ := strings.Cut(line, " ")
	switch {
	case line == "" || strings.HasPrefix(line, "#"):
	case line == "exit":
		fmt.Fprintln(s.out, "exiting")
		return true
	case line == "help":
		fmt.Fprint(s.out, replHelp)
	case line == "list":
		s.list()
	case cmd == "eval":
		s.eval(rest)
	case cmd == "deduce":
		s.deduce(rest)
	case strings.Contains(line, ":="):
		s.define(line)
	case strings.Contains(line, "="):
		name, v, err := parse.Assignment(line)
		if err != nil {
			fmt.Fprintf(s.out, "invalid assignment: %v\n", err)
			break
		}
		s.values[name] = v
	default:
		p, err := s.parse(line)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			break
		}
		if q, err := p.Substitute(s.values); err != nil {
			fmt.Fprintf(s.out, "%v: %v\n", p, err)
		} else {
			fmt.Fprintf(s.out, " %v\n", q)
		}
	}
	return false
}

func (s *session) define(line string) {
	name, text, _ := strings.Cut(line, ":=")
	name = strings.TrimSpace(name)
	if !parse.ValidSymbol(name) {
		fmt.Fprintf(s.out, "invalid assignment to %q\n", name)
		return
	}
	if strings.TrimSpace(text) == "" {
		delete(s.defs, name)
		return
	}
	p, err := s.parse(text)
	if err != nil {
		fmt.Fprintf(s.out, "assignment to %q failed: %v\n", name, err)
		return
	}
	for _, id := range p.Identifiers() {
		if id == name {
			fmt.Fprintf(s.out, "%q may not depend on itself: %v\n", name, p)
			return
		}
	}
	s.defs[name] = p
}

func (s *session) eval(text string) {
	p, err := s.parse(text)
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}
	v, err := p.Eval(s.values)
	if err != nil {
		fmt.Fprintf(s.out, "%v: %v\n", p, err)
		return
	}
	fmt.Fprintf(s.out, " %d\n", v)
}

// deduce records an observation, when given one, and tries to deduce
// every identifier observed so far.
func (s *session) deduce(text string) {
	if strings.TrimSpace(text) != "" {
		eq, err := parse.Equation(text)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			return
		}
		eq.Poly = s.expand(eq.Poly)
		s.obs = append(s.obs, eq)
	}
	values, err := deduce.Values(s.obs)
	switch {
	case errors.Is(err, deduce.ErrUnderdetermined):
		fmt.Fprintf(s.out, "need more observations: %v\n", err)
		return
	case err != nil:
		fmt.Fprintf(s.out, "%v\n", err)
		if len(s.obs) != 0 {
			s.obs = s.obs[:len(s.obs)-1]
		}
		return
	}
	log.Section("cli").Debug("deduced", "observations", len(s.obs), "values", len(values))
	for k, v := range values {
		s.values[k] = v
	}
	printValues(s.out, " ", values)
}

func (s *session) list() {
	names := make([]string, 0, len(s.defs))
	for k := range s.defs {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(s.out, " %s := %v\n", k, s.defs[k])
	}
	printValues(s.out, " ", s.values)
	for _, eq := range s.obs {
		fmt.Fprintf(s.out, " observed %v\n", eq)
	}
}
