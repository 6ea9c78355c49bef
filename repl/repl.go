// Package repl is an interactive playground over the value core:
// type a literal, get back its value and kind; bind names; cast with
// an explicit type notation.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"luma/cast"
	"luma/literal"
	"luma/value"
)

const PROMPT = "luma➤ "

var (
	errColor  = color.New(color.FgRed)
	kindColor = color.New(color.FgCyan)
)

// Start reads lines until EOF or "quit". Recognized forms:
//
//	<literal>            evaluate and print value plus kind
//	name = <literal>     bind name in the session environment
//	<literal> :: Kind    cast the evaluated value to Kind
//	type <literal>       print the kind name as a Text value
//
// A bound name appearing where a literal is expected resolves to its
// binding. Failures are printed and the session continues; nothing
// here aborts.
func Start(in io.Reader, out io.Writer, log *slog.Logger) {
	scanner := bufio.NewScanner(in)
	env := value.NewEnv(nil)

	for {
		io.WriteString(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "quit" || line == "exit":
			return
		}

		val, err := evalLine(line, env)
		if err != nil {
			log.Debug("evaluation failed", "line", line, "reason", cast.ReasonOf(err))
			errColor.Fprintf(out, "   error: %v\n", err)
			continue
		}

		io.WriteString(out, "   "+val.Inspect()+" ")
		kindColor.Fprintf(out, ": %s\n", val.Kind())
	}
}

func evalLine(line string, env *value.Env) (value.Value, error) {
	if rest, ok := strings.CutPrefix(line, "type "); ok {
		val, err := resolve(strings.TrimSpace(rest), env)
		if err != nil {
			return nil, err
		}
		return literal.GetType(val), nil
	}

	if left, right, ok := strings.Cut(line, "::"); ok {
		return evalCast(strings.TrimSpace(left), strings.TrimSpace(right), env)
	}

	if name, rest, ok := strings.Cut(line, "="); ok {
		name = strings.TrimSpace(name)
		if isIdentifier(name) {
			val, err := resolve(strings.TrimSpace(rest), env)
			if err != nil {
				return nil, err
			}
			return env.Set(name, val), nil
		}
	}

	return resolve(line, env)
}

func evalCast(expr, kindName string, env *value.Env) (value.Value, error) {
	target, ok := value.KindFromName(kindName)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kindName)
	}
	val, err := resolve(expr, env)
	if err != nil {
		return nil, err
	}
	return cast.To(val, target)
}

// resolve gives bound names priority over the literal grammar, the
// way the interpreter resolves nouns before evaluating them.
func resolve(token string, env *value.Env) (value.Value, error) {
	if isIdentifier(token) && env.Has(token) {
		return env.Get(token), nil
	}
	return literal.Evaluate(token)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
