package toolpipe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"isaext/internal/feature"
)

const (
	// DefaultOracle asks Intel XED to decode one instruction.
	DefaultOracle = "xed -{bits} -d {hex}"
	// DefaultDisassembler lists the instructions of a binary with XED.
	DefaultDisassembler = "xed -i {path}"
)

// ErrNoExtension means the oracle output carried no ISA-EXT field.
var ErrNoExtension = errors.New("no ISA-EXT field in oracle output")

// Oracle names the features required by one encoded instruction.
type Oracle interface {
	Classify(ctx context.Context, hex string, bits int) (feature.Set, error)
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(ctx context.Context, hex string, bits int) (feature.Set, error)

func (f OracleFunc) Classify(ctx context.Context, hex string, bits int) (feature.Set, error) {
	return f(ctx, hex, bits)
}

// OracleError reports an instruction the oracle could not classify.
type OracleError struct {
	Hex string
	Err error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle %s: %v", e.Hex, e.Err)
}

func (e *OracleError) Unwrap() error { return e.Err }

// ExecOracle runs a command per instruction and parses its ISA-EXT field.
// {bits} and {hex} in Command are substituted.
type ExecOracle struct {
	Command string
}

func (o *ExecOracle) Classify(ctx context.Context, hex string, bits int) (feature.Set, error) {
	tmpl := o.Command
	if tmpl == "" {
		tmpl = DefaultOracle
	}
	out, err := run(ctx, tmpl, strings.NewReplacer("{bits}", strconv.Itoa(bits), "{hex}", hex))
	if err != nil {
		return nil, &OracleError{Hex: hex, Err: err}
	}
	set, ok := ParseISAExt(string(out))
	if !ok {
		return nil, &OracleError{Hex: hex, Err: ErrNoExtension}
	}
	return set, nil
}

// run expands tmpl word by word and executes it, returning stdout.
func run(ctx context.Context, tmpl string, r *strings.Replacer) ([]byte, error) {
	args := strings.Fields(tmpl)
	if len(args) == 0 {
		return nil, errors.New("empty command")
	}
	for i, a := range args {
		args[i] = r.Replace(a)
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", args[0], err, msg)
		}
		return nil, fmt.Errorf("%s: %w", args[0], err)
	}
	return stdout.Bytes(), nil
}

// The ISA-EXT value runs up to the next KEY: field or the end of the line.
var isaExtRE = regexp.MustCompile(`(?m)ISA-EXT:[ \t]*(.*?)(?:[ \t]+[A-Z][A-Z0-9_-]*:|[ \t]*$)`)

// ParseISAExt extracts the features named by the ISA-EXT fields of out.
// A value may list several extensions separated by commas, '+', '/' or
// blanks. Baseline names are dropped. Names outside the vocabulary are
// kept upper-cased. ok is false when out has no ISA-EXT field.
func ParseISAExt(out string) (set feature.Set, ok bool) {
	set = feature.NewSet()
	for _, m := range isaExtRE.FindAllStringSubmatch(out, -1) {
		ok = true
		tokens := strings.FieldsFunc(m[1], func(r rune) bool {
			return r == ',' || r == '+' || r == '/' || unicode.IsSpace(r)
		})
		for _, tok := range tokens {
			if feature.IsBaseline(tok) {
				continue
			}
			ids, known := feature.ParseAll(tok)
			if !known {
				ids = []feature.ID{feature.ID(strings.ToUpper(tok))}
				slog.Debug("Unknown ISA extension", "token", tok)
			}
			set.Add(ids...)
		}
	}
	return set, ok
}
