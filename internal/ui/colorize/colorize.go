// Package colorize highlights report fragments for terminals with chroma.
// Set ISAEXT_NO_COLOR or NO_COLOR to disable it.
package colorize

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Disabled reports whether the environment turns colors off.
func Disabled() bool {
	return os.Getenv("ISAEXT_NO_COLOR") != "" || os.Getenv("NO_COLOR") != ""
}

// getStyle returns the report style with fallbacks
func getStyle() *chroma.Style {
	for _, name := range []string{"isaext-dark", "dracula", "monokai"} {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter
func getTerminalFormatter() chroma.Formatter {
	for _, name := range []string{"terminal16m", "terminal256"} {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

func highlight(code string, lexerNames ...string) string {
	if Disabled() {
		return code
	}
	var lexer chroma.Lexer
	for _, name := range lexerNames {
		if lexer = lexers.Get(name); lexer != nil {
			break
		}
	}
	if lexer == nil {
		return code
	}
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	// Lexers may append a newline the input did not have.
	tokens := iterator.Tokens()
	if n := len(tokens); n > 0 && !strings.HasSuffix(code, "\n") {
		tokens[n-1].Value = strings.TrimSuffix(tokens[n-1].Value, "\n")
	}
	var buf strings.Builder
	if err := getTerminalFormatter().Format(&buf, getStyle(), chroma.Literator(tokens...)); err != nil {
		return code
	}
	return buf.String()
}

// Instruction highlights one Intel-syntax instruction.
func Instruction(text string) string {
	return highlight(text, "nasm", "gas")
}

// JSON highlights a JSON document.
func JSON(doc string) string {
	return highlight(doc, "json")
}

// Strip removes ANSI escape sequences.
func Strip(s string) string {
	var result strings.Builder
	inEscape := false

	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
		} else if inEscape {
			if r == 'm' {
				inEscape = false
			}
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}
