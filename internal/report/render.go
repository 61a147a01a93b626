package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"isaext/internal/feature"
	"isaext/internal/isaext/styles"
	"isaext/internal/ui/colorize"
)

// Report formats accepted by Write.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Write renders rep to w in opts.Format.
func Write(w io.Writer, rep Report, opts Options) error {
	var out string
	var err error
	switch opts.Format {
	case "", FormatText:
		out = Text(rep, opts)
	case FormatJSON:
		out, err = JSON(rep, opts.Color)
	case FormatMarkdown:
		out, err = Markdown(rep, opts)
	default:
		return fmt.Errorf("unknown report format %q", opts.Format)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Text renders the feature names separated by two spaces on one line.
// With Explain every feature gets a row with its count and first use.
func Text(rep Report, opts Options) string {
	var b strings.Builder
	if !opts.Explain {
		names := make([]string, len(rep.Features))
		for i, f := range rep.Features {
			names[i] = string(f.ID)
			if opts.Color {
				names[i] = styles.Feature(f.ID).Render(names[i])
			}
		}
		b.WriteString(strings.Join(names, "  "))
		b.WriteByte('\n')
	} else if len(rep.Features) > 0 {
		b.WriteString(explainTable(rep, opts))
		b.WriteByte('\n')
	}

	if missing := rep.Missing(); len(missing) > 0 {
		line := "not supported by this CPU: " + joinIDs(missing)
		if opts.Color {
			line = styles.Missing.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func explainTable(rep Report, opts Options) string {
	rows := make([][]string, 0, len(rep.Features))
	for _, f := range rep.Features {
		name := string(f.ID)
		if f.Host != nil && !*f.Host {
			name += " !"
		}
		row := []string{name, strconv.Itoa(f.Count), "", "", ""}
		if w := f.Witness; w != nil {
			row[2], row[3], row[4] = w.Addr, w.Text, w.Symbol
			if opts.Color {
				row[3] = colorize.Instruction(w.Text)
			}
		}
		rows = append(rows, row)
	}

	t := table.New().
		Headers("FEATURE", "COUNT", "ADDRESS", "INSTRUCTION", "SYMBOL").
		Rows(rows...).
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().PaddingRight(2)
			if !opts.Color {
				return s
			}
			switch {
			case row == table.HeaderRow:
				return styles.Header.PaddingRight(2)
			case col == 0:
				return styles.Feature(rep.Features[row].ID).PaddingRight(2)
			case col == 1:
				return styles.Count.PaddingRight(2)
			case col == 2:
				return styles.Address.PaddingRight(2)
			case col == 4:
				return styles.Symbol
			}
			return s
		})
	return strings.TrimRight(t.String(), "\n")
}

// JSON renders rep as an indented document.
func JSON(rep Report, color bool) (string, error) {
	bts, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	out := string(bts) + "\n"
	if color {
		out = colorize.JSON(out)
	}
	return out, nil
}

// MarkdownSource returns the markdown document of rep.
func MarkdownSource(rep Report, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# CPU features of `%s`\n\n", rep.Path)
	fmt.Fprintf(&b, "- **Backend:** %s\n", rep.Backend)
	if rep.Container != "" {
		fmt.Fprintf(&b, "- **Container:** %s, section `%s`\n", rep.Container, rep.Section)
	}
	fmt.Fprintf(&b, "- **Mode:** %d-bit\n", rep.Bits)
	fmt.Fprintf(&b, "- **Instructions:** %d\n", rep.Instructions)
	if rep.Skipped > 0 {
		fmt.Fprintf(&b, "- **Skipped:** %d\n", rep.Skipped)
	}
	b.WriteByte('\n')

	if len(rep.Features) == 0 {
		b.WriteString("No instruction set extensions are used.\n")
		return b.String()
	}

	b.WriteString("| Feature | Description | Instructions |")
	if opts.Explain {
		b.WriteString(" First use |")
	}
	if opts.HostCheck {
		b.WriteString(" This CPU |")
	}
	b.WriteString("\n|---|---|---:|")
	if opts.Explain {
		b.WriteString("---|")
	}
	if opts.HostCheck {
		b.WriteString("---|")
	}
	b.WriteByte('\n')

	for _, f := range rep.Features {
		fmt.Fprintf(&b, "| %s | %s | %d |", f.ID, f.Description, f.Count)
		if opts.Explain {
			if w := f.Witness; w != nil {
				fmt.Fprintf(&b, " `%s` `%s`", w.Addr, w.Text)
				if w.Symbol != "" {
					fmt.Fprintf(&b, " in `%s`", w.Symbol)
				}
			}
			b.WriteString(" |")
		}
		if opts.HostCheck {
			switch {
			case f.Host == nil:
				b.WriteString(" ? |")
			case *f.Host:
				b.WriteString(" yes |")
			default:
				b.WriteString(" **no** |")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Markdown renders rep as markdown, through glamour on a terminal.
func Markdown(rep Report, opts Options) (string, error) {
	src := MarkdownSource(rep, opts)
	if !opts.Color {
		return src, nil
	}
	width := opts.Width
	if width <= 0 {
		width = 100
	}
	r, err := styles.GetMarkdownRenderer(width)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(src)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func joinIDs(ids []feature.ID) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = string(id)
	}
	return strings.Join(s, "  ")
}
