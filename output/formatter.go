package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
)

// ConsoleFormatter renders view results for terminal consumption. Values are
// passed through Normalize first so console output and API output agree on
// rounding and null handling.
type ConsoleFormatter struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	warning lipgloss.Style
}

// NewConsoleFormatter creates a formatter with the default styles.
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Section renders a titled view. Map values are rendered as aligned
// label/value lines, everything else as indented JSON.
func (f *ConsoleFormatter) Section(title string, v any) string {
	var b strings.Builder
	b.WriteString(f.title.Render(title))
	b.WriteString("\n")

	norm, err := toPlain(v)
	if err != nil {
		b.WriteString(f.warning.Render(fmt.Sprintf("  render error: %v", err)))
		b.WriteString("\n")
		return b.String()
	}
	if norm == nil {
		b.WriteString(f.warning.Render("  (no data)"))
		b.WriteString("\n")
		return b.String()
	}

	if m, ok := norm.(map[string]any); ok {
		f.renderMap(&b, m, "  ")
		return b.String()
	}

	data, err := sonic.MarshalIndent(norm, "  ", "  ")
	if err != nil {
		b.WriteString(f.warning.Render(fmt.Sprintf("  render error: %v", err)))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString("  ")
	b.Write(data)
	b.WriteString("\n")
	return b.String()
}

// toPlain roundtrips a value through JSON so typed fields collapse to the
// shapes Normalize understands.
func toPlain(v any) (any, error) {
	data, err := sonic.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := sonic.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return Normalize(out), nil
}

// JSON renders a view as indented JSON with no styling, for piping.
func (f *ConsoleFormatter) JSON(v any) (string, error) {
	plain, err := toPlain(v)
	if err != nil {
		return "", fmt.Errorf("encode view: %w", err)
	}
	data, err := sonic.MarshalIndent(plain, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode view: %w", err)
	}
	return string(data), nil
}

func (f *ConsoleFormatter) renderMap(b *strings.Builder, m map[string]any, indent string) {
	keys := make([]string, 0, len(m))
	width := 0
	for k := range m {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch child := m[k].(type) {
		case map[string]any:
			fmt.Fprintf(b, "%s%s\n", indent, f.label.Render(k+":"))
			f.renderMap(b, child, indent+"  ")
		case []any:
			fmt.Fprintf(b, "%s%s\n", indent, f.label.Render(k+":"))
			for _, item := range child {
				if im, ok := item.(map[string]any); ok {
					f.renderMap(b, im, indent+"  ")
					b.WriteString("\n")
					continue
				}
				fmt.Fprintf(b, "%s  %s\n", indent, f.value.Render(fmt.Sprintf("%v", item)))
			}
		default:
			padded := fmt.Sprintf("%-*s", width+1, k+":")
			fmt.Fprintf(b, "%s%s %s\n", indent, f.label.Render(padded), f.value.Render(formatScalar(child)))
		}
	}
}

func formatScalar(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}
