package settingsdb

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

// Supported report formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat reports an unsupported report format.
var ErrUnknownFormat = errors.New("unknown report format")

const (
	// DefaultWidth is the rule and wrap width used when no terminal is attached.
	DefaultWidth = 80
	// MaxValueWidth bounds values in record dumps.
	MaxValueWidth = 100
	nameWidth     = 35
	sectionRule   = 40
	nullValue     = "None"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q: expected text|yaml", ErrUnknownFormat, name)
	}
}

// Report writes inspection output.
type Report struct {
	Format Format
	Width  int
}

func (r Report) width() int {
	if r.Width > 0 {
		return r.Width
	}
	return DefaultWidth
}

func (r Report) rule(ch string) string {
	return strings.Repeat(ch, r.width())
}

// WriteSchema prints the column list of table.
func (r Report) WriteSchema(w io.Writer, table string, cols []Column) error {
	if r.Format == FormatYAML {
		return writeYAML(w, map[string]any{"table": table, "columns": cols})
	}
	var b strings.Builder
	b.WriteString("Database Schema:\n")
	b.WriteString(r.rule("-"))
	b.WriteByte('\n')
	for _, col := range cols {
		fmt.Fprintf(&b, "Column: %-*s Type: %s\n", nameWidth, col.Name, col.Type)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRecord prints every column of rec, truncating long values.
func (r Report) WriteRecord(w io.Writer, table string, rec Record, found bool) error {
	if r.Format == FormatYAML {
		if !found {
			return writeYAML(w, map[string]any{"table": table, "record": nil})
		}
		node, err := recordNode(rec)
		if err != nil {
			return err
		}
		return writeYAML(w, node)
	}
	var b strings.Builder
	b.WriteString("Database Content:\n")
	b.WriteString(r.rule("-"))
	b.WriteByte('\n')
	if !found {
		fmt.Fprintf(&b, "No records found in %s table\n", table)
	}
	for i, name := range rec.Columns {
		fmt.Fprintf(&b, "%-*s: %s\n", nameWidth, name, truncateValue(formatValue(rec.Values[i])))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRecords prints each record separated by a blank line.
func (r Report) WriteRecords(w io.Writer, table string, recs []Record) error {
	if r.Format == FormatYAML {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, rec := range recs {
			node, err := recordNode(rec)
			if err != nil {
				return err
			}
			seq.Content = append(seq.Content, node)
		}
		return writeYAML(w, seq)
	}
	if len(recs) == 0 {
		return r.WriteRecord(w, table, Record{}, false)
	}
	for i, rec := range recs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.WriteRecord(w, table, rec, true); err != nil {
			return err
		}
	}
	return nil
}

// WriteProfile prints rec grouped into configuration sections, wrapping long
// prompt text and masking secrets.
func (r Report) WriteProfile(w io.Writer, table string, rec Record, found bool) error {
	groups := groupRecord(rec)
	if r.Format == FormatYAML {
		return writeYAML(w, profileNode(groups))
	}
	var b strings.Builder
	b.WriteString(r.rule("="))
	b.WriteByte('\n')
	b.WriteString("COMPLETE SETTINGS PROFILE\n")
	b.WriteString(r.rule("="))
	b.WriteByte('\n')
	if !found {
		fmt.Fprintf(&b, "\n[WARNING] No data found in %s table\n", table)
		_, err := io.WriteString(w, b.String())
		return err
	}
	for i, g := range groups {
		fmt.Fprintf(&b, "\n%d. %s:\n", i+1, strings.ToUpper(g.title))
		b.WriteString(strings.Repeat("-", min(sectionRule, r.width())))
		b.WriteByte('\n')
		for _, f := range g.fields {
			if isLongText(f.value) {
				fmt.Fprintf(&b, "%s:\n%s\n", f.label, wordwrap.String(f.value, r.width()))
				continue
			}
			fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func formatValue(v any) string {
	if v == nil {
		return nullValue
	}
	return fmt.Sprint(v)
}

func truncateValue(s string) string {
	if len([]rune(s)) <= MaxValueWidth {
		return s
	}
	return truncate.StringWithTail(s, MaxValueWidth, "...")
}

func isLongText(s string) bool {
	return strings.Contains(s, "\n") || len(s) > sectionRule
}

func recordNode(rec Record) (*yaml.Node, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i, name := range rec.Columns {
		var val yaml.Node
		if err := val.Encode(rec.Values[i]); err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		m.Content = append(m.Content, scalar(name), &val)
	}
	return m, nil
}

func profileNode(groups []group) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, g := range groups {
		fields := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range g.fields {
			fields.Content = append(fields.Content, scalar(f.column), scalar(f.value))
		}
		root.Content = append(root.Content, scalar(g.key), fields)
	}
	return root
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
