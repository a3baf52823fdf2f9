package settingsdb

import (
	"strings"
	"unicode"
)

type field struct {
	column string
	label  string
	value  string
}

type group struct {
	key    string
	title  string
	prefix string
	fields []field
}

// profileGroups lists sections in print order.
var profileGroups = []group{
	{key: "connection", title: "Connection Settings"},
	{key: "summary", title: "Summary Generation", prefix: "summary_"},
	{key: "keywords", title: "Keyword Extraction", prefix: "keyword_"},
	{key: "refinement", title: "Refinement"},
	{key: "zotero", title: "Zotero", prefix: "zotero_"},
	{key: "other", title: "Other"},
}

var connectionColumns = map[string]bool{
	"url":                   true,
	"model_name":            true,
	"overall_timeout":       true,
	"text_truncation_limit": true,
}

var labelWords = map[string]string{
	"url": "URL",
	"id":  "ID",
	"api": "API",
}

// groupRecord sorts the columns of rec into profile sections. Empty sections
// are dropped; the row id is skipped.
func groupRecord(rec Record) []group {
	groups := make([]group, len(profileGroups))
	copy(groups, profileGroups)
	index := make(map[string]int, len(groups))
	for i, g := range groups {
		index[g.key] = i
	}

	for i, col := range rec.Columns {
		name := strings.ToLower(col)
		if name == "id" {
			continue
		}
		key := sectionFor(name)
		g := &groups[index[key]]
		value := formatValue(rec.Values[i])
		if isSecret(name) && rec.Values[i] != nil {
			value = maskSecret(value)
		}
		g.fields = append(g.fields, field{
			column: col,
			label:  humanize(strings.TrimPrefix(name, g.prefix)),
			value:  value,
		})
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g.fields) > 0 {
			out = append(out, g)
		}
	}
	return out
}

func sectionFor(name string) string {
	switch {
	case connectionColumns[name]:
		return "connection"
	case strings.HasPrefix(name, "zotero_"):
		return "zotero"
	case strings.Contains(name, "refinement"):
		return "refinement"
	case strings.HasPrefix(name, "summary_"):
		return "summary"
	case strings.HasPrefix(name, "keyword_"):
		return "keywords"
	default:
		return "other"
	}
}

func humanize(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if w, ok := labelWords[p]; ok {
			parts[i] = w
			continue
		}
		r := []rune(p)
		if len(r) > 0 {
			r[0] = unicode.ToUpper(r[0])
		}
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

func isSecret(name string) bool {
	name = strings.ToLower(name)
	for _, marker := range []string{"api_key", "apikey", "token", "secret", "password"} {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// maskSecret hides all but the last four characters of s.
func maskSecret(s string) string {
	r := []rune(s)
	if len(r) <= 4 {
		return "****"
	}
	return "****" + string(r[len(r)-4:])
}
