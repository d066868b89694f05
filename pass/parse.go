package pass

import (
	"strings"
	"unicode/utf8"
)

// Field is a single "name: value" line from an entry body.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// decode mirrors a lenient UTF-8 text decoder: invalid bytes become
// U+FFFD and a leading byte order mark is dropped.
func decode(out []byte) string {
	s := string(out)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	return strings.TrimPrefix(s, "\uFEFF")
}

func lines(contents string) []string {
	return strings.Split(trim(contents), "\n")
}

// firstLine returns the literal first line after trimming the whole text.
// Blank lines inside the body are not skipped.
func firstLine(contents string) string {
	return lines(contents)[0]
}

func findField(contents, name string) (string, bool) {
	prefix := name + ":"
	for _, line := range lines(contents) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):]), true
		}
	}
	return "", false
}

// parseFields collects every "name: value" line after the password line.
func parseFields(contents string) []Field {
	ls := lines(contents)
	fields := make([]Field, 0, len(ls))
	for _, line := range ls[1:] {
		name, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok || name == "" {
			continue
		}
		fields = append(fields, Field{Name: name, Value: strings.TrimSpace(value)})
	}
	return fields
}

func trim(contents string) string {
	return strings.TrimSpace(contents)
}
