package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error collects field-level validation failures, keyed by JSON field name.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, len(fields))
	for i, field := range fields {
		msgs[i] = fmt.Sprintf("%s: %s", field, e.Fields[field])
	}
	return strings.Join(msgs, "; ")
}
