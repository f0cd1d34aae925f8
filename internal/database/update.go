package database

import (
	"errors"
	"strings"
)

var ErrNoFields = errors.New("no fields to update")

// Assignment is one "column = ?" pair of an UPDATE statement.
type Assignment struct {
	Column string
	Value  any
}

// Assignments picks the entries of fields whose keys appear in allowed, in
// the order of allowed. Keys outside the allowlist are ignored.
func Assignments(allowed []string, fields map[string]any) ([]Assignment, error) {
	var out []Assignment
	for _, col := range allowed {
		if v, ok := fields[col]; ok {
			out = append(out, Assignment{Column: col, Value: v})
		}
	}
	if len(out) == 0 {
		return nil, ErrNoFields
	}
	return out, nil
}

// BuildUpdate returns "UPDATE table SET a = ?, b = ? WHERE id = ?" and its
// arguments, with id as the last argument. table and allowed must come from
// code, never from the request.
func BuildUpdate(table string, allowed []string, fields map[string]any, id int) (string, []any, error) {
	assignments, err := Assignments(allowed, fields)
	if err != nil {
		return "", nil, err
	}

	sets := make([]string, 0, len(assignments))
	args := make([]any, 0, len(assignments)+1)
	for _, a := range assignments {
		sets = append(sets, a.Column+" = ?")
		args = append(args, a.Value)
	}
	args = append(args, id)

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")
	b.WriteString(strings.Join(sets, ", "))
	b.WriteString(" WHERE id = ?")

	return b.String(), args, nil
}
