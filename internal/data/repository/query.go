package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is wrapped by Update/Delete when no row matched.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyRegistered is returned by CompleteRegistration when the identity
// finished registration before this call.
var ErrAlreadyRegistered = errors.New("identity already registered")

// queryFilter builds a dynamic WHERE clause with numbered placeholders.
// Conditions use %s (or %[n]s) where the placeholder should go.
type queryFilter struct {
	sb       strings.Builder
	args     []any
	argCount int
}

func newQueryFilter() *queryFilter {
	return &queryFilter{argCount: 1}
}

func (f *queryFilter) and(cond string, vals ...any) {
	placeholders := make([]any, len(vals))
	for i := range vals {
		placeholders[i] = fmt.Sprintf("$%d", f.argCount)
		f.argCount++
	}
	f.sb.WriteString(" AND ")
	if len(placeholders) > 0 {
		f.sb.WriteString(fmt.Sprintf(cond, placeholders...))
	} else {
		f.sb.WriteString(cond)
	}
	f.args = append(f.args, vals...)
}

func (f *queryFilter) where() string {
	return " WHERE TRUE" + f.sb.String()
}

// page appends LIMIT/OFFSET and returns the clause plus the full arg list.
func (f *queryFilter) page(limit, offset int) (string, []any) {
	clause := fmt.Sprintf(" LIMIT $%d OFFSET $%d", f.argCount, f.argCount+1)
	args := append(append([]any{}, f.args...), limit, offset)
	return clause, args
}

// likeEscaper neutralises LIKE wildcards in user input. Conditions using
// like() must declare ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func like(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// orderBy resolves a client ordering like "-price" against a whitelist.
func orderBy(ordering string, allowed map[string]string, fallback string) string {
	desc := strings.HasPrefix(ordering, "-")
	col, ok := allowed[strings.TrimPrefix(ordering, "-")]
	if !ok {
		return fallback
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}
