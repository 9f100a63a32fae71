package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryFilterNumbersPlaceholders(t *testing.T) {
	f := newQueryFilter()
	f.and("is_active = true")
	f.and("name = %s", "Pune")
	f.and("(title ILIKE %[1]s OR location ILIKE %[1]s)", like("west"))

	assert.Equal(t, " WHERE TRUE AND is_active = true AND name = $1 AND (title ILIKE $2 OR location ILIKE $2)", f.where())
	assert.Equal(t, []any{"Pune", "%west%"}, f.args)

	clause, args := f.page(10, 20)
	assert.Equal(t, " LIMIT $3 OFFSET $4", clause)
	assert.Equal(t, []any{"Pune", "%west%", 10, 20}, args)
	assert.Len(t, f.args, 2)
}

func TestOrderByWhitelist(t *testing.T) {
	assert.Equal(t, "p.price DESC", orderBy("-price", projectOrdering, "p.created_at DESC"))
	assert.Equal(t, "p.title ASC", orderBy("title", projectOrdering, "p.created_at DESC"))
	assert.Equal(t, "p.created_at DESC", orderBy("price; DROP TABLE projects", projectOrdering, "p.created_at DESC"))
	assert.Equal(t, "p.created_at DESC", orderBy("", projectOrdering, "p.created_at DESC"))
}

func TestLikeEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%west%", like("west"))
	assert.Equal(t, `%\_%`, like("_"))
	assert.Equal(t, `%50\% off%`, like("50% off"))
	assert.Equal(t, `%a\\b%`, like(`a\b`))
}
