package postgres

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Builder returns a squirrel statement builder using PostgreSQL placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Returning renders a RETURNING clause for cols.
func Returning(cols ...string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}
