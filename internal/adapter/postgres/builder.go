package postgres

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Ident quotes a possibly schema-qualified identifier ("storage.objects").
func Ident(parts ...string) string {
	return pgx.Identifier(parts).Sanitize()
}
