package pgstore

import (
	"fmt"
	"regexp"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// identifierPattern matches safe SQL identifiers. Identifiers cannot be
// parameterized, so table, field, and order names must pass this check
// before they reach a query.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}

// normalizeOrder validates an ordering expression of the form
// "field [ASC|DESC]" and returns it in canonical form.
func normalizeOrder(expr string) (string, error) {
	parts := strings.Fields(expr)
	switch len(parts) {
	case 1:
		if err := validIdentifier(parts[0]); err != nil {
			return "", err
		}
		return parts[0], nil
	case 2:
		if err := validIdentifier(parts[0]); err != nil {
			return "", err
		}
		switch strings.ToUpper(parts[1]) {
		case "ASC":
			return parts[0] + " ASC", nil
		case "DESC":
			return parts[0] + " DESC", nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOrderExpression, expr)
}

func buildCountQuery(table string, conditions []sq.Sqlizer) (string, []any, error) {
	builder := sq.Select("COUNT(*)").From(table).PlaceholderFormat(sq.Dollar)
	for _, cond := range conditions {
		builder = builder.Where(cond)
	}
	return builder.ToSql()
}

func buildSelectQuery(table string, conditions []sq.Sqlizer, orderBy string, limit int) (string, []any, error) {
	builder := sq.Select("*").From(table).PlaceholderFormat(sq.Dollar)
	for _, cond := range conditions {
		builder = builder.Where(cond)
	}
	if orderBy != "" {
		builder = builder.OrderBy(orderBy)
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	return builder.ToSql()
}
