package persistence

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog/log"

	"dictcc-go/internal/domain/dictionary"
)

// resolvedTypeAlias names the category projection. SQLite resolves result
// aliases in WHERE and ORDER BY, which lets the verb constraint and the
// ordering see the substituted category instead of the raw column.
const resolvedTypeAlias = "resolved_type"

// StreamMatches implements dictionary.Store. It composes the two pattern
// groups into one unioned query, executes it, and feeds each row to the
// consumer after normalizing the text fields.
func (s *DictionaryStore) StreamMatches(
	ctx context.Context,
	patterns dictionary.PatternSet,
	direction dictionary.Direction,
	consumer dictionary.Consumer,
) error {
	query, args, err := s.buildQuery(patterns, direction)
	if err != nil {
		return fmt.Errorf("failed to build lookup query: %w", err)
	}

	log.Debug().
		Int("primary_patterns", len(patterns.Primary)).
		Int("fallback_patterns", len(patterns.Fallback)).
		Int("bound_parameters", len(args)).
		Msg("executing dictionary lookup")

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query dictionary: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var source, target, category sql.NullString
		// Usage is part of the projection so that the UNION deduplicates
		// on whole rows; it is not surfaced to the consumer.
		var usage sql.NullInt64

		if err := rows.Scan(&source, &target, &category, &usage); err != nil {
			return fmt.Errorf("failed to scan result row: %w", err)
		}
		if !source.Valid || !target.Valid || !category.Valid {
			return fmt.Errorf("%w: NULL text field in result", dictionary.ErrMalformedRow)
		}

		t := dictionary.Translation{
			Source:   dictionary.CollapseSpaces(source.String),
			Target:   dictionary.CollapseSpaces(target.String),
			Category: category.String,
		}
		if err := consumer(t); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to fetch result rows: %w", err)
	}

	return nil
}

// buildQuery renders the lookup SQL. Shape:
//
//	SELECT src, dst, CASE type WHEN '' THEN 'unknown' ELSE type END, usage
//	FROM table WHERE <primary patterns OR-ed>
//	UNION
//	SELECT ... WHERE <fallback patterns OR-ed>
//	ORDER BY resolved_type ASC, usage DESC, src ASC
//
// The UNION merges rows produced by both groups. The category substitution
// happens inside the query: ordering on the raw column would sort the empty
// string before everything else. Search-term text only ever appears in the
// bound arguments, never in the SQL itself.
func (s *DictionaryStore) buildQuery(patterns dictionary.PatternSet, direction dictionary.Direction) (string, []interface{}, error) {
	src, dst := s.schema.Columns(direction)

	resolvedType := fmt.Sprintf(
		"CASE %s WHEN '' THEN '%s' ELSE %s END AS %s",
		s.schema.TypeColumn, dictionary.CategoryUnknown, s.schema.TypeColumn, resolvedTypeAlias,
	)
	base := sq.Select(src, dst, resolvedType, s.schema.UsageColumn).From(s.schema.Table)

	fallbackSQL, fallbackArgs, err := base.Where(matchAny(src, patterns.Fallback)).ToSql()
	if err != nil {
		return "", nil, err
	}

	order := fmt.Sprintf(
		"ORDER BY %s ASC, %s DESC, %s ASC",
		resolvedTypeAlias, s.schema.UsageColumn, src,
	)

	return base.
		Where(matchAny(src, patterns.Primary)).
		Suffix("UNION "+fallbackSQL+" "+order, fallbackArgs...).
		ToSql()
}

// matchAny ORs the patterns of one group together, AND-ing each with its
// category constraint if it has one. Binding order follows slice order.
func matchAny(column string, patterns []dictionary.Pattern) sq.Sqlizer {
	or := make(sq.Or, 0, len(patterns))
	for _, p := range patterns {
		like := sq.Like{column: p.Text}
		if p.Category != "" {
			or = append(or, sq.And{like, sq.Eq{resolvedTypeAlias: p.Category}})
		} else {
			or = append(or, like)
		}
	}
	return or
}
