package filter

import (
	"fmt"
	"strings"

	"shopdrive/internal/domain"
)

// Columns whitelists the fields a collection may be filtered or sorted on,
// mapping public names to SQL column names. Nothing outside it reaches the query.
type Columns map[string]string

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SQL renders q as " WHERE ... ORDER BY ... LIMIT ?" using '?' placeholders.
// Callers rebind placeholders for their driver.
func SQL(q Query, cols Columns) (string, []any, error) {
	var (
		b     strings.Builder
		args  []any
		conds []string
	)

	for _, p := range q.Predicates {
		var ors []string
		for _, f := range p.Fields {
			col, ok := cols[f]
			if !ok {
				return "", nil, unknownField(f)
			}
			switch p.Op {
			case Eq:
				ors = append(ors, col+" = ?")
				args = append(args, sqlValue(p.Value))
			case Contains:
				ors = append(ors, "LOWER("+col+") LIKE ? ESCAPE '\\'")
				args = append(args, "%"+likeEscaper.Replace(strings.ToLower(fmt.Sprint(p.Value)))+"%")
			default:
				return "", nil, fmt.Errorf("%w: unsupported operator %q", domain.ErrInvalidInput, p.Op)
			}
		}
		if len(ors) == 1 {
			conds = append(conds, ors[0])
		} else if len(ors) > 1 {
			conds = append(conds, "("+strings.Join(ors, " OR ")+")")
		}
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}

	var orders []string
	if q.Rank != nil {
		col, ok := cols[q.Rank.Field]
		if !ok {
			return "", nil, unknownField(q.Rank.Field)
		}
		term := strings.ToLower(q.Rank.Term)
		orders = append(orders, "CASE WHEN LOWER("+col+") = ? THEN 1 WHEN LOWER("+col+") LIKE ? ESCAPE '\\' THEN 2 ELSE 3 END")
		args = append(args, term, "%"+likeEscaper.Replace(term)+"%")
	}
	for _, o := range q.Sort {
		col, ok := cols[o.Field]
		if !ok {
			return "", nil, unknownField(o.Field)
		}
		if o.Desc {
			orders = append(orders, col+" DESC")
		} else {
			orders = append(orders, col+" ASC")
		}
	}
	if len(orders) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(orders, ", "))
	}

	if q.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, q.Limit)
	}
	return b.String(), args, nil
}

// Booleans are stored as 0/1 so the same schema works on SQLite and Postgres.
func sqlValue(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return v
}
