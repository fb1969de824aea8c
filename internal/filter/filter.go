// Package filter composes optional listing filters into a structured query
// that each backend translates on its own: parameterized SQL for the
// relational store, direct evaluation for the in-memory and remote stores.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"shopdrive/internal/domain"
)

type Op string

const (
	// Eq compares the field value for equality.
	Eq Op = "eq"
	// Contains is a case-insensitive substring test; with several fields any one may match.
	Contains Op = "contains"
)

type Predicate struct {
	Fields []string
	Op     Op
	Value  any
}

// Rank puts exact (case-insensitive) matches on Field first, then records
// containing Term, then everything else.
type Rank struct {
	Field string
	Term  string
}

type Order struct {
	Field string
	Desc  bool
}

// Query is an immutable description of a listing. The zero value lists everything
// in the collection's default order.
type Query struct {
	Predicates []Predicate
	Rank       *Rank
	Sort       []Order
	Limit      int // 0 means unbounded
}

// Where adds an equality predicate.
func (q Query) Where(field string, value any) Query {
	q.Predicates = append(q.Predicates[:len(q.Predicates):len(q.Predicates)], Predicate{
		Fields: []string{field}, Op: Eq, Value: value,
	})
	return q
}

// Search adds a substring predicate across fields and ranks by the first one.
// A blank term leaves the query untouched.
func (q Query) Search(term string, fields ...string) Query {
	term = strings.TrimSpace(term)
	if term == "" || len(fields) == 0 {
		return q
	}
	q.Predicates = append(q.Predicates[:len(q.Predicates):len(q.Predicates)], Predicate{
		Fields: fields, Op: Contains, Value: term,
	})
	q.Rank = &Rank{Field: fields[0], Term: term}
	return q
}

func (q Query) OrderBy(field string, desc bool) Query {
	q.Sort = append(q.Sort[:len(q.Sort):len(q.Sort)], Order{Field: field, Desc: desc})
	return q
}

func (q Query) Take(n int) Query {
	if n < 0 {
		n = 0
	}
	q.Limit = n
	return q
}

// WithDefaultSort returns q unchanged when it already has an ordering.
func (q Query) WithDefaultSort(orders ...Order) Query {
	if len(q.Sort) == 0 {
		q.Sort = orders
	}
	return q
}

// Getter resolves a named field on one record.
type Getter func(field string) (any, bool)

func unknownField(name string) error {
	return fmt.Errorf("%w: unknown field %q", domain.ErrInvalidInput, name)
}

// Match reports whether the record behind get satisfies every predicate.
func (q Query) Match(get Getter) (bool, error) {
	for _, p := range q.Predicates {
		ok, err := p.match(get)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (p Predicate) match(get Getter) (bool, error) {
	switch p.Op {
	case Eq:
		for _, f := range p.Fields {
			v, ok := get(f)
			if !ok {
				return false, unknownField(f)
			}
			if v == p.Value {
				return true, nil
			}
		}
		return false, nil
	case Contains:
		term := strings.ToLower(fmt.Sprint(p.Value))
		for _, f := range p.Fields {
			v, ok := get(f)
			if !ok {
				return false, unknownField(f)
			}
			s, _ := v.(string)
			if strings.Contains(strings.ToLower(s), term) {
				return true, nil
			}
		}
		return false, nil
	}
	return false, fmt.Errorf("%w: unsupported operator %q", domain.ErrInvalidInput, p.Op)
}

// Apply filters, ranks, sorts and truncates items in memory, mirroring what SQL does.
func Apply[T any](items []T, q Query, get func(T) Getter) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, it := range items {
		ok, err := q.Match(get(it))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, it)
		}
	}

	var sortErr error
	sort.SliceStable(out, func(i, j int) bool {
		gi, gj := get(out[i]), get(out[j])
		if q.Rank != nil {
			ri, rj := rankOf(gi, q.Rank), rankOf(gj, q.Rank)
			if ri != rj {
				return ri < rj
			}
		}
		for _, o := range q.Sort {
			a, okA := gi(o.Field)
			b, okB := gj(o.Field)
			if !okA || !okB {
				sortErr = unknownField(o.Field)
				return false
			}
			c := compare(a, b)
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	if sortErr != nil {
		return nil, sortErr
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func rankOf(get Getter, r *Rank) int {
	v, _ := get(r.Field)
	s, _ := v.(string)
	s, term := strings.ToLower(s), strings.ToLower(r.Term)
	switch {
	case s == term:
		return 1
	case strings.Contains(s, term):
		return 2
	}
	return 3
}

func compare(a, b any) int {
	switch x := a.(type) {
	case string:
		return strings.Compare(x, fmt.Sprint(b))
	case int:
		y, _ := b.(int)
		return cmpOrdered(x, y)
	case float64:
		y, _ := b.(float64)
		return cmpOrdered(x, y)
	case bool:
		y, _ := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	}
	return 0
}

func cmpOrdered[N int | float64](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
