package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdrive/internal/domain"
)

type row struct {
	ID       string
	Name     string
	Category string
	InStock  bool
	Order    int
}

func rowGetter(r row) Getter {
	return func(f string) (any, bool) {
		switch f {
		case "id":
			return r.ID, true
		case "name":
			return r.Name, true
		case "category":
			return r.Category, true
		case "inStock":
			return r.InStock, true
		case "order":
			return r.Order, true
		}
		return nil, false
	}
}

var rows = []row{
	{ID: "1", Name: "Oli Mesin Castrol GTX", Category: "Oli & Pelumas", InStock: true, Order: 3},
	{ID: "2", Name: "Ban Michelin Primacy 4", Category: "Ban & Velg", InStock: true, Order: 1},
	{ID: "3", Name: "Oli", Category: "Oli & Pelumas", InStock: false, Order: 2},
	{ID: "4", Name: "Filter Udara", Category: "Spare Part oli", InStock: true, Order: 4},
}

func ids(rs []row) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestApply_EqAndContains(t *testing.T) {
	q := Query{}.Where("inStock", true).Search("oli", "name", "category")

	got, err := Apply(rows, q, rowGetter)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, ids(got))
}

func TestApply_RankExactThenContainsThenRest(t *testing.T) {
	q := Query{}.Search("OLI", "name", "category")

	got, err := Apply(rows, q, rowGetter)
	require.NoError(t, err)
	// "Oli" is an exact name match, "Oli Mesin..." contains it, "Filter Udara" matched on category only.
	assert.Equal(t, []string{"3", "1", "4"}, ids(got))
}

func TestApply_SortAndLimit(t *testing.T) {
	got, err := Apply(rows, Query{}.OrderBy("order", false).Take(2), rowGetter)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, ids(got))

	got, err = Apply(rows, Query{}.OrderBy("order", true), rowGetter)
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "1", "3", "2"}, ids(got))
}

func TestApply_UnknownField(t *testing.T) {
	_, err := Apply(rows, Query{}.Where("color", "red"), rowGetter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSearch_BlankTermIsIgnored(t *testing.T) {
	q := Query{}.Search("   ", "name")
	assert.Empty(t, q.Predicates)
	assert.Nil(t, q.Rank)
}

func TestBuilders_DoNotAlias(t *testing.T) {
	base := Query{}.Where("inStock", true)
	a := base.Where("category", "Ban & Velg")
	b := base.Where("category", "Oli & Pelumas")

	require.Len(t, a.Predicates, 2)
	require.Len(t, b.Predicates, 2)
	assert.Equal(t, "Ban & Velg", a.Predicates[1].Value)
	assert.Equal(t, "Oli & Pelumas", b.Predicates[1].Value)
}

func TestWithDefaultSort(t *testing.T) {
	q := Query{}.WithDefaultSort(Order{Field: "order"})
	assert.Equal(t, []Order{{Field: "order"}}, q.Sort)

	q = Query{}.OrderBy("name", true).WithDefaultSort(Order{Field: "order"})
	assert.Equal(t, []Order{{Field: "name", Desc: true}}, q.Sort)
}
