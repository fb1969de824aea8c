package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdrive/internal/domain"
)

var productCols = Columns{
	"id":        "id",
	"name":      "name",
	"category":  "category",
	"inStock":   "in_stock",
	"createdAt": "created_at",
}

func TestSQL_Empty(t *testing.T) {
	clause, args, err := SQL(Query{}, productCols)
	require.NoError(t, err)
	assert.Equal(t, "", clause)
	assert.Empty(t, args)
}

func TestSQL_FullQuery(t *testing.T) {
	q := Query{}.
		Where("inStock", true).
		Search("Oli", "name", "category").
		OrderBy("createdAt", true).
		Take(5)

	clause, args, err := SQL(q, productCols)
	require.NoError(t, err)
	assert.Equal(t,
		" WHERE in_stock = ? AND (LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(category) LIKE ? ESCAPE '\\')"+
			" ORDER BY CASE WHEN LOWER(name) = ? THEN 1 WHEN LOWER(name) LIKE ? ESCAPE '\\' THEN 2 ELSE 3 END, created_at DESC"+
			" LIMIT ?",
		clause)
	assert.Equal(t, []any{1, "%oli%", "%oli%", "oli", "%oli%", 5}, args)
}

func TestSQL_EscapesWildcards(t *testing.T) {
	_, args, err := SQL(Query{}.Search("50%_off", "name"), productCols)
	require.NoError(t, err)
	assert.Equal(t, `%50\%\_off%`, args[0])
}

func TestSQL_RejectsUnknownColumns(t *testing.T) {
	_, _, err := SQL(Query{}.Where("name; DROP TABLE products", "x"), productCols)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, _, err = SQL(Query{}.OrderBy("rating", false), productCols)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
