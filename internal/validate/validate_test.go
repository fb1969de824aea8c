package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQ(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"oli", "oli", true},
		{"oli ", "oli ", true},
		{"", "", true},
		{"   ", "", true},
		{"Oli & Pelumas", "Oli & Pelumas", true},
		{"perawatan mésin", "perawatan mésin", true},
		{"(NS40)", "(NS40)", true},
		{"xyzzy?", "xyzzy?", true},
		{`GTX: "5W-30" • #1!`, `GTX: "5W-30" • #1!`, true},
		{"<script>", "<script>", true},
		{"oli\xff", "oli\xff", false},
	}
	for _, c := range cases {
		got, ok := Q(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	// Over-long queries are rejected whole, never cut down.
	long := strings.Repeat("a", MaxQueryLen+1)
	got, ok := Q(long)
	assert.False(t, ok)
	assert.Equal(t, long, got)

	_, ok = Q(strings.Repeat("é", MaxQueryLen))
	assert.True(t, ok)
}

func TestLimit(t *testing.T) {
	n, ok := Limit("", 10, MaxLimit)
	assert.True(t, ok)
	assert.Equal(t, 10, n)

	n, ok = Limit("500", 10, MaxLimit)
	assert.True(t, ok)
	assert.Equal(t, MaxLimit, n)

	for _, bad := range []string{"0", "-1", "ten"} {
		_, ok = Limit(bad, 10, MaxLimit)
		assert.False(t, ok, bad)
	}
}

func TestBool(t *testing.T) {
	v, set, ok := Bool("true")
	assert.True(t, v && set && ok)
	_, set, ok = Bool("")
	assert.True(t, ok)
	assert.False(t, set)
	_, _, ok = Bool("maybe")
	assert.False(t, ok)
}

func TestStatuses(t *testing.T) {
	assert.True(t, PromoStatus("scheduled"))
	assert.False(t, PromoStatus("published"))
	assert.True(t, ArticleStatus("archived"))
	assert.False(t, ArticleStatus("active"))
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("Passw0rd!"))
	assert.False(t, Password("password"))
	assert.False(t, Password("Sh0rt!"))
}
