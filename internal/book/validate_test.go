package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validBook() Book {
	return Book{Title: "SICP", Author: "Abelson", Year: 1996, ISBN: "9780262510875"}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Book)
		want   map[string]string
	}{
		{"valid", func(b *Book) {}, map[string]string{}},
		{"blank title", func(b *Book) { b.Title = "" }, map[string]string{"title": ReasonRequired}},
		{"whitespace title", func(b *Book) { b.Title = "   " }, map[string]string{"title": ReasonRequired}},
		{"blank author", func(b *Book) { b.Author = "\t" }, map[string]string{"author": ReasonRequired}},
		{"year too early", func(b *Book) { b.Year = 999 }, map[string]string{"year": ReasonOutOfRange}},
		{"year too late", func(b *Book) { b.Year = time.Now().Year() + 11 }, map[string]string{"year": ReasonOutOfRange}},
		{"zero year", func(b *Book) { b.Year = 0 }, map[string]string{"year": ReasonOutOfRange}},
		{"blank isbn", func(b *Book) { b.ISBN = "" }, map[string]string{"isbn": ReasonRequired}},
		{"short isbn", func(b *Book) { b.ISBN = "123" }, map[string]string{"isbn": ReasonInvalidFormat}},
		{"hyphenated isbn ok", func(b *Book) { b.ISBN = "978-0-262-51087-5" }, map[string]string{}},
		{"isbn with letters", func(b *Book) { b.ISBN = "97802625108xy" }, map[string]string{"isbn": ReasonInvalidFormat}},
		{
			"everything wrong at once",
			func(b *Book) { *b = Book{Year: 12, ISBN: "abc"} },
			map[string]string{
				"title":  ReasonRequired,
				"author": ReasonRequired,
				"year":   ReasonOutOfRange,
				"isbn":   ReasonInvalidFormat,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBook()
			tc.mutate(&b)
			assert.Equal(t, tc.want, Validate(b))
		})
	}
}

func TestValidate_BoundaryYears(t *testing.T) {
	b := validBook()
	b.Year = MinYear
	assert.Empty(t, Validate(b))

	b.Year = MaxYear()
	assert.Empty(t, Validate(b))
}

func TestNormalizeISBN(t *testing.T) {
	cases := []struct{ in, want string }{
		{"9780262510875", "9780262510875"},
		{"978-0-262-51087-5", "9780262510875"},
		{"978 0262 510875", "9780262510875"},
		{"97802625108751234", "9780262510875"},
		{"abc", ""},
		{"", ""},
		{"978", "978"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeISBN(c.in), "NormalizeISBN(%q)", c.in)
	}
}
