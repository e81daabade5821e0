package book

import "fmt"

// Book is one record in the library catalog. The ID is assigned by the
// book service; a zero ID means the book has not been created yet.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	ISBN   string `json:"isbn"`
}

// Label returns a short human-readable identifier for log and CLI output.
func (b Book) Label() string {
	if b.ID == 0 {
		return fmt.Sprintf("%q by %s", b.Title, b.Author)
	}
	return fmt.Sprintf("#%d %q by %s", b.ID, b.Title, b.Author)
}
