// Package server is an in-memory implementation of the book service wire
// contract, used by `bookctl serve` for local development and by the
// end-to-end tests. It speaks the same JSON shapes and leaks the same
// constraint-violation string as the production backend.
package server

import (
	"errors"
	"sort"
	"sync"

	"github.com/Ycristian01/book-library-management/internal/book"
)

// Repository errors.
var (
	// ErrNotFound is returned when no book has the requested ID.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateISBN is returned when another book already has the ISBN.
	ErrDuplicateISBN = errors.New("duplicate isbn")
)

// Repository stores books in memory, assigning incrementing IDs the way the
// production database's identity column does.
type Repository struct {
	mu     sync.RWMutex
	books  map[int64]book.Book
	nextID int64
}

// NewRepository constructs a Repository seeded with the provided books.
// Seed books keep their IDs when set; new books are numbered after the
// highest seeded ID.
func NewRepository(seed ...book.Book) *Repository {
	r := &Repository{
		books:  make(map[int64]book.Book, len(seed)),
		nextID: 1,
	}
	for _, b := range seed {
		if b.ID == 0 {
			b.ID = r.nextID
		}
		r.books[b.ID] = b
		if b.ID >= r.nextID {
			r.nextID = b.ID + 1
		}
	}
	return r
}

// List returns one page of books in ascending ID order, plus the total
// count across all pages.
func (r *Repository) List(page, limit int) ([]book.Book, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]book.Book, 0, len(r.books))
	for _, b := range r.books {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := len(all)
	start := (page - 1) * limit
	if start >= total {
		return []book.Book{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total
}

// Get retrieves a book by ID.
func (r *Repository) Get(id int64) (book.Book, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	return b, ok
}

// Create adds a book, assigning the next ID. Fails with ErrDuplicateISBN
// when another book already carries the ISBN.
func (r *Repository) Create(b book.Book) (book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isbnTaken(b.ISBN, 0) {
		return book.Book{}, ErrDuplicateISBN
	}

	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = b
	return b, nil
}

// Update replaces the book with the given ID.
func (r *Repository) Update(id int64, b book.Book) (book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return book.Book{}, ErrNotFound
	}
	if r.isbnTaken(b.ISBN, id) {
		return book.Book{}, ErrDuplicateISBN
	}

	b.ID = id
	r.books[id] = b
	return b, nil
}

// Delete removes the book with the given ID.
func (r *Repository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return ErrNotFound
	}
	delete(r.books, id)
	return nil
}

// isbnTaken reports whether a book other than exclID holds the ISBN.
// Callers must hold the lock.
func (r *Repository) isbnTaken(isbn string, exclID int64) bool {
	for _, existing := range r.books {
		if existing.ISBN == isbn && existing.ID != exclID {
			return true
		}
	}
	return false
}
