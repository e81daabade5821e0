package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/Ycristian01/book-library-management/internal/book"
)

// duplicateISBNError mimics what the production backend leaks when its
// unique constraint fires: the transaction mapper wraps the raw database
// message. Clients match on the constraint name, so the string must keep
// that exact fragment.
const duplicateISBNError = `Transaction error: ERROR: duplicate key value violates unique constraint "unique_isbn"`

// Handler serves the book service REST API from a Repository.
func Handler(repo *Repository) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /books", func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 1)
		limit := queryInt(r, "limit", 10)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}

		books, total := repo.List(page, limit)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"data":  books,
			"total": total,
			"page":  page,
		})
	})

	mux.HandleFunc("GET /books/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		b, found := repo.Get(id)
		if !found {
			writeError(w, http.StatusNotFound, "Book not found")
			return
		}
		writeJSON(w, http.StatusOK, b)
	})

	mux.HandleFunc("POST /books", func(w http.ResponseWriter, r *http.Request) {
		var b book.Book
		if !decodeBook(w, r, &b) {
			return
		}
		created, err := repo.Create(b)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	})

	mux.HandleFunc("PUT /books/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var b book.Book
		if !decodeBook(w, r, &b) {
			return
		}
		updated, err := repo.Update(id, b)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	})

	mux.HandleFunc("DELETE /books/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := repo.Delete(id); err != nil {
			writeRepoError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return withCORS(mux)
}

// withCORS adds the permissive headers the production backend's CORS
// filter sets, so a browser frontend can use the dev server directly.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "origin, content-type, accept, authorization")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, HEAD")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// decodeBook parses the request body and rejects records that fail field
// validation, mirroring the backend's bean validation behaviour.
func decodeBook(w http.ResponseWriter, r *http.Request, b *book.Book) bool {
	if err := json.NewDecoder(r.Body).Decode(b); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return false
	}
	if errs := book.Validate(*b); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, validationMessage(errs))
		return false
	}
	return true
}

func validationMessage(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msg := "validation failed:"
	for _, f := range fields {
		msg += fmt.Sprintf(" %s: %s;", f, errs[f])
	}
	return msg[:len(msg)-1]
}

func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Book not found")
	case errors.Is(err, ErrDuplicateISBN):
		writeError(w, http.StatusBadRequest, duplicateISBNError)
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return 0, false
	}
	return id, true
}
