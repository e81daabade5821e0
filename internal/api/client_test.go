package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ycristian01/book-library-management/internal/book"
)

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []book.Book{
				{ID: 6, Title: "TAPL", Author: "Pierce", Year: 2002, ISBN: "9780262162098"},
			},
			"total": 6,
			"page":  2,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	page, err := c.List(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, page.Total)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Books, 1)
	assert.Equal(t, "TAPL", page.Books[0].Title)
}

func TestCreate_AssignsID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var b book.Book
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		b.ID = 42
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(b)
	}))
	defer srv.Close()

	created, err := New(srv.URL).Create(book.Book{Title: "SICP", Author: "Abelson", Year: 1996, ISBN: "9780262510875"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestDelete_UsesIDPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/books/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).Delete(7))
}

func TestErrorResponse_CarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Transaction error: boom"})
	}))
	defer srv.Close()

	err := New(srv.URL).Delete(1)
	require.Error(t, err)

	var se *ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 400, se.Status)
	assert.Equal(t, "Transaction error: boom", se.Message)
}

func TestClassify(t *testing.T) {
	dupBody := fmt.Sprintf("Transaction error: ERROR: %s", duplicateISBNMarker)

	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			// The marker wins even though the status is 400.
			"duplicate isbn on 400",
			&ServiceError{Status: 400, Message: dupBody},
			MsgDuplicateISBN,
		},
		{
			"duplicate isbn on 500",
			&ServiceError{Status: 500, Message: dupBody},
			MsgDuplicateISBN,
		},
		{"bad request", &ServiceError{Status: 400, Message: "title: Title is required"}, MsgInvalidData},
		{"not found", &ServiceError{Status: 404, Message: "Book not found"}, MsgNotFound},
		{"server error", &ServiceError{Status: 500, Message: "oops"}, MsgServerError},
		{"bad gateway", &ServiceError{Status: 502}, MsgServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

func TestClassify_WrappedError(t *testing.T) {
	// Client methods wrap *ServiceError with context; Classify must still
	// find it through the chain.
	wrapped := fmt.Errorf("creating book: %w", &ServiceError{Status: 404})
	assert.Equal(t, MsgNotFound, Classify(wrapped))
}

func TestClassify_Connectivity(t *testing.T) {
	// A server that is not listening produces a transport error with no
	// response to classify.
	c := New("http://127.0.0.1:1")
	_, err := c.List(1, 10)
	require.Error(t, err)

	msg := Classify(err)
	assert.Contains(t, msg, "Could not reach the book service")
}

func TestIsDuplicateISBN(t *testing.T) {
	dup := &ServiceError{Status: 400, Message: duplicateISBNMarker}
	assert.True(t, IsDuplicateISBN(dup))
	assert.True(t, IsDuplicateISBN(fmt.Errorf("wrap: %w", dup)))
	assert.False(t, IsDuplicateISBN(&ServiceError{Status: 400, Message: "other"}))
	assert.False(t, IsDuplicateISBN(errors.New("plain")))
}
