package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ycristian01/book-library-management/internal/book"
)

func newTestServer(t *testing.T, seed ...book.Book) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(Handler(NewRepository(seed...)))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestList_PaginationWindow(t *testing.T) {
	srv := newTestServer(t, SeedBooks()...)

	resp := doJSON(t, http.MethodGet, srv.URL+"/books?page=2&limit=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data  []book.Book `json:"data"`
		Total int         `json:"total"`
		Page  int         `json:"page"`
	}
	decode(t, resp, &body)

	assert.Equal(t, 7, body.Total)
	assert.Equal(t, 2, body.Page)
	require.Len(t, body.Data, 2)
	// Pages are served in ascending ID order.
	assert.Equal(t, int64(6), body.Data[0].ID)
	assert.Equal(t, int64(7), body.Data[1].ID)
}

func TestList_PageBeyondEnd(t *testing.T) {
	srv := newTestServer(t, SeedBooks()...)

	resp := doJSON(t, http.MethodGet, srv.URL+"/books?page=9&limit=50", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data  []book.Book `json:"data"`
		Total int         `json:"total"`
	}
	decode(t, resp, &body)
	assert.Empty(t, body.Data)
	assert.Equal(t, 7, body.Total)
}

func TestCreate_AssignsIncrementingIDs(t *testing.T) {
	srv := newTestServer(t)

	first := doJSON(t, http.MethodPost, srv.URL+"/books",
		book.Book{Title: "A", Author: "B", Year: 2000, ISBN: "1111111111111"})
	require.Equal(t, http.StatusCreated, first.StatusCode)
	var created book.Book
	decode(t, first, &created)
	assert.Equal(t, int64(1), created.ID)

	second := doJSON(t, http.MethodPost, srv.URL+"/books",
		book.Book{Title: "C", Author: "D", Year: 2001, ISBN: "2222222222222"})
	var next book.Book
	decode(t, second, &next)
	assert.Equal(t, int64(2), next.ID)
}

func TestCreate_DuplicateISBN(t *testing.T) {
	srv := newTestServer(t,
		book.Book{Title: "A", Author: "B", Year: 2000, ISBN: "1111111111111"})

	resp := doJSON(t, http.MethodPost, srv.URL+"/books",
		book.Book{Title: "C", Author: "D", Year: 2001, ISBN: "1111111111111"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decode(t, resp, &body)
	assert.Contains(t, body.Error, `unique constraint "unique_isbn"`)
}

func TestCreate_RejectsInvalidBook(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/books",
		book.Book{Title: "", Author: "D", Year: 2001, ISBN: "123"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decode(t, resp, &body)
	assert.Contains(t, body.Error, "title")
	assert.Contains(t, body.Error, "isbn")
}

func TestUpdate(t *testing.T) {
	srv := newTestServer(t,
		book.Book{Title: "A", Author: "B", Year: 2000, ISBN: "1111111111111"})

	resp := doJSON(t, http.MethodPut, srv.URL+"/books/1",
		book.Book{Title: "A2", Author: "B", Year: 2000, ISBN: "1111111111111"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated book.Book
	decode(t, resp, &updated)
	assert.Equal(t, "A2", updated.Title)
	assert.Equal(t, int64(1), updated.ID)
}

func TestUpdate_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/books/99",
		book.Book{Title: "A", Author: "B", Year: 2000, ISBN: "1111111111111"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdate_KeepingOwnISBNIsNotADuplicate(t *testing.T) {
	srv := newTestServer(t,
		book.Book{Title: "A", Author: "B", Year: 2000, ISBN: "1111111111111"})

	resp := doJSON(t, http.MethodPut, srv.URL+"/books/1",
		book.Book{Title: "A", Author: "B2", Year: 2000, ISBN: "1111111111111"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDelete(t *testing.T) {
	srv := newTestServer(t,
		book.Book{Title: "A", Author: "B", Year: 2000, ISBN: "1111111111111"})

	resp := doJSON(t, http.MethodDelete, srv.URL+"/books/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	gone := doJSON(t, http.MethodDelete, srv.URL+"/books/1", nil)
	assert.Equal(t, http.StatusNotFound, gone.StatusCode)
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodOptions, srv.URL+"/books", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(resp.Header.Get("Access-Control-Allow-Methods"), "DELETE"))
}
