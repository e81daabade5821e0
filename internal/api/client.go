// Package api is the HTTP client for the remote book service.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Ycristian01/book-library-management/internal/book"
)

const defaultBaseURL = "http://localhost:8080"

// Client talks to the book service REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given service base URL.
// If baseURL is empty, a local development server is assumed.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	// Strip trailing slash for consistent URL building.
	baseURL = strings.TrimRight(baseURL, "/")

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Page is one page of the catalog as reported by the service.
type Page struct {
	Books []book.Book
	Total int
	Page  int
}

type listResponse struct {
	Data  []book.Book `json:"data"`
	Total int         `json:"total"`
	Page  int         `json:"page"`
}

// List fetches one page of books. The service echoes the page it actually
// served in Page.Page; callers should prefer it over the requested page
// when it is non-zero.
func (c *Client) List(page, limit int) (Page, error) {
	url := c.url("books") + "?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	var resp listResponse
	if err := c.doJSON(http.MethodGet, url, nil, &resp); err != nil {
		return Page{}, fmt.Errorf("listing books: %w", err)
	}
	return Page{Books: resp.Data, Total: resp.Total, Page: resp.Page}, nil
}

// Get fetches a single book by ID.
func (c *Client) Get(id int64) (book.Book, error) {
	var b book.Book
	if err := c.doJSON(http.MethodGet, c.url("books", formatID(id)), nil, &b); err != nil {
		return book.Book{}, fmt.Errorf("fetching book %d: %w", id, err)
	}
	return b, nil
}

// Create submits a new book (ID must be zero) and returns the created
// record with its service-assigned ID.
func (c *Client) Create(draft book.Book) (book.Book, error) {
	var created book.Book
	if err := c.doJSON(http.MethodPost, c.url("books"), draft, &created); err != nil {
		return book.Book{}, fmt.Errorf("creating book: %w", err)
	}
	return created, nil
}

// Update replaces the book with the given ID.
func (c *Client) Update(b book.Book) (book.Book, error) {
	var updated book.Book
	if err := c.doJSON(http.MethodPut, c.url("books", formatID(b.ID)), b, &updated); err != nil {
		return book.Book{}, fmt.Errorf("updating book %d: %w", b.ID, err)
	}
	return updated, nil
}

// Delete removes the book with the given ID.
func (c *Client) Delete(id int64) error {
	if err := c.doJSON(http.MethodDelete, c.url("books", formatID(id)), nil, nil); err != nil {
		return fmt.Errorf("deleting book %d: %w", id, err)
	}
	return nil
}

// doJSON sends a request and decodes the JSON response into out.
func (c *Client) doJSON(method, url string, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return err
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// url builds an API URL from path segments.
func (c *Client) url(parts ...string) string {
	return c.baseURL + "/" + strings.Join(parts, "/")
}

// checkStatus returns a *ServiceError for non-2xx responses, carrying the
// server's error string when the body has the documented {error: ...} shape.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(resp.Body)

	var wrapper struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Error != "" {
		msg = wrapper.Error
	}

	return &ServiceError{Status: resp.StatusCode, Message: msg}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
