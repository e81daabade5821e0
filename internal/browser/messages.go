package browser

import "github.com/Ycristian01/book-library-management/internal/book"

// booksLoadedMsg is the result of one page fetch. It carries the sequence
// number and parameters of the request that produced it so the model can
// discard responses that a newer request has superseded, whatever order
// they complete in.
type booksLoadedMsg struct {
	seq   int
	page  int
	limit int
	books []book.Book
	total int
	// echoed is the page the service says it served; non-zero values win
	// over the requested page.
	echoed int
	err    error
}

// bookSavedMsg is the result of a create or update submission. workflow
// identifies the dialog instance that issued it; a result arriving after
// that dialog was closed still refetches the list but no longer owns any
// form state.
type bookSavedMsg struct {
	workflow int
	mode     mode
	book     book.Book
	err      error
}

// bookDeletedMsg is the result of a delete request.
type bookDeletedMsg struct {
	workflow int
	id       int64
	err      error
}

// notifExpiredMsg dismisses the notification with the matching sequence
// number. A stale tick must not clear a newer notification.
type notifExpiredMsg struct {
	seq int
}
