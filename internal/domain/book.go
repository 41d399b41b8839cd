package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Book field validation errors.
var (
	ErrEmptyBookTitle  = fmt.Errorf("%w: book title is required", ErrInvalidArgument)
	ErrEmptyBookAuthor = fmt.Errorf("%w: author name is required", ErrInvalidArgument)
	ErrInvalidPages    = fmt.Errorf("%w: number of pages must be a positive number", ErrInvalidArgument)

	ErrEmptyBookID     = fmt.Errorf("%w: book ID must be a non-empty string", ErrInvalidID)
	ErrMalformedBookID = fmt.Errorf("%w: book ID contains invalid characters", ErrInvalidID)
)

// bookIDPattern restricts book identifiers to a conservative character set.
// IDs violating it are rejected as a client error before any lookup happens.
var bookIDPattern = regexp.MustCompile(`^[a-zA-Z0-9@._-]+$`)

// Book represents a single book, optionally placed on a shelf.
//
// The JSON field names mirror the public API contract and must not change.
// ShelfID is an association by convention only; referential integrity against
// user_shelves is not enforced.
type Book struct {
	ID        string `json:"id"`
	BookTitle string `json:"bookTitle"`
	Author    string `json:"author"`
	NoOfPages int    `json:"noOfPages"`
	ShelfID   string `json:"shelfid"`
}

// NewBook creates a Book with a freshly generated unique ID.
// Returns a validation error if any field is invalid.
func NewBook(title, author string, noOfPages int, shelfID string) (*Book, error) {
	book := &Book{
		ID:        uuid.New().String(),
		BookTitle: title,
		Author:    author,
		NoOfPages: noOfPages,
		ShelfID:   shelfID,
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks the book's mutable fields. The ID is not checked here
// because it is always generated internally.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.BookTitle) == "" {
		return ErrEmptyBookTitle
	}

	if strings.TrimSpace(b.Author) == "" {
		return ErrEmptyBookAuthor
	}

	if b.NoOfPages <= 0 {
		return ErrInvalidPages
	}

	return nil
}

// ValidateBookID checks that an externally supplied book identifier is
// non-empty and matches the accepted character set. A malformed ID is a
// distinct error kind from "not found".
func ValidateBookID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyBookID
	}

	if !bookIDPattern.MatchString(id) {
		return ErrMalformedBookID
	}

	return nil
}
