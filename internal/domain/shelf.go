package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UserShelf field validation errors.
var (
	ErrEmptyShelfName  = fmt.Errorf("%w: shelf name cannot be empty", ErrValidation)
	ErrInvalidCapacity = fmt.Errorf("%w: capacity must be a positive integer", ErrValidation)
)

// UserShelf is a named container that owns zero or more books.
//
// Capacity is declarative metadata only: nothing in the system checks the
// actual book count against it. Books are associated to the shelf through
// Book.ShelfID and loaded alongside the shelf when it is read.
type UserShelf struct {
	ID        string `json:"id"`
	ShelfName string `json:"shelfName"`
	Capacity  int    `json:"capacity"`
	Books     []Book `json:"books"`
}

// NewUserShelf creates a UserShelf with a freshly generated unique ID.
// Returns a validation error if the name is empty or the capacity is not
// positive.
func NewUserShelf(shelfName string, capacity int) (*UserShelf, error) {
	shelf := &UserShelf{
		ID:        uuid.New().String(),
		ShelfName: shelfName,
		Capacity:  capacity,
		Books:     []Book{},
	}

	if err := shelf.Validate(); err != nil {
		return nil, err
	}

	return shelf, nil
}

// Validate checks the shelf's mutable fields.
func (s *UserShelf) Validate() error {
	if strings.TrimSpace(s.ShelfName) == "" {
		return ErrEmptyShelfName
	}

	if s.Capacity <= 0 {
		return ErrInvalidCapacity
	}

	return nil
}

// BookCount returns the number of books currently on the shelf.
// A nil book collection counts as zero.
func (s *UserShelf) BookCount() int {
	return len(s.Books)
}
