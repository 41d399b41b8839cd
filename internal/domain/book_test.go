package domain

import (
	"errors"
	"testing"
)

func TestNewBook(t *testing.T) {
	t.Parallel()

	book, err := NewBook("Dune", "Frank Herbert", 412, "shelf-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if book.ID == "" {
		t.Error("Expected generated ID, got empty string")
	}

	if book.BookTitle != "Dune" {
		t.Errorf("Expected title Dune, got %s", book.BookTitle)
	}

	if book.Author != "Frank Herbert" {
		t.Errorf("Expected author Frank Herbert, got %s", book.Author)
	}

	if book.NoOfPages != 412 {
		t.Errorf("Expected 412 pages, got %d", book.NoOfPages)
	}

	if book.ShelfID != "shelf-1" {
		t.Errorf("Expected shelf ID shelf-1, got %s", book.ShelfID)
	}

	// Two books never share an ID
	other, err := NewBook("Dune", "Frank Herbert", 412, "shelf-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if other.ID == book.ID {
		t.Error("Expected distinct IDs for distinct books")
	}
}

func TestNewBookValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		author  string
		pages   int
		wantErr error
	}{
		{"empty title", "", "Frank Herbert", 412, ErrEmptyBookTitle},
		{"whitespace title", "   ", "Frank Herbert", 412, ErrEmptyBookTitle},
		{"empty author", "Dune", "", 412, ErrEmptyBookAuthor},
		{"zero pages", "Dune", "Frank Herbert", 0, ErrInvalidPages},
		{"negative pages", "Dune", "Frank Herbert", -10, ErrInvalidPages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBook(tt.title, tt.author, tt.pages, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Expected book field error to be an invalid-argument error, got %v", err)
			}
		})
	}
}

func TestBookWithoutShelf(t *testing.T) {
	t.Parallel()

	// A shelf association is optional
	book, err := NewBook("Dune", "Frank Herbert", 412, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if book.ShelfID != "" {
		t.Errorf("Expected empty shelf ID, got %s", book.ShelfID)
	}
}

func TestValidateBookID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"valid uuid-like", "0b2c1d6e-aaaa-bbbb-cccc-111122223333", nil},
		{"valid with allowed specials", "book_id@example.com-1.0", nil},
		{"empty", "", ErrEmptyBookID},
		{"whitespace only", "  ", ErrEmptyBookID},
		{"contains space", "abc def", ErrMalformedBookID},
		{"contains slash", "abc/def", ErrMalformedBookID},
		{"contains percent", "abc%27", ErrMalformedBookID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBookID(tt.id)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrInvalidID) {
				t.Errorf("Expected an invalid-ID error, got %v", err)
			}
		})
	}
}
