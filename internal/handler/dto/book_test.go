package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/libris/libris/internal/model"
)

func TestParsePublishedDate(t *testing.T) {
	t.Parallel()

	valid := "1965-08-01"
	empty := ""
	badFormat := "08/01/1965"
	notADate := "yesterday"

	tests := []struct {
		name    string
		value   *string
		want    string
		wantErr error
	}{
		{"nil", nil, "", nil},
		{"empty string", &empty, "", nil},
		{"valid", &valid, "1965-08-01", nil},
		{"wrong format", &badFormat, "", ErrInvalidDate},
		{"not a date", &notADate, "", ErrInvalidDate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := BookRequest{PublishedDate: tt.value}
			got, err := req.ParsePublishedDate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.want == "" {
				if got != nil && err == nil {
					t.Errorf("expected nil date, got %v", got)
				}
				return
			}
			if got == nil || got.Format(model.DateFormat) != tt.want {
				t.Errorf("date = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestToBookResponse(t *testing.T) {
	t.Parallel()

	published := time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)
	quantity := 3
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	book := &model.Book{
		Title:         "Dune",
		Author:        "Frank Herbert",
		PublishedDate: &published,
		Quantity:      &quantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	resp := ToBookResponse(book)

	if resp.Title != "Dune" || resp.Author != "Frank Herbert" {
		t.Errorf("unexpected title/author: %+v", resp)
	}
	if resp.PublishedDate == nil || *resp.PublishedDate != "1965-08-01" {
		t.Errorf("published_date = %v, want 1965-08-01", resp.PublishedDate)
	}
	if resp.Quantity == nil || *resp.Quantity != 3 {
		t.Errorf("quantity = %v, want 3", resp.Quantity)
	}
	if resp.CreatedAt != "2025-01-02T03:04:05Z" {
		t.Errorf("created_at = %s", resp.CreatedAt)
	}
}

func TestToBookResponse_OptionalFieldsOmitted(t *testing.T) {
	t.Parallel()

	book := &model.Book{Title: "Dune", Author: "Frank Herbert"}

	resp := ToBookResponse(book)

	if resp.PublishedDate != nil {
		t.Errorf("expected nil published_date, got %v", *resp.PublishedDate)
	}
	if resp.Quantity != nil {
		t.Errorf("expected nil quantity, got %v", *resp.Quantity)
	}
}

func TestToBookListResponse(t *testing.T) {
	t.Parallel()

	books := []*model.Book{
		{Title: "Dune", Author: "Frank Herbert"},
		{Title: "Snow Crash", Author: "Neal Stephenson"},
	}

	resp := ToBookListResponse(books)

	if resp.Message != "Books in our library" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Count != 2 {
		t.Errorf("count = %d, want 2", resp.Count)
	}
	if len(resp.Books) != 2 {
		t.Fatalf("books length = %d, want 2", len(resp.Books))
	}
	if resp.Books[0].Title != "Dune" {
		t.Errorf("first book = %q", resp.Books[0].Title)
	}
}

func TestToBookListResponse_Empty(t *testing.T) {
	t.Parallel()

	resp := ToBookListResponse(nil)

	if resp.Count != 0 {
		t.Errorf("count = %d, want 0", resp.Count)
	}
	if resp.Books == nil {
		t.Error("books should be an empty slice, not nil")
	}
}
