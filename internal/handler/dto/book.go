// Package dto defines request and response shapes for the HTTP API.
package dto

import (
	"errors"
	"time"

	"github.com/libris/libris/internal/model"
)

// ErrInvalidDate indicates a published_date that is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("published_date must be formatted YYYY-MM-DD")

// BookRequest is the JSON body for add-book and update-book.
type BookRequest struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	PublishedDate *string `json:"published_date,omitempty"`
	Quantity      *int    `json:"quantity,omitempty"`
}

// ParsePublishedDate converts the optional published_date string into a
// time value.
func (r *BookRequest) ParsePublishedDate() (*time.Time, error) {
	if r.PublishedDate == nil || *r.PublishedDate == "" {
		return nil, nil
	}
	t, err := time.Parse(model.DateFormat, *r.PublishedDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}

// BookResponse is the JSON shape of a single book.
type BookResponse struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	PublishedDate *string `json:"published_date,omitempty"`
	Quantity      *int    `json:"quantity,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// BookListResponse is the JSON shape of the full catalog listing.
type BookListResponse struct {
	Message string         `json:"message"`
	Count   int            `json:"count"`
	Books   []BookResponse `json:"books"`
}

// StatusResponse is a simple message payload for mutations.
type StatusResponse struct {
	Message string `json:"message"`
}

// ToBookResponse converts a Book model to its response shape.
func ToBookResponse(b *model.Book) BookResponse {
	resp := BookResponse{
		Title:     b.Title,
		Author:    b.Author,
		Quantity:  b.Quantity,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if b.PublishedDate != nil {
		date := b.PublishedDate.Format(model.DateFormat)
		resp.PublishedDate = &date
	}
	return resp
}

// ToBookListResponse converts a slice of books to the listing shape.
func ToBookListResponse(books []*model.Book) BookListResponse {
	responses := make([]BookResponse, 0, len(books))
	for _, b := range books {
		responses = append(responses, ToBookResponse(b))
	}
	return BookListResponse{
		Message: "Books in our library",
		Count:   len(responses),
		Books:   responses,
	}
}
