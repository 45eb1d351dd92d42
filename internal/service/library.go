// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/libris/libris/internal/metrics"
	"github.com/libris/libris/internal/model"
	"github.com/libris/libris/internal/repository"
)

// Library service errors.
var (
	ErrBookNotFound     = errors.New("book not found")
	ErrBookExists       = errors.New("book title already exists")
	ErrTitleRequired    = errors.New("title is required")
	ErrAuthorRequired   = errors.New("author is required")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// LibraryService handles catalog business logic over the book store.
type LibraryService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(repo *repository.Repository, recorder metrics.Recorder) *LibraryService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &LibraryService{
		repo:    repo,
		metrics: recorder,
	}
}

// BookInput defines the caller-supplied fields of a book.
type BookInput struct {
	Title         string
	Author        string
	PublishedDate *time.Time
	Quantity      *int
}

func (in *BookInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(in.Author) == "" {
		return ErrAuthorRequired
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// ListBooks returns every book in the catalog.
func (s *LibraryService) ListBooks(ctx context.Context) ([]*model.Book, error) {
	return s.repo.ListBooks(ctx)
}

// GetBook returns the book with the given title.
func (s *LibraryService) GetBook(ctx context.Context, title string) (*model.Book, error) {
	book, err := s.repo.GetBookByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// AddBook inserts a new book into the catalog.
// A duplicate title is rejected with ErrBookExists.
func (s *LibraryService) AddBook(ctx context.Context, input BookInput) (*model.Book, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	book := &model.Book{
		Title:         strings.TrimSpace(input.Title),
		Author:        strings.TrimSpace(input.Author),
		PublishedDate: input.PublishedDate,
		Quantity:      input.Quantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateBook(ctx, book); err != nil {
		if errors.Is(err, repository.ErrBookExists) {
			return nil, ErrBookExists
		}
		return nil, err
	}

	s.metrics.IncBookCreated()
	return book, nil
}

// UpdateBook replaces the book matched by oldTitle with the given fields,
// possibly renaming it. A missing old title is an error, not a silent
// zero-row success, and a rename onto an existing title is a conflict.
func (s *LibraryService) UpdateBook(ctx context.Context, oldTitle string, input BookInput) (*model.Book, error) {
	if strings.TrimSpace(oldTitle) == "" {
		return nil, ErrTitleRequired
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	book := &model.Book{
		Title:         strings.TrimSpace(input.Title),
		Author:        strings.TrimSpace(input.Author),
		PublishedDate: input.PublishedDate,
		Quantity:      input.Quantity,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := s.repo.ReplaceBook(ctx, oldTitle, book); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookNotFound):
			return nil, ErrBookNotFound
		case errors.Is(err, repository.ErrBookExists):
			return nil, ErrBookExists
		default:
			return nil, err
		}
	}

	s.metrics.IncBookUpdated()

	updated, err := s.repo.GetBookByTitle(ctx, book.Title)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBook removes the book with the given title.
func (s *LibraryService) DeleteBook(ctx context.Context, title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}

	if err := s.repo.DeleteBook(ctx, title); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	s.metrics.IncBookDeleted()
	return nil
}
