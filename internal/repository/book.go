package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/libris/libris/internal/model"
)

// Common errors for book repository operations.
var (
	ErrBookNotFound = errors.New("book not found")
	ErrBookExists   = errors.New("book title already exists")
)

// CreateBook inserts a new book. The title is the primary key, so
// inserting a duplicate title fails with ErrBookExists.
func (r *Repository) CreateBook(ctx context.Context, book *model.Book) error {
	query := `
		INSERT INTO books (title, author, published_date, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		book.Title,
		book.Author,
		book.PublishedDate,
		book.Quantity,
		book.CreatedAt,
		book.UpdatedAt,
	)

	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return ErrBookExists
		}
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

// GetBookByTitle retrieves a book by exact title match.
func (r *Repository) GetBookByTitle(ctx context.Context, title string) (*model.Book, error) {
	query := `
		SELECT title, author, published_date, quantity, created_at, updated_at
		FROM books
		WHERE title = $1
	`

	book, err := scanBook(r.pool.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by title: %w", err)
	}

	return book, nil
}

// ListBooks retrieves every book in the catalog, ordered by title.
func (r *Repository) ListBooks(ctx context.Context) ([]*model.Book, error) {
	query := `
		SELECT title, author, published_date, quantity, created_at, updated_at
		FROM books
		ORDER BY title
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []*model.Book
	for rows.Next() {
		book, err := scanBookFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

// ReplaceBook replaces the record matched by oldTitle with book, which may
// carry a new title. A single UPDATE keeps the rename atomic: a title
// collision surfaces as ErrBookExists, and zero matched rows as
// ErrBookNotFound rather than a silent no-op.
func (r *Repository) ReplaceBook(ctx context.Context, oldTitle string, book *model.Book) error {
	query := `
		UPDATE books
		SET title = $2, author = $3, published_date = $4, quantity = $5, updated_at = $6
		WHERE title = $1
	`

	result, err := r.pool.Exec(ctx, query,
		oldTitle,
		book.Title,
		book.Author,
		book.PublishedDate,
		book.Quantity,
		book.UpdatedAt,
	)

	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return ErrBookExists
		}
		return fmt.Errorf("failed to update book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookNotFound
	}

	return nil
}

// DeleteBook removes a book by title.
func (r *Repository) DeleteBook(ctx context.Context, title string) error {
	query := `DELETE FROM books WHERE title = $1`

	result, err := r.pool.Exec(ctx, query, title)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookNotFound
	}

	return nil
}

// scanBook scans a single row into a Book model.
func scanBook(row pgx.Row) (*model.Book, error) {
	var book model.Book
	err := row.Scan(
		&book.Title,
		&book.Author,
		&book.PublishedDate,
		&book.Quantity,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	return &book, err
}

// scanBookFromRows scans a row from pgx.Rows into a Book model.
func scanBookFromRows(rows pgx.Rows) (*model.Book, error) {
	var book model.Book
	err := rows.Scan(
		&book.Title,
		&book.Author,
		&book.PublishedDate,
		&book.Quantity,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	return &book, err
}
