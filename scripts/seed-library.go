// Command seed-library creates an initial user and a handful of sample
// books for local development and demos.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/libris/libris/internal/auth"
	"github.com/libris/libris/internal/model"
	"github.com/libris/libris/internal/repository"
)

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		userName    = flag.String("user", "librarian", "User name for the seeded account")
		email       = flag.String("email", "librarian@libris.local", "Email for the seeded account")
		password    = flag.String("password", "", "Password for the seeded account (required)")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	if *password == "" {
		fmt.Fprintln(os.Stderr, "-password is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	if err := seedUser(ctx, repo, *userName, *email, *password); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	created, err := seedBooks(ctx, repo)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Printf("seeded user %q and %d books\n", *userName, created)
}

func seedUser(ctx context.Context, repo *repository.Repository, userName, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		UserName:     userName,
		Email:        &email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	err = repo.CreateUser(ctx, user)
	if errors.Is(err, repository.ErrUsernameExists) || errors.Is(err, repository.ErrEmailExists) {
		fmt.Printf("user %q already present, skipping\n", userName)
		return nil
	}
	return err
}

func seedBooks(ctx context.Context, repo *repository.Repository) (int, error) {
	date := func(value string) *time.Time {
		t, err := time.Parse(model.DateFormat, value)
		if err != nil {
			panic(err)
		}
		return &t
	}
	qty := func(n int) *int { return &n }

	now := time.Now().UTC()
	books := []*model.Book{
		{Title: "Dune", Author: "Frank Herbert", PublishedDate: date("1965-08-01"), Quantity: qty(3), CreatedAt: now, UpdatedAt: now},
		{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", PublishedDate: date("1969-03-01"), Quantity: qty(2), CreatedAt: now, UpdatedAt: now},
		{Title: "Snow Crash", Author: "Neal Stephenson", PublishedDate: date("1992-06-01"), Quantity: qty(1), CreatedAt: now, UpdatedAt: now},
	}

	created := 0
	for _, book := range books {
		err := repo.CreateBook(ctx, book)
		if errors.Is(err, repository.ErrBookExists) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("seed book %q: %w", book.Title, err)
		}
		created++
	}

	return created, nil
}
