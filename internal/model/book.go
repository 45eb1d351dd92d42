// Package model defines domain entities for the application.
package model

import "time"

// DateFormat is the wire format for published dates.
const DateFormat = "2006-01-02"

// Book represents a single catalog entry.
// Title doubles as the primary key, so renaming a book replaces its identity.
type Book struct {
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	Quantity      *int       `json:"quantity,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
