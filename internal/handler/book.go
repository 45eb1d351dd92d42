package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/libris/libris/internal/handler/dto"
	"github.com/libris/libris/internal/service"
)

// BookHandler handles HTTP requests for catalog operations.
type BookHandler struct {
	svc    *service.LibraryService
	logger *slog.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(svc *service.LibraryService, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /.
// Returns every book in the catalog.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListBooks(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBookListResponse(books))
}

// Get handles GET /book/?book_title=.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("book_title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "MISSING_TITLE", "book_title query parameter is required")
		return
	}

	book, err := h.svc.GetBook(r.Context(), title)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBookResponse(book))
}

// Add handles POST /add-book/.
func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input, ok := h.bookInput(w, req)
	if !ok {
		return
	}

	book, err := h.svc.AddBook(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("book_added",
		"title", book.Title,
		"author", book.Author,
	)

	writeJSON(w, http.StatusCreated, dto.ToBookResponse(book))
}

// Update handles PUT /update-book/?book_title=.
// The record matched by book_title is fully replaced and may be renamed.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	oldTitle := r.URL.Query().Get("book_title")
	if oldTitle == "" {
		writeError(w, http.StatusBadRequest, "MISSING_TITLE", "book_title query parameter is required")
		return
	}

	var req dto.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input, ok := h.bookInput(w, req)
	if !ok {
		return
	}

	book, err := h.svc.UpdateBook(r.Context(), oldTitle, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("book_updated",
		"old_title", oldTitle,
		"title", book.Title,
	)

	writeJSON(w, http.StatusOK, dto.ToBookResponse(book))
}

// Delete handles DELETE /delete-book/?book_title=.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("book_title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "MISSING_TITLE", "book_title query parameter is required")
		return
	}

	if err := h.svc.DeleteBook(r.Context(), title); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			writeError(w, http.StatusNotFound, "BOOK_NOT_FOUND",
				fmt.Sprintf("'%s' does not exist in library", title))
			return
		}
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("book_deleted", "title", title)

	writeJSON(w, http.StatusOK, dto.StatusResponse{Message: "Successfully deleted the book"})
}

// bookInput converts a request body into a service input, writing a 400
// response and returning ok=false when the payload is invalid.
func (h *BookHandler) bookInput(w http.ResponseWriter, req dto.BookRequest) (service.BookInput, bool) {
	pubDate, err := req.ParsePublishedDate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_DATE", err.Error())
		return service.BookInput{}, false
	}

	return service.BookInput{
		Title:         req.Title,
		Author:        req.Author,
		PublishedDate: pubDate,
		Quantity:      req.Quantity,
	}, true
}

// handleServiceError maps library service errors to HTTP responses.
func (h *BookHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		writeError(w, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found")
	case errors.Is(err, service.ErrBookExists):
		writeError(w, http.StatusConflict, "TITLE_TAKEN", "A book with this title already exists")
	case errors.Is(err, service.ErrTitleRequired):
		writeError(w, http.StatusBadRequest, "MISSING_TITLE", "title is required")
	case errors.Is(err, service.ErrAuthorRequired):
		writeError(w, http.StatusBadRequest, "MISSING_AUTHOR", "author is required")
	case errors.Is(err, service.ErrNegativeQuantity):
		writeError(w, http.StatusBadRequest, "INVALID_QUANTITY", "quantity must not be negative")
	default:
		h.logger.Error("library operation failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
