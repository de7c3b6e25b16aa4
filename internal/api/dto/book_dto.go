package dto

import (
	"time"

	"bookhive/internal/api/models"
)

// CreateBookRequest for adding a book to the catalog
type CreateBookRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Year        *int   `json:"year"`
	Cover       string `json:"cover"`
}

// UpdateBookRequest for partial updates; only fields present in the request
// body are applied, anything else the client sends is ignored.
type UpdateBookRequest struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
	Genre       *string `json:"genre"`
	Year        *int    `json:"year"`
	Cover       *string `json:"cover"`
}

// BookOwner is the owner projection embedded in book responses
type BookOwner struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
}

// BookResponse for returning book information
type BookResponse struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	Year        *int      `json:"year,omitempty"`
	Cover       string    `json:"cover,omitempty"`
	AddedBy     BookOwner `json:"addedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromModelToBookResponse converts a Book model (with Owner preloaded) to a BookResponse
func FromModelToBookResponse(book *models.Book) *BookResponse {
	return &BookResponse{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
		Genre:       book.Genre,
		Year:        book.Year,
		Cover:       book.Cover,
		AddedBy: BookOwner{
			ID:       book.Owner.ID,
			Name:     book.Owner.Name,
			Email:    book.Owner.Email,
			FullName: book.Owner.DerivedFullName(),
		},
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

// BookDetailResponse bundles a book with its reviews and on-demand average rating
type BookDetailResponse struct {
	Book      BookResponse     `json:"book"`
	Reviews   []ReviewResponse `json:"reviews"`
	AvgRating float64          `json:"avgRating"`
}

// PaginatedBookResponse for returning a page of books
type PaginatedBookResponse struct {
	Success    bool           `json:"success"`
	Data       []BookResponse `json:"data"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

// NewPaginatedBookResponse creates a paginated book response
func NewPaginatedBookResponse(data []BookResponse, total int64, page, limit int) *PaginatedBookResponse {
	return &PaginatedBookResponse{
		Success:    true,
		Data:       data,
		Page:       page,
		TotalPages: TotalPages(total, limit),
	}
}
