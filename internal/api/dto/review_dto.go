package dto

import (
	"time"

	"bookhive/internal/api/models"
)

// CreateReviewRequest for submitting a review of a book.
// The rating range check lives in the service so the response can tell
// "missing rating" apart from "rating out of range".
type CreateReviewRequest struct {
	BookID     string `json:"bookId" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	ReviewText string `json:"reviewText"`
}

// UpdateReviewRequest for partial updates to an existing review
type UpdateReviewRequest struct {
	Rating     *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	ReviewText *string `json:"reviewText"`
}

// ReviewResponse for returning review information with the author's display name
type ReviewResponse struct {
	ID         string    `json:"_id"`
	BookID     string    `json:"bookId"`
	UserID     string    `json:"userId"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText,omitempty"`
	UserName   string    `json:"userName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FromModelToReviewResponse converts a Review model (with User preloaded) to a ReviewResponse
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         review.ID,
		BookID:     review.BookID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		UserName:   review.User.Name,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}
