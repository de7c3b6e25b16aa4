package service

import (
	"errors"

	"bookhive/internal/api/dto"
	"bookhive/internal/api/models"
	"bookhive/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)

type ReviewService interface {
	CreateReview(userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	UpdateReview(id, callerID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(id, callerID string) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	bookRepo   repository.BookRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, bookRepo repository.BookRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
	}
}

// CreateReview persists a review authored by the authenticated user.
// A user may review the same book more than once.
func (s *reviewService) CreateReview(userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	// The guard also runs here so no path can persist an out-of-range rating
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	// Check the reviewed book exists
	if _, err := s.bookRepo.GetByID(req.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	review := &models.Review{
		BookID:     req.BookID,
		UserID:     userID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	// Reload with author data
	review, err := s.reviewRepo.GetByID(review.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(review), nil
}

// UpdateReview merges rating/reviewText into an existing review. Only the
// author may update.
func (s *reviewService) UpdateReview(id, callerID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	// Check ownership
	if review.UserID != callerID {
		return nil, ErrNotOwner
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrInvalidRating
		}
		review.Rating = *req.Rating
	}
	if req.ReviewText != nil {
		review.ReviewText = *req.ReviewText
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(review), nil
}

// DeleteReview removes a review. Only the author may delete.
func (s *reviewService) DeleteReview(id, callerID string) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if review.UserID != callerID {
		return ErrNotOwner
	}

	return s.reviewRepo.Delete(id)
}
