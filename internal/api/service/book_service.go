package service

import (
	"errors"

	"bookhive/internal/api/dto"
	"bookhive/internal/api/models"
	"bookhive/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrNotOwner     = errors.New("not allowed")
)

type BookService interface {
	CreateBook(ownerID string, req *dto.CreateBookRequest) (*dto.BookResponse, error)
	UpdateBook(id, callerID string, req *dto.UpdateBookRequest) (*dto.BookResponse, error)
	DeleteBook(id, callerID string) error
	GetBook(id string) (*dto.BookDetailResponse, error)
	ListBooks(page, limit int) (*dto.PaginatedBookResponse, error)
	ListMyBooks(ownerID string, page, limit int) (*dto.PaginatedBookResponse, error)
}

type bookService struct {
	bookRepo   repository.BookRepository
	reviewRepo repository.ReviewRepository
}

func NewBookService(bookRepo repository.BookRepository, reviewRepo repository.ReviewRepository) BookService {
	return &bookService{
		bookRepo:   bookRepo,
		reviewRepo: reviewRepo,
	}
}

// CreateBook persists a new book stamped with the authenticated owner.
// The owner comes from the verified token, never from the request body.
func (s *bookService) CreateBook(ownerID string, req *dto.CreateBookRequest) (*dto.BookResponse, error) {
	book := &models.Book{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Genre:       req.Genre,
		Year:        req.Year,
		Cover:       req.Cover,
		AddedBy:     ownerID,
	}

	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}

	// Reload with owner data
	book, err := s.bookRepo.GetByID(book.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToBookResponse(book), nil
}

// UpdateBook merges the allow-listed fields present in the request into an
// existing book. Only the owner may update.
func (s *bookService) UpdateBook(id, callerID string, req *dto.UpdateBookRequest) (*dto.BookResponse, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	// Check ownership
	if book.AddedBy != callerID {
		return nil, ErrNotOwner
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.Genre != nil {
		book.Genre = *req.Genre
	}
	if req.Year != nil {
		book.Year = req.Year
	}
	if req.Cover != nil {
		book.Cover = *req.Cover
	}

	if err := s.bookRepo.Update(book); err != nil {
		return nil, err
	}

	return dto.FromModelToBookResponse(book), nil
}

// DeleteBook removes a book. Only the owner may delete.
func (s *bookService) DeleteBook(id, callerID string) error {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	if book.AddedBy != callerID {
		return ErrNotOwner
	}

	return s.bookRepo.Delete(id)
}

// GetBook returns a book together with its reviews and the average rating,
// recomputed from the live review set on every call.
func (s *bookService) GetBook(id string) (*dto.BookDetailResponse, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.GetByBook(id)
	if err != nil {
		return nil, err
	}

	avg, err := s.reviewRepo.CalculateAverageRating(id)
	if err != nil {
		return nil, err
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, *dto.FromModelToReviewResponse(&review))
	}

	return &dto.BookDetailResponse{
		Book:      *dto.FromModelToBookResponse(book),
		Reviews:   reviewResponses,
		AvgRating: avg,
	}, nil
}

// ListBooks retrieves the public catalog page by page, newest first
func (s *bookService) ListBooks(page, limit int) (*dto.PaginatedBookResponse, error) {
	books, total, err := s.bookRepo.List(page, limit)
	if err != nil {
		return nil, err
	}
	return s.toPaginatedResponse(books, total, page, limit), nil
}

// ListMyBooks retrieves the caller's own books page by page, newest first
func (s *bookService) ListMyBooks(ownerID string, page, limit int) (*dto.PaginatedBookResponse, error) {
	books, total, err := s.bookRepo.ListByOwner(ownerID, page, limit)
	if err != nil {
		return nil, err
	}
	return s.toPaginatedResponse(books, total, page, limit), nil
}

func (s *bookService) toPaginatedResponse(books []models.Book, total int64, page, limit int) *dto.PaginatedBookResponse {
	bookResponses := make([]dto.BookResponse, 0, len(books))
	for _, book := range books {
		bookResponses = append(bookResponses, *dto.FromModelToBookResponse(&book))
	}
	return dto.NewPaginatedBookResponse(bookResponses, total, page, limit)
}
