package repository

import (
	"bookhive/internal/api/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	Create(book *models.Book) error
	Update(book *models.Book) error
	Delete(id string) error
	GetByID(id string) (*models.Book, error)
	List(page, limit int) ([]models.Book, int64, error)
	ListByOwner(ownerID string, page, limit int) ([]models.Book, int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// Create a new book
func (r *bookRepository) Create(book *models.Book) error {
	return r.db.Create(book).Error
}

// Update an existing book
func (r *bookRepository) Update(book *models.Book) error {
	return r.db.Save(book).Error
}

// Delete a book by ID
func (r *bookRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Book{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID retrieves a book with its owner preloaded
func (r *bookRepository) GetByID(id string) (*models.Book, error) {
	var book models.Book
	err := r.db.Preload("Owner").First(&book, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List retrieves books with pagination, newest first
func (r *bookRepository) List(page, limit int) ([]models.Book, int64, error) {
	var books []models.Book
	var total int64

	// Count total books over the same filter
	if err := r.db.Model(&models.Book{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated books
	offset := (page - 1) * limit
	err := r.db.
		Preload("Owner").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&books).Error

	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// ListByOwner retrieves books added by a given user with pagination, newest first
func (r *bookRepository) ListByOwner(ownerID string, page, limit int) ([]models.Book, int64, error) {
	var books []models.Book
	var total int64

	if err := r.db.Model(&models.Book{}).Where("added_by = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Where("added_by = ?", ownerID).
		Preload("Owner").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&books).Error

	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}
