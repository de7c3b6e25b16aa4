package service

import (
	"testing"
	"time"

	"bookhive/internal/api/dto"
	"bookhive/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// --- HELPER FUNCTIONS FOR POINTERS ---
func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

// MockBookRepository mocks the BookRepository interface
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(book *models.Book) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockBookRepository) Update(book *models.Book) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBookRepository) GetByID(id string) (*models.Book, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) List(page, limit int) ([]models.Book, int64, error) {
	args := m.Called(page, limit)
	return args.Get(0).([]models.Book), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookRepository) ListByOwner(ownerID string, page, limit int) ([]models.Book, int64, error) {
	args := m.Called(ownerID, page, limit)
	return args.Get(0).([]models.Book), args.Get(1).(int64), args.Error(2)
}

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(id string) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByBook(bookID string) ([]models.Review, error) {
	args := m.Called(bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) CalculateAverageRating(bookID string) (float64, error) {
	args := m.Called(bookID)
	return args.Get(0).(float64), args.Error(1)
}

func ownedBook(id, ownerID string) *models.Book {
	return &models.Book{
		ID:      id,
		Title:   "Dune",
		Author:  "Herbert",
		AddedBy: ownerID,
		Owner:   models.User{ID: ownerID, Name: "Alice", Email: "alice@example.com"},
	}
}

func TestCreateBook_StampsOwnerFromCaller(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	bookService := NewBookService(mockBookRepo, mockReviewRepo)

	mockBookRepo.On("Create", mock.AnythingOfType("*models.Book")).
		Run(func(args mock.Arguments) {
			book := args.Get(0).(*models.Book)
			assert.Equal(t, "user-1", book.AddedBy)
			book.ID = "book-1"
		}).
		Return(nil)
	mockBookRepo.On("GetByID", "book-1").Return(ownedBook("book-1", "user-1"), nil)

	resp, err := bookService.CreateBook("user-1", &dto.CreateBookRequest{Title: "Dune", Author: "Herbert"})

	assert.NoError(t, err)
	assert.Equal(t, "book-1", resp.ID)
	assert.Equal(t, "user-1", resp.AddedBy.ID)
	mockBookRepo.AssertExpectations(t)
}

func TestUpdateBook_NotFound(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	bookService := NewBookService(mockBookRepo, mockReviewRepo)

	mockBookRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	resp, err := bookService.UpdateBook("missing", "user-1", &dto.UpdateBookRequest{Title: stringPtr("X")})

	assert.Equal(t, ErrBookNotFound, err)
	assert.Nil(t, resp)
}

func TestUpdateBook_NotOwnerForbidden(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	bookService := NewBookService(mockBookRepo, mockReviewRepo)

	mockBookRepo.On("GetByID", "book-1").Return(ownedBook("book-1", "user-1"), nil)

	// a perfectly valid update still fails for a non-owner
	resp, err := bookService.UpdateBook("book-1", "user-2", &dto.UpdateBookRequest{Title: stringPtr("New Title")})

	assert.Equal(t, ErrNotOwner, err)
	assert.Nil(t, resp)
	mockBookRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateBook_MergesOnlyPresentFields(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	bookService := NewBookService(mockBookRepo, mockReviewRepo)

	mockBookRepo.On("GetByID", "book-1").Return(ownedBook("book-1", "user-1"), nil)
	mockBookRepo.On("Update", mock.AnythingOfType("*models.Book")).Return(nil)

	resp, err := bookService.UpdateBook("book-1", "user-1", &dto.UpdateBookRequest{
		Title: stringPtr("Dune Messiah"),
		Year:  intPtr(1969),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Dune Messiah", resp.Title)
	assert.Equal(t, 1969, *resp.Year)
	// untouched fields stay as stored
	assert.Equal(t, "Herbert", resp.Author)
	mockBookRepo.AssertExpectations(t)
}

func TestDeleteBook_NotOwnerForbidden(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	bookService := NewBookService(mockBookRepo, mockReviewRepo)

	mockBookRepo.On("GetByID", "book-1").Return(ownedBook("book-1", "user-1"), nil)

	err := bookService.DeleteBook("book-1", "user-2")

	assert.Equal(t, ErrNotOwner, err)
	mockBookRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteBook_Owner(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	bookService := NewBookService(mockBookRepo, mockReviewRepo)

	mockBookRepo.On("GetByID", "book-1").Return(ownedBook("book-1", "user-1"), nil)
	mockBookRepo.On("Delete", "book-1").Return(nil)

	err := bookService.DeleteBook("book-1", "user-1")

	assert.NoError(t, err)
	mockBookRepo.AssertExpectations(t)
}

func TestGetBook_WithReviewsAndAverage(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	bookService := NewBookService(mockBookRepo, mockReviewRepo)

	reviews := []models.Review{
		{ID: "r1", BookID: "book-1", UserID: "user-2", Rating: 4, User: models.User{Name: "Bob"}},
		{ID: "r2", BookID: "book-1", UserID: "user-3", Rating: 5, User: models.User{Name: "Carol"}},
	}
	mockBookRepo.On("GetByID", "book-1").Return(ownedBook("book-1", "user-1"), nil)
	mockReviewRepo.On("GetByBook", "book-1").Return(reviews, nil)
	mockReviewRepo.On("CalculateAverageRating", "book-1").Return(4.5, nil)

	detail, err := bookService.GetBook("book-1")

	assert.NoError(t, err)
	assert.Equal(t, 4.5, detail.AvgRating)
	assert.Len(t, detail.Reviews, 2)
	assert.Equal(t, "Bob", detail.Reviews[0].UserName)
}

func TestGetBook_NoReviewsAverageZero(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	bookService := NewBookService(mockBookRepo, mockReviewRepo)

	mockBookRepo.On("GetByID", "book-1").Return(ownedBook("book-1", "user-1"), nil)
	mockReviewRepo.On("GetByBook", "book-1").Return([]models.Review{}, nil)
	mockReviewRepo.On("CalculateAverageRating", "book-1").Return(0.0, nil)

	detail, err := bookService.GetBook("book-1")

	assert.NoError(t, err)
	assert.Equal(t, 0.0, detail.AvgRating)
	assert.Empty(t, detail.Reviews)
}

func TestGetBook_NotFound(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	bookService := NewBookService(mockBookRepo, mockReviewRepo)

	mockBookRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	detail, err := bookService.GetBook("missing")

	assert.Equal(t, ErrBookNotFound, err)
	assert.Nil(t, detail)
}

func TestListBooks_TotalPages(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	bookService := NewBookService(mockBookRepo, mockReviewRepo)

	books := []models.Book{
		{ID: "b1", Title: "A", Author: "X", CreatedAt: time.Now()},
		{ID: "b2", Title: "B", Author: "Y", CreatedAt: time.Now().Add(-time.Hour)},
	}
	mockBookRepo.On("List", 3, 5).Return(books, int64(12), nil)

	resp, err := bookService.ListBooks(3, 5)

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, 3, resp.TotalPages) // ceil(12/5)
	assert.Len(t, resp.Data, 2)
}

func TestListMyBooks_ScopedToOwner(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	bookService := NewBookService(mockBookRepo, mockReviewRepo)

	mockBookRepo.On("ListByOwner", "user-1", 1, 5).Return([]models.Book{}, int64(0), nil)

	resp, err := bookService.ListMyBooks("user-1", 1, 5)

	assert.NoError(t, err)
	assert.Equal(t, 0, resp.TotalPages)
	assert.Empty(t, resp.Data)
	mockBookRepo.AssertExpectations(t)
}
