package handler_test

import (
	"net/http"
	"testing"

	"bookhive/internal/api/dto"
	"bookhive/internal/api/handler"
	"bookhive/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateReview(userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) UpdateReview(id, userID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	args := m.Called(id, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) DeleteReview(id, userID string) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func setupReviewRouter(mockService *MockReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewReviewHandler(mockService, testLogger())
	h.RegisterRoutes(r.Group("/api"), mockAuthMiddleware("user-1", "tok-1"))
	return r
}

// --- TESTS ---

func TestCreateReview_Created(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService)

	mockService.On("CreateReview", "user-1", mock.AnythingOfType("*dto.CreateReviewRequest")).
		Return(&dto.ReviewResponse{ID: "review-1", BookID: "book-1", Rating: 4}, nil)

	w := doJSON(r, http.MethodPost, "/api/reviews", gin.H{"bookId": "book-1", "rating": 4})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "review-1", data["_id"])
	mockService.AssertExpectations(t)
}

func TestCreateReview_MissingFields(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService)

	w := doJSON(r, http.MethodPost, "/api/reviews", gin.H{"reviewText": "no book, no rating"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Book and rating required", body["message"])
	mockService.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService)

	// out-of-range ratings pass binding and are rejected by the service
	mockService.On("CreateReview", "user-1", mock.AnythingOfType("*dto.CreateReviewRequest")).
		Return(nil, service.ErrInvalidRating)

	w := doJSON(r, http.MethodPost, "/api/reviews", gin.H{"bookId": "book-1", "rating": 7})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Rating 1-5 only", body["message"])
}

func TestCreateReview_BookMissing(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService)

	mockService.On("CreateReview", "user-1", mock.AnythingOfType("*dto.CreateReviewRequest")).
		Return(nil, service.ErrBookNotFound)

	w := doJSON(r, http.MethodPost, "/api/reviews", gin.H{"bookId": "missing", "rating": 3})

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Book not found", body["message"])
}

func TestUpdateReview_NotAuthor(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService)

	mockService.On("UpdateReview", "review-1", "user-1", mock.AnythingOfType("*dto.UpdateReviewRequest")).
		Return(nil, service.ErrNotOwner)

	w := doJSON(r, http.MethodPut, "/api/reviews/review-1", gin.H{"rating": 5})

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Not allowed", body["message"])
}

func TestUpdateReview_BindingRejectsBadRating(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService)

	w := doJSON(r, http.MethodPut, "/api/reviews/review-1", gin.H{"rating": 9})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Rating 1-5 only", body["message"])
	mockService.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteReview_Author(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService)

	mockService.On("DeleteReview", "review-1", "user-1").Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/reviews/review-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Review deleted", body["message"])
	mockService.AssertExpectations(t)
}

func TestDeleteReview_NotFound(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService)

	mockService.On("DeleteReview", "missing", "user-1").Return(service.ErrReviewNotFound)

	w := doJSON(r, http.MethodDelete, "/api/reviews/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Review not found", body["message"])
}
