package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"bookhive/internal/api/dto"
	"bookhive/internal/api/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookService service.BookService
	logger      *slog.Logger
}

func NewBookHandler(bookService service.BookService, logger *slog.Logger) *BookHandler {
	return &BookHandler{bookService: bookService, logger: logger}
}

// RegisterRoutes registers book routes. Reads are public, writes and the
// caller-scoped list require authentication.
func (h *BookHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	books := router.Group("/books")
	{
		books.GET("", h.List)
		books.GET("/my", authRequired, h.ListMine)
		books.GET("/:id", h.Get)
		books.POST("", authRequired, h.Create)
		books.PUT("/:id", authRequired, h.Update)
		books.DELETE("/:id", authRequired, h.Delete)
	}
}

// List retrieves the public catalog with pagination
// GET /api/books?page=1&limit=5
func (h *BookHandler) List(c *gin.Context) {
	page, limit := paginationParams(c)

	books, err := h.bookService.ListBooks(page, limit)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

// ListMine retrieves the caller's own books with pagination
// GET /api/books/my?page=1&limit=5
func (h *BookHandler) ListMine(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	page, limit := paginationParams(c)

	books, err := h.bookService.ListMyBooks(userID.(string), page, limit)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

// Get retrieves one book with its reviews and average rating
// GET /api/books/:id
func (h *BookHandler) Get(c *gin.Context) {
	detail, err := h.bookService.GetBook(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": detail})
}

// Create adds a book owned by the caller
// POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Title and author required"})
		return
	}

	book, err := h.bookService.CreateBook(userID.(string), &req)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": book})
}

// Update merges the allow-listed fields into a book owned by the caller
// PUT /api/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	book, err := h.bookService.UpdateBook(c.Param("id"), userID.(string), &req)
	if err != nil {
		h.writeBookError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": book})
}

// Delete removes a book owned by the caller
// DELETE /api/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	if err := h.bookService.DeleteBook(c.Param("id"), userID.(string)); err != nil {
		h.writeBookError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Book deleted"})
}

func (h *BookHandler) writeBookError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not allowed"})
	default:
		h.serverError(c, err)
	}
}

func (h *BookHandler) serverError(c *gin.Context, err error) {
	h.logger.Error("book handler error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
}

// paginationParams reads ?page and ?limit with the catalog defaults.
// Out-of-range values fall back rather than erroring; callers clamp.
func paginationParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 5
	}
	return page, limit
}
