package client

// http_client.go handles HTTP client functionality for the bookhive CLI.
// One outbound client reaches every API endpoint, attaching the bearer token.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPClient is the single gateway to the BookHive API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Auth request/response structures
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupData struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type UserResponse struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
}

type LoginData struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Book request/response structures
type CreateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Year        *int   `json:"year,omitempty"`
	Cover       string `json:"cover,omitempty"`
}

type UpdateBookRequest struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Description *string `json:"description,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	Year        *int    `json:"year,omitempty"`
	Cover       *string `json:"cover,omitempty"`
}

type BookResponse struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Author      string       `json:"author"`
	Description string       `json:"description,omitempty"`
	Genre       string       `json:"genre,omitempty"`
	Year        *int         `json:"year,omitempty"`
	Cover       string       `json:"cover,omitempty"`
	AddedBy     UserResponse `json:"addedBy"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type BookPage struct {
	Books      []BookResponse
	Page       int
	TotalPages int
}

type BookDetail struct {
	Book      BookResponse     `json:"book"`
	Reviews   []ReviewResponse `json:"reviews"`
	AvgRating float64          `json:"avgRating"`
}

// Review request/response structures
type CreateReviewRequest struct {
	BookID     string `json:"bookId"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText,omitempty"`
}

type UpdateReviewRequest struct {
	Rating     *int    `json:"rating,omitempty"`
	ReviewText *string `json:"reviewText,omitempty"`
}

type ReviewResponse struct {
	ID         string    `json:"_id"`
	BookID     string    `json:"bookId"`
	UserID     string    `json:"userId"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText,omitempty"`
	UserName   string    `json:"userName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// envelope mirrors the API's {success, data|message} response shape.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

// NewHTTPClient builds the gateway; token may be empty for public calls.
func NewHTTPClient(apiURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		token: token,
	}
}

// do performs a request and unwraps the response envelope. The bearer token
// is attached whenever the client carries one.
func (c *HTTPClient) do(method, path string, body any) (*envelope, error) {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() // Ensure the response body is closed

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("request failed with status: %s", resp.Status)
	}
	if !env.Success {
		if env.Message != "" {
			return nil, fmt.Errorf("%s", env.Message)
		}
		return nil, fmt.Errorf("request failed with status: %s", resp.Status)
	}
	return &env, nil
}

// Signup creates an account and returns the new user with its token.
func (c *HTTPClient) Signup(request *SignupRequest) (*SignupData, error) {
	env, err := c.do(http.MethodPost, "/auth/signup", request)
	if err != nil {
		return nil, err
	}
	var data SignupData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Login authenticates and returns the token with the user projection.
func (c *HTTPClient) Login(request *LoginRequest) (*LoginData, error) {
	env, err := c.do(http.MethodPost, "/auth/login", request)
	if err != nil {
		return nil, err
	}
	var data LoginData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Logout revokes the current token server-side.
func (c *HTTPClient) Logout() error {
	_, err := c.do(http.MethodPost, "/auth/logout", nil)
	return err
}

// ListBooks fetches a page of the public catalog.
func (c *HTTPClient) ListBooks(page, limit int) (*BookPage, error) {
	return c.bookPage(fmt.Sprintf("/books?page=%d&limit=%d", page, limit))
}

// MyBooks fetches a page of the caller's own books.
func (c *HTTPClient) MyBooks(page, limit int) (*BookPage, error) {
	return c.bookPage(fmt.Sprintf("/books/my?page=%d&limit=%d", page, limit))
}

func (c *HTTPClient) bookPage(path string) (*BookPage, error) {
	env, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var books []BookResponse
	if err := json.Unmarshal(env.Data, &books); err != nil {
		return nil, err
	}
	return &BookPage{Books: books, Page: env.Page, TotalPages: env.TotalPages}, nil
}

// GetBook fetches one book with its reviews and average rating.
func (c *HTTPClient) GetBook(id string) (*BookDetail, error) {
	env, err := c.do(http.MethodGet, "/books/"+id, nil)
	if err != nil {
		return nil, err
	}
	var detail BookDetail
	if err := json.Unmarshal(env.Data, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreateBook adds a book owned by the logged-in user.
func (c *HTTPClient) CreateBook(request *CreateBookRequest) (*BookResponse, error) {
	env, err := c.do(http.MethodPost, "/books", request)
	if err != nil {
		return nil, err
	}
	var book BookResponse
	if err := json.Unmarshal(env.Data, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook edits fields of a book owned by the logged-in user.
func (c *HTTPClient) UpdateBook(id string, request *UpdateBookRequest) (*BookResponse, error) {
	env, err := c.do(http.MethodPut, "/books/"+id, request)
	if err != nil {
		return nil, err
	}
	var book BookResponse
	if err := json.Unmarshal(env.Data, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteBook removes a book owned by the logged-in user.
func (c *HTTPClient) DeleteBook(id string) error {
	_, err := c.do(http.MethodDelete, "/books/"+id, nil)
	return err
}

// CreateReview submits a review as the logged-in user.
func (c *HTTPClient) CreateReview(request *CreateReviewRequest) (*ReviewResponse, error) {
	env, err := c.do(http.MethodPost, "/reviews", request)
	if err != nil {
		return nil, err
	}
	var review ReviewResponse
	if err := json.Unmarshal(env.Data, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview edits a review authored by the logged-in user.
func (c *HTTPClient) UpdateReview(id string, request *UpdateReviewRequest) (*ReviewResponse, error) {
	env, err := c.do(http.MethodPut, "/reviews/"+id, request)
	if err != nil {
		return nil, err
	}
	var review ReviewResponse
	if err := json.Unmarshal(env.Data, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview removes a review authored by the logged-in user.
func (c *HTTPClient) DeleteReview(id string) error {
	_, err := c.do(http.MethodDelete, "/reviews/"+id, nil)
	return err
}
