package httphandler

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	bookapp "github.com/shelfshare/shelfshare/internal/application/book"
	"github.com/shelfshare/shelfshare/internal/domain/book"
	"github.com/shelfshare/shelfshare/internal/domain/errs"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
	"github.com/shelfshare/shelfshare/internal/infrastructure/httpserver"
	"github.com/shelfshare/shelfshare/internal/middleware"
)

// Multipart field names for the upload form.
const (
	fieldBookFile  = "bookFile"
	fieldBookCover = "bookCover"
)

// BookResponse represents one entry of a book listing.
type BookResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	BookFile     string `json:"bookFile"`
	BookCover    string `json:"bookCover"`
	LikedByCount int    `json:"likedByCount"`
	LikedByUser  bool   `json:"likedByUser"`
	CreatedAt    string `json:"createdAt"`
}

// LikeResponse is the reply to like and unlike requests.
type LikeResponse struct {
	Message string   `json:"message"`
	LikedBy []string `json:"likedBy"`
}

// MessageResponse is a bare confirmation reply.
type MessageResponse struct {
	Message string `json:"message"`
}

// BookUploader stores a new book with its files.
// Declared on the consumer side per project guidelines.
type BookUploader interface {
	Execute(ctx context.Context, cmd bookapp.UploadBookCommand) (bookapp.Result, error)
}

// BookLister produces the annotated book listing.
type BookLister interface {
	Execute(ctx context.Context, query bookapp.ListBooksQuery) (bookapp.ListResult, error)
}

// CategoryLister produces the listing restricted to one category.
type CategoryLister interface {
	Execute(ctx context.Context, query bookapp.ListByCategoryQuery) (bookapp.ListResult, error)
}

// BookLiker adds a like to a book.
type BookLiker interface {
	Execute(ctx context.Context, cmd bookapp.LikeBookCommand) (bookapp.LikeResult, error)
}

// BookUnliker removes a like from a book.
type BookUnliker interface {
	Execute(ctx context.Context, cmd bookapp.UnlikeBookCommand) (bookapp.LikeResult, error)
}

// DownloadRecorder records one download event.
type DownloadRecorder interface {
	Execute(ctx context.Context, cmd bookapp.RecordDownloadCommand) error
}

// BookHandler handles book upload, listing, like and download routes.
type BookHandler struct {
	uploader   BookUploader
	lister     BookLister
	byCategory CategoryLister
	liker      BookLiker
	unliker    BookUnliker
	downloads  DownloadRecorder

	// baseURL overrides request-derived file URLs when set.
	baseURL string
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(
	uploader BookUploader,
	lister BookLister,
	byCategory CategoryLister,
	liker BookLiker,
	unliker BookUnliker,
	downloads DownloadRecorder,
	baseURL string,
) *BookHandler {
	return &BookHandler{
		uploader:   uploader,
		lister:     lister,
		byCategory: byCategory,
		liker:      liker,
		unliker:    unliker,
		downloads:  downloads,
		baseURL:    baseURL,
	}
}

// RegisterRoutes registers book routes with the router. Listings are public;
// every mutation requires a verified token.
func (h *BookHandler) RegisterRoutes(r *httpserver.Router) {
	r.Public().GET("/books", h.List)
	r.Public().GET("/books/category/:category", h.ListByCategory)

	r.Auth().POST("/books/upload", h.Upload)
	r.Auth().POST("/books/:id/like", h.Like)
	r.Auth().POST("/books/:id/unlike", h.Unlike)
	r.Auth().POST("/books/:id/download", h.Download)
}

// Upload handles POST /api/books/upload.
func (h *BookHandler) Upload(c echo.Context) error {
	cmd := bookapp.UploadBookCommand{
		Title:    c.FormValue("title"),
		Category: c.FormValue("category"),
	}

	bookFile, fileCloser, err := formFile(c, fieldBookFile)
	if err != nil {
		return httpserver.RespondErrorMessage(c, http.StatusBadRequest, "bookFile is required")
	}
	defer fileCloser()
	cmd.BookFile = bookFile

	bookCover, coverCloser, err := formFile(c, fieldBookCover)
	if err != nil {
		return httpserver.RespondErrorMessage(c, http.StatusBadRequest, "bookCover is required")
	}
	defer coverCloser()
	cmd.BookCover = bookCover

	if _, err = h.uploader.Execute(c.Request().Context(), cmd); err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondCreated(c, MessageResponse{Message: "Book uploaded successfully"})
}

// List handles GET /api/books. The optional userId query parameter drives
// the likedByUser annotation only; it is not an auth claim.
func (h *BookHandler) List(c echo.Context) error {
	filterUserID, err := parseOptionalUserID(c.QueryParam("userId"))
	if err != nil {
		return httpserver.RespondErrorMessage(c, http.StatusBadRequest, "invalid userId")
	}

	query := bookapp.ListBooksQuery{
		FilterUserID: filterUserID,
		BaseURL:      h.requestBaseURL(c),
	}

	result, err := h.lister.Execute(c.Request().Context(), query)
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, toBookResponses(result.Books))
}

// ListByCategory handles GET /api/books/category/:category.
func (h *BookHandler) ListByCategory(c echo.Context) error {
	filterUserID, err := parseOptionalUserID(c.QueryParam("userId"))
	if err != nil {
		return httpserver.RespondErrorMessage(c, http.StatusBadRequest, "invalid userId")
	}

	query := bookapp.ListByCategoryQuery{
		Category:     c.Param("category"),
		FilterUserID: filterUserID,
		BaseURL:      h.requestBaseURL(c),
	}

	result, err := h.byCategory.Execute(c.Request().Context(), query)
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, toBookResponses(result.Books))
}

// Like handles POST /api/books/:id/like. The acting user comes from the
// verified token, never from the request body.
func (h *BookHandler) Like(c echo.Context) error {
	bookID, err := parseBookID(c)
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	cmd := bookapp.LikeBookCommand{
		BookID: bookID,
		UserID: middleware.GetUserID(c),
	}

	result, err := h.liker.Execute(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, book.ErrAlreadyLiked) {
			return httpserver.RespondErrorMessage(c, http.StatusBadRequest, "book already liked")
		}
		return h.respondBookError(c, err)
	}

	return httpserver.RespondOK(c, LikeResponse{
		Message: "Book liked",
		LikedBy: likedByStrings(result.LikedBy),
	})
}

// Unlike handles POST /api/books/:id/unlike.
func (h *BookHandler) Unlike(c echo.Context) error {
	bookID, err := parseBookID(c)
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	cmd := bookapp.UnlikeBookCommand{
		BookID: bookID,
		UserID: middleware.GetUserID(c),
	}

	result, err := h.unliker.Execute(c.Request().Context(), cmd)
	if err != nil {
		return h.respondBookError(c, err)
	}

	return httpserver.RespondOK(c, LikeResponse{
		Message: "Book unliked",
		LikedBy: likedByStrings(result.LikedBy),
	})
}

// Download handles POST /api/books/:id/download.
func (h *BookHandler) Download(c echo.Context) error {
	bookID, err := parseBookID(c)
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	cmd := bookapp.RecordDownloadCommand{
		BookID: bookID,
		UserID: middleware.GetUserID(c),
	}

	if err = h.downloads.Execute(c.Request().Context(), cmd); err != nil {
		return h.respondBookError(c, err)
	}

	return httpserver.RespondOK(c, MessageResponse{Message: "Download recorded"})
}

func (h *BookHandler) respondBookError(c echo.Context, err error) error {
	if errors.Is(err, bookapp.ErrBookNotFound) {
		return httpserver.RespondErrorMessage(c, http.StatusNotFound, "book not found")
	}
	return httpserver.RespondError(c, err)
}

// requestBaseURL returns the configured public base URL, falling back to the
// scheme and host of the current request.
func (h *BookHandler) requestBaseURL(c echo.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	return c.Scheme() + "://" + c.Request().Host
}

// formFile opens one uploaded file and returns it as a command upload plus
// its closer.
func formFile(c echo.Context, field string) (bookapp.FileUpload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return bookapp.FileUpload{}, nil, err
	}

	f, err := header.Open()
	if err != nil {
		return bookapp.FileUpload{}, nil, err
	}

	return bookapp.FileUpload{Name: header.Filename, Content: f}, func() { closeQuietly(f) }, nil
}

func closeQuietly(f multipart.File) {
	_ = f.Close()
}

func parseBookID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.ParseUUID(c.Param("id"))
	if err != nil {
		return uuid.UUID(""), errs.ErrNotFound
	}
	return id, nil
}

func parseOptionalUserID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.UUID(""), nil
	}
	return uuid.ParseUUID(raw)
}

func toBookResponses(views []bookapp.View) []BookResponse {
	books := make([]BookResponse, 0, len(views))
	for _, v := range views {
		books = append(books, BookResponse{
			ID:           v.ID.String(),
			Title:        v.Title,
			Category:     v.Category,
			BookFile:     v.BookFileURL,
			BookCover:    v.BookCoverURL,
			LikedByCount: v.LikedByCount,
			LikedByUser:  v.LikedByUser,
			CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return books
}

func likedByStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
