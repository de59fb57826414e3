//go:build e2e

// Package e2e exercises the assembled application over real HTTP against a
// containerized MongoDB.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	bookapp "github.com/shelfshare/shelfshare/internal/application/book"
	userapp "github.com/shelfshare/shelfshare/internal/application/user"
	"github.com/shelfshare/shelfshare/internal/domain/user"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
	httphandler "github.com/shelfshare/shelfshare/internal/handler/http"
	"github.com/shelfshare/shelfshare/internal/infrastructure/auth"
	"github.com/shelfshare/shelfshare/internal/infrastructure/httpserver"
	mongodbinfra "github.com/shelfshare/shelfshare/internal/infrastructure/mongodb"
	repository "github.com/shelfshare/shelfshare/internal/infrastructure/repository/mongodb"
	"github.com/shelfshare/shelfshare/internal/infrastructure/storage"
	"github.com/shelfshare/shelfshare/internal/middleware"
	"github.com/shelfshare/shelfshare/tests/testutil"
)

const (
	requestTimeout = 10 * time.Second
	tokenTTL       = time.Hour
	jwtSecret      = "e2e-test-secret"
)

// Suite holds the running application and a client pointed at it.
type Suite struct {
	t *testing.T

	BaseURL string
	Client  *http.Client

	db     *mongo.Database
	server *httptest.Server
}

type userLoader struct {
	repo *repository.MongoUserRepository
}

func (l *userLoader) LoadUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return l.repo.FindByID(ctx, id)
}

// newSuite wires repositories, use cases and handlers against an isolated
// test database and serves them from an httptest server.
func newSuite(t *testing.T) *Suite {
	t.Helper()

	db := testutil.SetupSharedTestMongoDB(t)
	logger := slog.New(slog.DiscardHandler)

	userRepo := repository.NewMongoUserRepository(db.Collection(mongodbinfra.CollectionUsers))
	bookRepo := repository.NewMongoBookRepository(db.Collection(mongodbinfra.CollectionBooks))

	uploadsDir := t.TempDir()
	files, err := storage.NewLocalStore(uploadsDir)
	require.NoError(t, err, "local store")

	tokens := auth.NewTokenService(jwtSecret, tokenTTL)
	hasher := auth.NewBcryptHasher(0)

	authHandler := httphandler.NewAuthHandler(
		userapp.NewRegisterUserUseCase(userRepo, hasher),
		userapp.NewLoginUserUseCase(userRepo, hasher),
		userapp.NewListUsersUseCase(userRepo),
		tokens,
	)
	bookHandler := httphandler.NewBookHandler(
		bookapp.NewUploadBookUseCase(bookRepo, files),
		bookapp.NewListBooksUseCase(bookRepo),
		bookapp.NewListByCategoryUseCase(bookRepo),
		bookapp.NewLikeBookUseCase(bookRepo),
		bookapp.NewUnlikeBookUseCase(bookRepo),
		bookapp.NewRecordDownloadUseCase(bookRepo),
		"",
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	routerConfig := httpserver.DefaultRouterConfig()
	routerConfig.Logger = logger
	routerConfig.AuthMiddleware = middleware.Auth(middleware.AuthConfig{
		Logger:        logger,
		TokenVerifier: tokens,
		UserLoader:    &userLoader{repo: userRepo},
	})
	routerConfig.UploadsDir = uploadsDir

	router := httpserver.NewRouter(e, routerConfig)
	authHandler.RegisterRoutes(router)
	bookHandler.RegisterRoutes(router)

	server := httptest.NewServer(router.Echo())
	t.Cleanup(server.Close)

	return &Suite{
		t:       t,
		BaseURL: server.URL,
		Client:  &http.Client{Timeout: requestTimeout},
		db:      db,
		server:  server,
	}
}

// PromoteToAdmin flips an account's role directly in the database. Signup
// never grants admin, so e2e admin flows bootstrap this way.
func (s *Suite) PromoteToAdmin(email string) {
	s.t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	coll := s.db.Collection(mongodbinfra.CollectionUsers)
	_, err := coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": "admin"}})
	require.NoError(s.t, err, "promote %s to admin", email)
}

// DoJSON sends a JSON request and decodes the response body into out when
// out is non-nil. An empty token omits the Authorization header.
func (s *Suite) DoJSON(method, path, token string, body, out any) int {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, s.BaseURL+path, reader)
	require.NoError(s.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client.Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(s.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// UploadBook sends a multipart upload with an inline file and cover.
func (s *Suite) UploadBook(token, title, category string) int {
	s.t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(s.t, writer.WriteField("title", title))
	require.NoError(s.t, writer.WriteField("category", category))

	part, err := writer.CreateFormFile("bookFile", title+".pdf")
	require.NoError(s.t, err)
	_, err = part.Write([]byte("pdf content of " + title))
	require.NoError(s.t, err)

	part, err = writer.CreateFormFile("bookCover", title+".jpg")
	require.NoError(s.t, err)
	_, err = part.Write([]byte("cover of " + title))
	require.NoError(s.t, err)
	require.NoError(s.t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, s.BaseURL+"/api/books/upload", &buf)
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client.Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode
}
