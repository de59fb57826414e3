package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	bookapp "github.com/shelfshare/shelfshare/internal/application/book"
	userapp "github.com/shelfshare/shelfshare/internal/application/user"
	"github.com/shelfshare/shelfshare/internal/config"
	"github.com/shelfshare/shelfshare/internal/domain/user"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
	httphandler "github.com/shelfshare/shelfshare/internal/handler/http"
	"github.com/shelfshare/shelfshare/internal/infrastructure/auth"
	"github.com/shelfshare/shelfshare/internal/infrastructure/httpserver"
	"github.com/shelfshare/shelfshare/internal/infrastructure/metrics"
	mongodbinfra "github.com/shelfshare/shelfshare/internal/infrastructure/mongodb"
	"github.com/shelfshare/shelfshare/internal/infrastructure/repository/mongodb"
	"github.com/shelfshare/shelfshare/internal/infrastructure/storage"
)

const healthPingTimeout = 2 * time.Second

// Container wires configuration, infrastructure, use cases and handlers.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Infrastructure
	MongoDB     *mongo.Client
	MongoDBName string
	Tokens      *auth.TokenService
	Hasher      *auth.BcryptHasher
	Files       *storage.LocalStore
	HTTPMetrics *metrics.HTTPMetrics

	// Repositories
	UserRepo *mongodb.MongoUserRepository
	BookRepo *mongodb.MongoBookRepository

	// Use cases
	RegisterUser   *userapp.RegisterUserUseCase
	LoginUser      *userapp.LoginUserUseCase
	ListUsers      *userapp.ListUsersUseCase
	GetUser        *userapp.GetUserUseCase
	UploadBook     *bookapp.UploadBookUseCase
	ListBooks      *bookapp.ListBooksUseCase
	ListByCategory *bookapp.ListByCategoryUseCase
	LikeBook       *bookapp.LikeBookUseCase
	UnlikeBook     *bookapp.UnlikeBookUseCase
	RecordDownload *bookapp.RecordDownloadUseCase

	// Handlers
	AuthHandler *httphandler.AuthHandler
	BookHandler *httphandler.BookHandler
}

// ContainerOption configures the container.
type ContainerOption func(*Container)

// WithLogger sets the container logger.
func WithLogger(logger *slog.Logger) ContainerOption {
	return func(c *Container) {
		c.Logger = logger
	}
}

// NewContainer builds the DI container from configuration.
func NewContainer(cfg *config.Config, opts ...ContainerOption) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	ctx := context.Background()

	if err := c.setupMongoDB(ctx); err != nil {
		return nil, fmt.Errorf("mongodb: %w", err)
	}

	if err := c.setupStorage(); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	c.setupAuth()
	c.setupRepositories()
	c.setupUseCases()
	c.setupHandlers()

	c.HTTPMetrics = metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	return c, nil
}

// setupMongoDB initializes the MongoDB client, verifies connectivity and
// provisions indexes.
func (c *Container) setupMongoDB(ctx context.Context) error {
	clientOpts := options.Client().
		ApplyURI(c.Config.MongoDB.URI).
		SetMaxPoolSize(c.Config.MongoDB.MaxPoolSize)

	client, connectErr := mongo.Connect(clientOpts)
	if connectErr != nil {
		return fmt.Errorf("failed to connect: %w", connectErr)
	}

	pingCtx, cancel := context.WithTimeout(ctx, c.Config.MongoDB.Timeout)
	defer cancel()

	if pingErr := client.Ping(pingCtx, nil); pingErr != nil {
		return fmt.Errorf("failed to ping: %w", pingErr)
	}

	c.MongoDB = client
	c.MongoDBName = c.Config.MongoDB.Database

	c.Logger.InfoContext(ctx, "connected to MongoDB",
		slog.String("database", c.Config.MongoDB.Database),
	)

	db := client.Database(c.Config.MongoDB.Database)
	indexCtx, indexCancel := context.WithTimeout(ctx, c.Config.MongoDB.Timeout)
	defer indexCancel()

	if indexErr := mongodbinfra.CreateAllIndexes(indexCtx, db); indexErr != nil {
		return fmt.Errorf("failed to create indexes: %w", indexErr)
	}

	c.Logger.InfoContext(ctx, "MongoDB indexes created successfully")

	return nil
}

// setupStorage provisions the uploads directory tree.
func (c *Container) setupStorage() error {
	files, err := storage.NewLocalStore(c.Config.Storage.UploadsDir)
	if err != nil {
		return err
	}
	c.Files = files

	c.Logger.Debug("upload storage initialized",
		slog.String("dir", c.Config.Storage.UploadsDir),
	)
	return nil
}

// setupAuth initializes the token service and password hasher.
func (c *Container) setupAuth() {
	c.Tokens = auth.NewTokenService(c.Config.Auth.JWTSecret, c.Config.Auth.TokenTTL)
	c.Hasher = auth.NewBcryptHasher(0)
}

// setupRepositories initializes the MongoDB repositories.
func (c *Container) setupRepositories() {
	db := c.MongoDB.Database(c.MongoDBName)

	c.UserRepo = mongodb.NewMongoUserRepository(
		db.Collection(mongodbinfra.CollectionUsers),
		mongodb.WithUserRepoLogger(c.Logger),
	)
	c.BookRepo = mongodb.NewMongoBookRepository(
		db.Collection(mongodbinfra.CollectionBooks),
		mongodb.WithBookRepoLogger(c.Logger),
	)
}

// setupUseCases initializes the application layer.
func (c *Container) setupUseCases() {
	c.RegisterUser = userapp.NewRegisterUserUseCase(c.UserRepo, c.Hasher)
	c.LoginUser = userapp.NewLoginUserUseCase(c.UserRepo, c.Hasher)
	c.ListUsers = userapp.NewListUsersUseCase(c.UserRepo)
	c.GetUser = userapp.NewGetUserUseCase(c.UserRepo)

	c.UploadBook = bookapp.NewUploadBookUseCase(c.BookRepo, c.Files)
	c.ListBooks = bookapp.NewListBooksUseCase(c.BookRepo)
	c.ListByCategory = bookapp.NewListByCategoryUseCase(c.BookRepo)
	c.LikeBook = bookapp.NewLikeBookUseCase(c.BookRepo)
	c.UnlikeBook = bookapp.NewUnlikeBookUseCase(c.BookRepo)
	c.RecordDownload = bookapp.NewRecordDownloadUseCase(c.BookRepo)
}

// setupHandlers initializes the HTTP handlers.
func (c *Container) setupHandlers() {
	c.AuthHandler = httphandler.NewAuthHandler(
		c.RegisterUser,
		c.LoginUser,
		c.ListUsers,
		c.Tokens,
	)
	c.BookHandler = httphandler.NewBookHandler(
		c.UploadBook,
		c.ListBooks,
		c.ListByCategory,
		c.LikeBook,
		c.UnlikeBook,
		c.RecordDownload,
		c.Config.Storage.BaseURL,
	)
}

// UserLoader adapts the user repository to the auth middleware.
func (c *Container) UserLoader() *repositoryUserLoader {
	return &repositoryUserLoader{repo: c.UserRepo}
}

type repositoryUserLoader struct {
	repo *mongodb.MongoUserRepository
}

func (l *repositoryUserLoader) LoadUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return l.repo.FindByID(ctx, id)
}

// IsReady implements httpserver.HealthChecker.
func (c *Container) IsReady(ctx context.Context) bool {
	for _, comp := range c.GetHealthStatus(ctx) {
		if comp.Status != httpserver.StatusHealthy {
			return false
		}
	}
	return true
}

// GetHealthStatus implements httpserver.HealthChecker.
func (c *Container) GetHealthStatus(ctx context.Context) []httpserver.ComponentStatus {
	status := httpserver.ComponentStatus{
		Name:   "mongodb",
		Status: httpserver.StatusHealthy,
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := c.MongoDB.Ping(pingCtx, nil); err != nil {
		status.Status = httpserver.StatusUnhealthy
		status.Message = err.Error()
	}

	return []httpserver.ComponentStatus{status}
}

// Close releases container resources.
func (c *Container) Close() error {
	if c.MongoDB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), c.Config.MongoDB.Timeout)
		defer cancel()

		if err := c.MongoDB.Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to disconnect mongodb: %w", err)
		}
	}
	return nil
}
