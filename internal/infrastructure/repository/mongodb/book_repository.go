package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	bookdomain "github.com/shelfshare/shelfshare/internal/domain/book"
	"github.com/shelfshare/shelfshare/internal/domain/errs"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

// MongoBookRepository implements bookapp.Repository on a books collection.
// Like, unlike and download writes are single atomic UpdateOne calls so that
// concurrent requests cannot duplicate set members or lose counter bumps.
type MongoBookRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// BookRepoOption configures MongoBookRepository.
type BookRepoOption func(*MongoBookRepository)

// WithBookRepoLogger sets the logger for the book repository.
func WithBookRepoLogger(logger *slog.Logger) BookRepoOption {
	return func(r *MongoBookRepository) {
		r.logger = logger
	}
}

// NewMongoBookRepository creates a new MongoDB book repository.
func NewMongoBookRepository(collection *mongo.Collection, opts ...BookRepoOption) *MongoBookRepository {
	r := &MongoBookRepository{
		collection: collection,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Save persists a book.
func (r *MongoBookRepository) Save(ctx context.Context, b *bookdomain.Book) error {
	if b == nil || b.ID().IsZero() {
		return errs.ErrInvalidInput
	}

	doc := bookToDocument(b)
	filter := bson.M{"book_id": b.ID().String()}
	update := bson.M{"$set": doc}

	_, err := r.collection.UpdateOne(ctx, filter, update, UpsertOptions())
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to save book",
			slog.String("book_id", b.ID().String()),
			slog.String("error", err.Error()),
		)
	}
	return HandleMongoError(err, "book")
}

// FindByID finds a book by ID.
func (r *MongoBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookdomain.Book, error) {
	if id.IsZero() {
		return nil, errs.ErrInvalidInput
	}

	filter := bson.M{"book_id": id.String()}
	var doc bookDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		return nil, HandleMongoError(err, "book")
	}

	return documentToBook(&doc)
}

// List returns all books, newest first.
func (r *MongoBookRepository) List(ctx context.Context) ([]*bookdomain.Book, error) {
	return r.list(ctx, bson.M{})
}

// ListByCategory returns books whose category matches exactly, newest first.
func (r *MongoBookRepository) ListByCategory(ctx context.Context, category string) ([]*bookdomain.Book, error) {
	return r.list(ctx, bson.M{"category": category})
}

func (r *MongoBookRepository) list(ctx context.Context, filter bson.M) ([]*bookdomain.Book, error) {
	cursor, err := r.collection.Find(ctx, filter, FindNewestFirst())
	if err != nil {
		return nil, HandleMongoError(err, "books")
	}

	return decodeAll(ctx, cursor, documentToBook)
}

// AddLike adds the user to the liked-by set. Adding a member that is already
// present is a store-level no-op.
func (r *MongoBookRepository) AddLike(ctx context.Context, bookID, userID uuid.UUID) error {
	update := bson.M{"$addToSet": bson.M{"liked_by": userID.String()}}
	return r.updateOne(ctx, bookID, update, "like")
}

// RemoveLike removes the user from the liked-by set. Removing a non-member
// succeeds without changes.
func (r *MongoBookRepository) RemoveLike(ctx context.Context, bookID, userID uuid.UUID) error {
	update := bson.M{"$pull": bson.M{"liked_by": userID.String()}}
	return r.updateOne(ctx, bookID, update, "unlike")
}

// RecordDownload adds the user to the downloaded-by set and increments the
// download counter. The counter grows on every call, membership at most once.
func (r *MongoBookRepository) RecordDownload(ctx context.Context, bookID, userID uuid.UUID) error {
	update := bson.M{
		"$addToSet": bson.M{"downloaded_by": userID.String()},
		"$inc":      bson.M{"download_count": 1},
	}
	return r.updateOne(ctx, bookID, update, "download")
}

func (r *MongoBookRepository) updateOne(ctx context.Context, bookID uuid.UUID, update bson.M, op string) error {
	if bookID.IsZero() {
		return errs.ErrInvalidInput
	}

	filter := bson.M{"book_id": bookID.String()}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to update book",
			slog.String("book_id", bookID.String()),
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
		return HandleMongoError(err, "book")
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

// bookDocument is the MongoDB shape of a book.
type bookDocument struct {
	BookID        string    `bson:"book_id"`
	Title         string    `bson:"title"`
	Category      string    `bson:"category"`
	BookFile      string    `bson:"book_file"`
	BookCover     string    `bson:"book_cover"`
	LikedBy       []string  `bson:"liked_by"`
	DownloadedBy  []string  `bson:"downloaded_by"`
	DownloadCount int64     `bson:"download_count"`
	CreatedAt     time.Time `bson:"created_at"`
}

func bookToDocument(b *bookdomain.Book) bookDocument {
	return bookDocument{
		BookID:        b.ID().String(),
		Title:         b.Title(),
		Category:      b.Category(),
		BookFile:      b.BookFile(),
		BookCover:     b.BookCover(),
		LikedBy:       uuidsToStrings(b.LikedBy()),
		DownloadedBy:  uuidsToStrings(b.DownloadedBy()),
		DownloadCount: b.DownloadCount(),
		CreatedAt:     b.CreatedAt(),
	}
}

func documentToBook(doc *bookDocument) (*bookdomain.Book, error) {
	id, err := uuid.ParseUUID(doc.BookID)
	if err != nil {
		return nil, errs.ErrInvalidInput
	}

	likedBy, err := stringsToUUIDs(doc.LikedBy)
	if err != nil {
		return nil, errs.ErrInvalidInput
	}

	downloadedBy, err := stringsToUUIDs(doc.DownloadedBy)
	if err != nil {
		return nil, errs.ErrInvalidInput
	}

	return bookdomain.Reconstruct(
		id,
		doc.Title,
		doc.Category,
		doc.BookFile,
		doc.BookCover,
		likedBy,
		downloadedBy,
		doc.DownloadCount,
		doc.CreatedAt,
	), nil
}

func uuidsToStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func stringsToUUIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.ParseUUID(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
