package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ----- Types for the database -----

// ReviewDb is a single user review embedded in a book document.
// A book never holds two reviews from the same user.
type ReviewDb struct {
	UserId string `json:"userId" bson:"userId"`
	Review string `json:"review" bson:"review"`
	Rating int    `json:"rating" bson:"rating"`
}

// BookDb stores the reviews array together with its running totals.
// The three fields are only ever written as a unit through
// PersistBookAggregate, keyed on Version, so readers never observe a
// collection that disagrees with its totals.
type BookDb struct {
	Id           string     `json:"id" bson:"_id"`
	Title        string     `json:"title" bson:"title"`
	Author       string     `json:"author" bson:"author"`
	Reviews      []ReviewDb `json:"reviews" bson:"reviews"`
	TotalRating  int        `json:"totalRating" bson:"totalRating"`
	TotalReviews int        `json:"totalReviews" bson:"totalReviews"`
	Version      int64      `json:"version" bson:"version"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

func (db *DB) AddBook(ctx context.Context, book BookDb) (BookDb, error) {
	coll := db.Collection(BooksCollection)

	book.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now
	if book.Reviews == nil {
		book.Reviews = []ReviewDb{}
	}

	if _, err := coll.InsertOne(ctx, book); err != nil {
		return BookDb{}, err
	}

	return book, nil
}

func (db *DB) GetBookById(ctx context.Context, bookId string) (BookDb, error) {
	coll := db.Collection(BooksCollection)

	var book BookDb
	if err := coll.FindOne(ctx, bson.M{"_id": bookId}).Decode(&book); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return BookDb{}, ErrRecordNotFound
		}
		return BookDb{}, err
	}

	return book, nil
}

func (db *DB) GetBookByTitleAndAuthor(ctx context.Context, title, author string) (BookDb, error) {
	coll := db.Collection(BooksCollection)

	var book BookDb
	err := coll.FindOne(ctx, bson.M{"title": title, "author": author}).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return BookDb{}, ErrRecordNotFound
		}
		return BookDb{}, err
	}

	return book, nil
}

// GetBooksInRange returns books whose ids fall in [startId, endId]. Object ids
// are time-ordered hex strings, so a lexicographic range follows insertion order.
// Empty bounds are open on that side.
func (db *DB) GetBooksInRange(ctx context.Context, startId, endId string) ([]BookDb, error) {
	coll := db.Collection(BooksCollection)

	idFilter := bson.M{}
	if startId != "" {
		idFilter["$gte"] = startId
	}
	if endId != "" {
		idFilter["$lte"] = endId
	}
	filter := bson.M{}
	if len(idFilter) > 0 {
		filter["_id"] = idFilter
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return []BookDb{}, err
	}
	defer cursor.Close(ctx)

	var books []BookDb
	if err := cursor.All(ctx, &books); err != nil {
		return []BookDb{}, err
	}

	return books, nil
}

// SearchBooks matches the query as a case-insensitive substring of title or author.
func (db *DB) SearchBooks(ctx context.Context, query string) ([]BookDb, error) {
	coll := db.Collection(BooksCollection)

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"$or": []bson.M{
			{"title": pattern},
			{"author": pattern},
		},
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return []BookDb{}, err
	}
	defer cursor.Close(ctx)

	var books []BookDb
	if err := cursor.All(ctx, &books); err != nil {
		return []BookDb{}, err
	}

	return books, nil
}

// PersistBookAggregate replaces a book's (reviews, totalRating, totalReviews)
// triple in one write, guarded by the version the caller loaded. When another
// writer committed first the filter matches nothing and ErrVersionConflict is
// returned so the caller can redo its load-compute-persist sequence.
func (db *DB) PersistBookAggregate(ctx context.Context, bookId string, version int64, reviews []ReviewDb, totalRating, totalReviews int) error {
	coll := db.Collection(BooksCollection)

	if reviews == nil {
		reviews = []ReviewDb{}
	}

	filter := bson.M{"_id": bookId, "version": version}
	update := bson.M{
		"$set": bson.M{
			"reviews":      reviews,
			"totalRating":  totalRating,
			"totalReviews": totalReviews,
			"updatedAt":    time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		// Either the book vanished or the version moved. Tell them apart so
		// delete-vs-conflict surfaces with the right status.
		n, err := coll.CountDocuments(ctx, bson.M{"_id": bookId})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrRecordNotFound
		}
		return ErrVersionConflict
	}

	return nil
}
