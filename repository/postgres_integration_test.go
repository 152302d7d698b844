//go:build integration

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/emzola/bookcritic/data"
	"github.com/emzola/bookcritic/repository/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgrestc "github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/sync/errgroup"
)

// setupTestDB starts a PostgreSQL container, applies the migrations and
// returns a repository backed by it.
func setupTestDB(t *testing.T) (*repository, *sql.DB) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := postgrestc.Run(ctx,
		"postgres:16-alpine",
		postgrestc.WithDatabase("bookcritic"),
		postgrestc.WithUsername("bookcritic"),
		postgrestc.WithPassword("bookcritic"),
		postgrestc.BasicWaitStrategies(),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(25)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.Migrate(ctx, db))
	return New(db), db
}

func insertBook(t *testing.T, db *sql.DB, buckets [data.MaxStars]int64) int64 {
	t.Helper()
	rating := data.NewRating(buckets)
	var id int64
	err := db.QueryRow(`
		INSERT INTO books (book_name, author_name, year_pub, rating_1, rating_2, rating_3, rating_4, rating_5, ratings_count, avg_rating)
		VALUES ('Test Book', 'Test Author', 2000, $1, $2, $3, $4, $5, $6, $7)
		RETURNING book_id`,
		buckets[0], buckets[1], buckets[2], buckets[3], buckets[4], rating.Count, rating.Average,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

type storedRating struct {
	buckets [data.MaxStars]int64
	count   int64
	average float64
}

func readStoredRating(t *testing.T, db *sql.DB, bookID int64) storedRating {
	t.Helper()
	var s storedRating
	err := db.QueryRow(`
		SELECT rating_1, rating_2, rating_3, rating_4, rating_5, ratings_count, avg_rating
		FROM books WHERE book_id = $1`, bookID,
	).Scan(&s.buckets[0], &s.buckets[1], &s.buckets[2], &s.buckets[3], &s.buckets[4], &s.count, &s.average)
	require.NoError(t, err)
	return s
}

func countReviews(t *testing.T, db *sql.DB, bookID int64) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM reviews WHERE book_id = $1`, bookID).Scan(&n))
	return n
}

func newReview(bookID int64, username string, stars int) *data.Review {
	return &data.Review{
		BookID:   bookID,
		Title:    "A title",
		Content:  "Some content",
		Rating:   stars,
		Username: username,
	}
}

func TestPostgres(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()

	t.Run("seeded books", func(t *testing.T) {
		books, err := repo.GetAllBooks(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(books), 5)
		for _, b := range books {
			assert.Zero(t, b.Rating.Count)
			assert.Zero(t, b.Rating.Average)
		}
	})

	t.Run("get unknown book", func(t *testing.T) {
		_, err := repo.GetBook(ctx, 1<<40)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("create review folds rating", func(t *testing.T) {
		bookID := insertBook(t, db, [data.MaxStars]int64{2, 0, 1, 0, 0})
		review := newReview(bookID, "alice", 5)

		book, err := repo.CreateReview(ctx, review)
		require.NoError(t, err)
		assert.NotZero(t, review.ID)
		assert.Zero(t, review.Likes)
		assert.Equal(t, [data.MaxStars]int64{2, 0, 1, 0, 1}, book.Rating.Buckets)
		assert.Equal(t, int64(4), book.Rating.Count)
		assert.InDelta(t, 2.5, book.Rating.Average, 1e-9)

		stored := readStoredRating(t, db, bookID)
		assert.Equal(t, book.Rating.Buckets, stored.buckets)
		assert.Equal(t, int64(4), stored.count)
		assert.InDelta(t, 2.5, stored.average, 1e-9)
	})

	t.Run("duplicate review leaves book untouched", func(t *testing.T) {
		bookID := insertBook(t, db, [data.MaxStars]int64{})
		_, err := repo.CreateReview(ctx, newReview(bookID, "bob", 4))
		require.NoError(t, err)
		before := readStoredRating(t, db, bookID)

		_, err = repo.CreateReview(ctx, newReview(bookID, "bob", 1))
		assert.ErrorIs(t, err, ErrDuplicateRecord)
		assert.Equal(t, before, readStoredRating(t, db, bookID))
		assert.Equal(t, 1, countReviews(t, db, bookID))
	})

	t.Run("review for unknown book", func(t *testing.T) {
		_, err := repo.CreateReview(ctx, newReview(1<<40, "carol", 3))
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("invalid stars never reach the store", func(t *testing.T) {
		bookID := insertBook(t, db, [data.MaxStars]int64{})
		_, err := repo.CreateReview(ctx, newReview(bookID, "dave", 6))
		assert.ErrorIs(t, err, data.ErrInvalidStars)
		assert.Zero(t, countReviews(t, db, bookID))
	})

	t.Run("concurrent duplicates yield one review", func(t *testing.T) {
		bookID := insertBook(t, db, [data.MaxStars]int64{})
		var created, duplicates atomic.Int64
		var g errgroup.Group
		for i := 0; i < 10; i++ {
			g.Go(func() error {
				_, err := repo.CreateReview(ctx, newReview(bookID, "eve", 3))
				switch {
				case err == nil:
					created.Add(1)
				case errors.Is(err, ErrDuplicateRecord):
					duplicates.Add(1)
				default:
					return err
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
		assert.Equal(t, int64(1), created.Load())
		assert.Equal(t, int64(9), duplicates.Load())

		stored := readStoredRating(t, db, bookID)
		assert.Equal(t, [data.MaxStars]int64{0, 0, 1, 0, 0}, stored.buckets)
		assert.Equal(t, int64(1), stored.count)
		assert.Equal(t, 1, countReviews(t, db, bookID))
	})

	t.Run("concurrent reviewers keep aggregate consistent", func(t *testing.T) {
		bookID := insertBook(t, db, [data.MaxStars]int64{})
		const n = 20
		var g errgroup.Group
		for i := 0; i < n; i++ {
			g.Go(func() error {
				_, err := repo.CreateReview(ctx, newReview(bookID, fmt.Sprintf("reader%02d", i), i%5+1))
				return err
			})
		}
		require.NoError(t, g.Wait())

		stored := readStoredRating(t, db, bookID)
		assert.Equal(t, [data.MaxStars]int64{4, 4, 4, 4, 4}, stored.buckets)
		assert.Equal(t, int64(n), stored.count)
		assert.InDelta(t, 3.0, stored.average, 1e-9)
	})

	t.Run("concurrent likes are not lost", func(t *testing.T) {
		bookID := insertBook(t, db, [data.MaxStars]int64{})
		review := newReview(bookID, "frank", 2)
		_, err := repo.CreateReview(ctx, review)
		require.NoError(t, err)

		likes, err := repo.IncrementReviewLikes(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), likes)

		const n = 50
		var g errgroup.Group
		for i := 0; i < n; i++ {
			g.Go(func() error {
				_, err := repo.IncrementReviewLikes(ctx, review.ID)
				return err
			})
		}
		require.NoError(t, g.Wait())

		reviews, err := repo.GetAllReviewsForBook(ctx, bookID, "default.png")
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, int64(1+n), reviews[0].Likes)
	})

	t.Run("like unknown review", func(t *testing.T) {
		_, err := repo.IncrementReviewLikes(ctx, 1<<40)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("users and tokens", func(t *testing.T) {
		user := &data.User{Username: "grace", ProfilePicture: "https://example.com/grace.png"}
		require.NoError(t, user.Password.Set("pa55word!"))
		require.NoError(t, repo.RegisterUser(ctx, user))
		assert.NotZero(t, user.ID)

		dup := &data.User{Username: "grace"}
		require.NoError(t, dup.Password.Set("another1"))
		assert.ErrorIs(t, repo.RegisterUser(ctx, dup), ErrDuplicateUsername)

		got, err := repo.GetUserByUsername(ctx, "grace")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		ok, err := got.Password.Matches("pa55word!")
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = repo.GetUserByID(ctx, 1<<40)
		assert.ErrorIs(t, err, ErrRecordNotFound)

		token, err := repo.CreateNewToken(ctx, user.ID, time.Hour, data.ScopeAuthentication)
		require.NoError(t, err)
		holder, err := repo.GetUserForToken(ctx, data.ScopeAuthentication, token.Plaintext)
		require.NoError(t, err)
		assert.Equal(t, "grace", holder.Username)

		require.NoError(t, repo.DeleteAllTokensForUser(ctx, data.ScopeAuthentication, user.ID))
		_, err = repo.GetUserForToken(ctx, data.ScopeAuthentication, token.Plaintext)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("reviews carry profile pictures", func(t *testing.T) {
		bookID := insertBook(t, db, [data.MaxStars]int64{})
		_, err := repo.CreateReview(ctx, newReview(bookID, "grace", 5))
		require.NoError(t, err)
		_, err = repo.CreateReview(ctx, newReview(bookID, "nobody", 1))
		require.NoError(t, err)

		reviews, err := repo.GetAllReviewsForBook(ctx, bookID, "default.png")
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, "https://example.com/grace.png", reviews[0].ProfilePicture)
		assert.Equal(t, "default.png", reviews[1].ProfilePicture)

		empty, err := repo.GetAllReviewsForBook(ctx, insertBook(t, db, [data.MaxStars]int64{}), "default.png")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}
