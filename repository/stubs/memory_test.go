package stubs

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/emzola/bookcritic/data"
	"github.com/emzola/bookcritic/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMemoryDB_Books(t *testing.T) {
	db := NewMemoryDB()
	db.Seed()
	ctx := context.Background()

	books, err := db.GetAllBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 5)
	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, "Pride and Prejudice", books[0].Name)

	_, err = db.GetBook(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestMemoryDB_CreateReview(t *testing.T) {
	db := NewMemoryDB()
	ctx := context.Background()
	bookID := db.AddBook(data.Book{Name: "Dune", Rating: data.Rating{Buckets: [data.MaxStars]int64{2, 0, 1, 0, 0}}})

	review := &data.Review{BookID: bookID, Title: "t", Content: "c", Rating: 5, Username: "alice"}
	book, err := db.CreateReview(ctx, review)
	require.NoError(t, err)
	assert.Equal(t, int64(1), review.ID)
	assert.Equal(t, [data.MaxStars]int64{2, 0, 1, 0, 1}, book.Rating.Buckets)
	assert.Equal(t, int64(4), book.Rating.Count)
	assert.InDelta(t, 2.5, book.Rating.Average, 1e-9)

	_, err = db.CreateReview(ctx, &data.Review{BookID: bookID, Title: "t", Content: "c", Rating: 1, Username: "alice"})
	assert.ErrorIs(t, err, repository.ErrDuplicateRecord)

	after, err := db.GetBook(ctx, bookID)
	require.NoError(t, err)
	assert.Equal(t, book.Rating, after.Rating)

	_, err = db.CreateReview(ctx, &data.Review{BookID: 42, Title: "t", Content: "c", Rating: 1, Username: "alice"})
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestMemoryDB_ConcurrentDuplicates(t *testing.T) {
	db := NewMemoryDB()
	ctx := context.Background()
	bookID := db.AddBook(data.Book{Name: "Dune"})

	var created atomic.Int64
	var g errgroup.Group
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			_, err := db.CreateReview(ctx, &data.Review{BookID: bookID, Title: "t", Content: "c", Rating: 3, Username: "bob"})
			if err == nil {
				created.Add(1)
				return nil
			}
			if errors.Is(err, repository.ErrDuplicateRecord) {
				return nil
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int64(1), created.Load())

	book, err := db.GetBook(ctx, bookID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), book.Rating.Count)
}

func TestMemoryDB_ConcurrentLikes(t *testing.T) {
	db := NewMemoryDB()
	ctx := context.Background()
	bookID := db.AddBook(data.Book{Name: "Dune"})
	review := &data.Review{BookID: bookID, Title: "t", Content: "c", Rating: 3, Username: "carol"}
	_, err := db.CreateReview(ctx, review)
	require.NoError(t, err)

	const n = 100
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := db.IncrementReviewLikes(ctx, review.ID)
			return err
		})
	}
	require.NoError(t, g.Wait())

	likes, err := db.IncrementReviewLikes(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n+1), likes)

	_, err = db.IncrementReviewLikes(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestMemoryDB_UsersAndTokens(t *testing.T) {
	db := NewMemoryDB()
	ctx := context.Background()

	user := &data.User{Username: "dave", ProfilePicture: "https://example.com/dave.png"}
	require.NoError(t, user.Password.Set("pa55word!"))
	require.NoError(t, db.RegisterUser(ctx, user))
	assert.Equal(t, int64(1), user.ID)
	assert.ErrorIs(t, db.RegisterUser(ctx, &data.User{Username: "dave"}), repository.ErrDuplicateUsername)

	token, err := db.CreateNewToken(ctx, user.ID, time.Hour, data.ScopeAuthentication)
	require.NoError(t, err)
	got, err := db.GetUserForToken(ctx, data.ScopeAuthentication, token.Plaintext)
	require.NoError(t, err)
	assert.Equal(t, "dave", got.Username)

	expired, err := db.CreateNewToken(ctx, user.ID, -time.Minute, data.ScopeAuthentication)
	require.NoError(t, err)
	_, err = db.GetUserForToken(ctx, data.ScopeAuthentication, expired.Plaintext)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	require.NoError(t, db.DeleteAllTokensForUser(ctx, data.ScopeAuthentication, user.ID))
	_, err = db.GetUserForToken(ctx, data.ScopeAuthentication, token.Plaintext)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestMemoryDB_ReviewsForBook(t *testing.T) {
	db := NewMemoryDB()
	ctx := context.Background()
	bookID := db.AddBook(data.Book{Name: "Dune"})

	user := &data.User{Username: "erin", ProfilePicture: "https://example.com/erin.png"}
	require.NoError(t, user.Password.Set("pa55word!"))
	require.NoError(t, db.RegisterUser(ctx, user))

	for i, name := range []string{"erin", "frank"} {
		_, err := db.CreateReview(ctx, &data.Review{BookID: bookID, Title: fmt.Sprint(i), Content: "c", Rating: 4, Username: name})
		require.NoError(t, err)
	}

	reviews, err := db.GetAllReviewsForBook(ctx, bookID, "default.png")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "https://example.com/erin.png", reviews[0].ProfilePicture)
	assert.Equal(t, "default.png", reviews[1].ProfilePicture)

	none, err := db.GetAllReviewsForBook(ctx, 77, "default.png")
	require.NoError(t, err)
	assert.Empty(t, none)
}
