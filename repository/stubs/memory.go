// Package stubs provides an in-memory Repository for tests and for running the
// API without a database.
package stubs

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/emzola/bookcritic/data"
	"github.com/emzola/bookcritic/repository"
)

type reviewKey struct {
	bookID   int64
	username string
}

// MemoryDB is an in-memory implementation of repository.Repository. Every
// method holds one mutex for its whole body, which gives each call the same
// all-or-nothing behavior as a database transaction.
type MemoryDB struct {
	mu           sync.RWMutex
	books        map[int64]*data.Book
	reviews      map[int64]*data.Review
	reviewByKey  map[reviewKey]int64
	users        map[int64]*data.User
	userByName   map[string]int64
	tokens       []*data.Token
	nextBookID   int64
	nextReviewID int64
	nextUserID   int64
}

var _ repository.Repository = (*MemoryDB)(nil)

// NewMemoryDB creates an empty store.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		books:       make(map[int64]*data.Book),
		reviews:     make(map[int64]*data.Review),
		reviewByKey: make(map[reviewKey]int64),
		users:       make(map[int64]*data.User),
		userByName:  make(map[string]int64),
	}
}

// Seed adds the same starter catalogue the SQL migrations provision.
func (m *MemoryDB) Seed() {
	m.AddBook(data.Book{Name: "Pride and Prejudice", AuthorName: "Jane Austen", YearPublished: 1813, ImageURL: "/static/images/pride-and-prejudice.jpg"})
	m.AddBook(data.Book{Name: "Moby-Dick", AuthorName: "Herman Melville", YearPublished: 1851, ImageURL: "/static/images/moby-dick.jpg"})
	m.AddBook(data.Book{Name: "Crime and Punishment", AuthorName: "Fyodor Dostoevsky", YearPublished: 1866, ImageURL: "/static/images/crime-and-punishment.jpg"})
	m.AddBook(data.Book{Name: "The Great Gatsby", AuthorName: "F. Scott Fitzgerald", YearPublished: 1925, ImageURL: "/static/images/the-great-gatsby.jpg"})
	m.AddBook(data.Book{Name: "Nineteen Eighty-Four", AuthorName: "George Orwell", YearPublished: 1949, ImageURL: "/static/images/nineteen-eighty-four.jpg"})
}

// AddBook provisions a book and returns its ID. The derived rating fields are
// recomputed from the buckets.
func (m *MemoryDB) AddBook(book data.Book) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextBookID++
	book.ID = m.nextBookID
	book.Rating = data.NewRating(book.Rating.Buckets)
	m.books[book.ID] = &book
	return book.ID
}

func (m *MemoryDB) GetAllBooks(ctx context.Context) ([]*data.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	books := make([]*data.Book, 0, len(m.books))
	for _, b := range m.books {
		book := *b
		books = append(books, &book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

func (m *MemoryDB) GetBook(ctx context.Context, ID int64) (*data.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.books[ID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	book := *b
	return &book, nil
}

func (m *MemoryDB) CreateReview(ctx context.Context, review *data.Review) (*data.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !data.ValidStars(review.Rating) {
		return nil, data.ErrInvalidStars
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[review.BookID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	key := reviewKey{bookID: review.BookID, username: review.Username}
	if _, exists := m.reviewByKey[key]; exists {
		return nil, repository.ErrDuplicateRecord
	}
	next, err := b.Rating.Add(review.Rating)
	if err != nil {
		return nil, err
	}
	m.nextReviewID++
	review.ID = m.nextReviewID
	review.Likes = 0
	review.CreatedAt = time.Now().UTC().Truncate(time.Second)
	stored := *review
	stored.ProfilePicture = ""
	m.reviews[stored.ID] = &stored
	m.reviewByKey[key] = stored.ID
	b.Rating = next
	book := *b
	return &book, nil
}

func (m *MemoryDB) GetAllReviewsForBook(ctx context.Context, bookID int64, defaultPicture string) ([]*data.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	reviews := []*data.Review{}
	for _, r := range m.reviews {
		if r.BookID != bookID {
			continue
		}
		review := *r
		review.ProfilePicture = defaultPicture
		if id, ok := m.userByName[r.Username]; ok && m.users[id].ProfilePicture != "" {
			review.ProfilePicture = m.users[id].ProfilePicture
		}
		reviews = append(reviews, &review)
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews, nil
}

func (m *MemoryDB) IncrementReviewLikes(ctx context.Context, reviewID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reviews[reviewID]
	if !ok {
		return 0, repository.ErrRecordNotFound
	}
	r.Likes++
	return r.Likes, nil
}

func (m *MemoryDB) RegisterUser(ctx context.Context, user *data.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.userByName[user.Username]; exists {
		return repository.ErrDuplicateUsername
	}
	m.nextUserID++
	user.ID = m.nextUserID
	user.CreatedAt = time.Now().UTC().Truncate(time.Second)
	stored := *user
	stored.Password.Plaintext = nil
	m.users[stored.ID] = &stored
	m.userByName[stored.Username] = stored.ID
	return nil
}

func (m *MemoryDB) GetUserByID(ctx context.Context, ID int64) (*data.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[ID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	user := *u
	return &user, nil
}

func (m *MemoryDB) GetUserByUsername(ctx context.Context, username string) (*data.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.userByName[username]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	user := *m.users[id]
	return &user, nil
}

func (m *MemoryDB) GetUserForToken(ctx context.Context, tokenScope string, tokenPlaintext string) (*data.User, error) {
	hash := data.HashToken(tokenPlaintext)
	now := time.Now()
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.tokens {
		if t.Scope == tokenScope && bytes.Equal(t.Hash, hash) && t.Expiry.After(now) {
			u, ok := m.users[t.UserID]
			if !ok {
				break
			}
			user := *u
			return &user, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (m *MemoryDB) CreateNewToken(ctx context.Context, userID int64, ttl time.Duration, scope string) (*data.Token, error) {
	token, err := data.GenerateToken(userID, ttl, scope)
	if err != nil {
		return nil, err
	}
	stored := *token
	stored.Plaintext = ""
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = append(m.tokens, &stored)
	return token, nil
}

func (m *MemoryDB) DeleteAllTokensForUser(ctx context.Context, scope string, userID int64) error {
	if userID < 1 {
		return repository.ErrRecordNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.tokens[:0]
	for _, t := range m.tokens {
		if t.Scope == scope && t.UserID == userID {
			continue
		}
		kept = append(kept, t)
	}
	m.tokens = kept
	return nil
}
