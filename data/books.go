package data

// Book defines a book model. Books are provisioned out of band; the only
// field this service writes is Rating.
type Book struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	AuthorName    string `json:"author_name"`
	YearPublished int32  `json:"year_published,omitempty"`
	Rating        Rating `json:"rating"`
	ImageURL      string `json:"image_url,omitempty"`
}

// MinStars and MaxStars bound a review's star rating.
const (
	MinStars = 1
	MaxStars = 5
)

// Rating is a book's star histogram together with the values derived from it.
// Buckets[i] holds the number of reviews rated i+1 stars.
type Rating struct {
	Buckets [MaxStars]int64 `json:"buckets"`
	Count   int64           `json:"count"`
	Average float64         `json:"average"`
}

// NewRating builds a Rating from a histogram, computing Count and Average from
// the buckets. Average is 0 when there are no ratings.
func NewRating(buckets [MaxStars]int64) Rating {
	r := Rating{Buckets: buckets}
	var weighted int64
	for i, n := range buckets {
		r.Count += n
		weighted += int64(i+1) * n
	}
	if r.Count > 0 {
		r.Average = float64(weighted) / float64(r.Count)
	}
	return r
}

// Add returns the rating that results from folding one more review of stars
// into r. The receiver is left unchanged.
func (r Rating) Add(stars int) (Rating, error) {
	if !ValidStars(stars) {
		return r, ErrInvalidStars
	}
	buckets := r.Buckets
	buckets[stars-1]++
	return NewRating(buckets), nil
}

// ValidStars reports whether stars is an allowed star rating.
func ValidStars(stars int) bool {
	return stars >= MinStars && stars <= MaxStars
}
