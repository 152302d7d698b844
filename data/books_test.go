package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	tests := []struct {
		name    string
		buckets [MaxStars]int64
		count   int64
		average float64
	}{
		{name: "empty", buckets: [MaxStars]int64{}, count: 0, average: 0},
		{name: "single five", buckets: [MaxStars]int64{0, 0, 0, 0, 1}, count: 1, average: 5},
		{name: "mixed", buckets: [MaxStars]int64{2, 0, 1, 0, 0}, count: 3, average: 5.0 / 3.0},
		{name: "uniform", buckets: [MaxStars]int64{1, 1, 1, 1, 1}, count: 5, average: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRating(tt.buckets)
			assert.Equal(t, tt.buckets, r.Buckets)
			assert.Equal(t, tt.count, r.Count)
			assert.InDelta(t, tt.average, r.Average, 1e-9)
		})
	}
}

func TestRatingAdd(t *testing.T) {
	start := NewRating([MaxStars]int64{2, 0, 1, 0, 0})

	next, err := start.Add(5)
	require.NoError(t, err)
	assert.Equal(t, [MaxStars]int64{2, 0, 1, 0, 1}, next.Buckets)
	assert.Equal(t, int64(4), next.Count)
	assert.InDelta(t, 2.5, next.Average, 1e-9)

	assert.Equal(t, [MaxStars]int64{2, 0, 1, 0, 0}, start.Buckets, "receiver must not change")
}

func TestRatingAddEveryStar(t *testing.T) {
	for stars := MinStars; stars <= MaxStars; stars++ {
		before := NewRating([MaxStars]int64{3, 1, 4, 1, 5})
		after, err := before.Add(stars)
		require.NoError(t, err)

		for i := range after.Buckets {
			want := before.Buckets[i]
			if i == stars-1 {
				want++
			}
			assert.Equal(t, want, after.Buckets[i])
		}
		assert.Equal(t, before.Count+1, after.Count)

		var sum, weighted int64
		for i, n := range after.Buckets {
			sum += n
			weighted += int64(i+1) * n
		}
		assert.Equal(t, sum, after.Count)
		assert.InDelta(t, float64(weighted)/float64(sum), after.Average, 1e-9)
	}
}

func TestRatingAddRejectsOutOfRange(t *testing.T) {
	start := NewRating([MaxStars]int64{1, 0, 0, 0, 0})
	for _, stars := range []int{-1, 0, 6, 100} {
		got, err := start.Add(stars)
		assert.ErrorIs(t, err, ErrInvalidStars)
		assert.Equal(t, start, got)
	}
}
