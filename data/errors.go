package data

import "errors"

// ErrInvalidStars is returned when a star rating falls outside 1..5.
var ErrInvalidStars = errors.New("star rating must be between 1 and 5")
