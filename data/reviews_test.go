package data

import (
	"strings"
	"testing"

	"github.com/emzola/bookcritic/internal/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateReview(t *testing.T) {
	valid := func() *Review {
		return &Review{BookID: 1, Title: "Great", Content: "Loved it", Rating: 4, Username: "reader"}
	}

	tests := []struct {
		name   string
		modify func(r *Review)
		field  string
	}{
		{name: "valid"},
		{name: "blank title", modify: func(r *Review) { r.Title = "   " }, field: "title"},
		{name: "long title", modify: func(r *Review) { r.Title = strings.Repeat("t", 256) }, field: "title"},
		{name: "blank content", modify: func(r *Review) { r.Content = "\n\t" }, field: "content"},
		{name: "long content", modify: func(r *Review) { r.Content = strings.Repeat("c", 10001) }, field: "content"},
		{name: "zero stars", modify: func(r *Review) { r.Rating = 0 }, field: "rating"},
		{name: "six stars", modify: func(r *Review) { r.Rating = 6 }, field: "rating"},
		{name: "no reviewer", modify: func(r *Review) { r.Username = "" }, field: "username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			if tt.modify != nil {
				tt.modify(r)
			}
			v := validator.New()
			ValidateReview(v, r)
			if tt.field == "" {
				assert.True(t, v.Valid())
				return
			}
			assert.Len(t, v.Errors, 1)
			assert.Contains(t, v.Errors, tt.field)
		})
	}
}
