package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordReviewSubmission(t *testing.T) {
	before := testutil.ToFloat64(ReviewSubmissionsTotal.WithLabelValues(OutcomeDuplicate))
	RecordReviewSubmission(OutcomeDuplicate)
	assert.Equal(t, before+1, testutil.ToFloat64(ReviewSubmissionsTotal.WithLabelValues(OutcomeDuplicate)))
}

func TestRecordLike(t *testing.T) {
	before := testutil.ToFloat64(ReviewLikesTotal)
	RecordLike()
	RecordLike()
	assert.Equal(t, before+2, testutil.ToFloat64(ReviewLikesTotal))
}

func TestRecordChallenge(t *testing.T) {
	passed := testutil.ToFloat64(ChallengesTotal.WithLabelValues("passed"))
	failed := testutil.ToFloat64(ChallengesTotal.WithLabelValues("failed"))
	RecordChallenge(true)
	RecordChallenge(false)
	assert.Equal(t, passed+1, testutil.ToFloat64(ChallengesTotal.WithLabelValues("passed")))
	assert.Equal(t, failed+1, testutil.ToFloat64(ChallengesTotal.WithLabelValues("failed")))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "200"))
	RecordHTTPRequest("GET", 200, 15*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "200")))
}
