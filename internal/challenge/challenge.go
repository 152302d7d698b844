// Package challenge implements a single-use human-verification gate. A client
// asks for a challenge, shows the prompt to the reader and sends the answer back
// together with the token.
package challenge

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
)

// DefaultTTL is how long an unanswered challenge stays valid.
const DefaultTTL = 10 * time.Minute

// Verifier issues arithmetic challenges and checks answers against them.
type Verifier struct {
	mu    sync.Mutex
	cache *ttlcache.Cache[string, string]
	intn  func(n int) int
}

// New returns a Verifier whose challenges expire after ttl.
func New(ttl time.Duration) *Verifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	cache := ttlcache.New(
		ttlcache.WithTTL[string, string](ttl),
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	go cache.Start()
	return &Verifier{cache: cache, intn: rand.IntN}
}

// Create stores a new challenge and returns its token and prompt.
func (v *Verifier) Create() (token, prompt string) {
	a, b := v.intn(10)+1, v.intn(10)+1
	token = uuid.NewString()
	v.cache.Set(token, strconv.Itoa(a+b), ttlcache.DefaultTTL)
	return token, fmt.Sprintf("What is %d + %d?", a, b)
}

// Verify reports whether answer solves the challenge identified by token. The
// challenge is consumed whatever the outcome, so a token can be tried once.
func (v *Verifier) Verify(token, answer string) bool {
	if token == "" {
		return false
	}
	v.mu.Lock()
	item := v.cache.Get(token)
	v.cache.Delete(token)
	v.mu.Unlock()

	if item == nil || item.IsExpired() {
		return false
	}
	return strings.TrimSpace(answer) == item.Value()
}

// Pending returns the number of challenges that have not been answered yet.
func (v *Verifier) Pending() int {
	return v.cache.Len()
}

// Stop halts the background expiry loop.
func (v *Verifier) Stop() {
	v.cache.Stop()
}
