// Package profile resolves whether the connected merchant finished onboarding.
package profile

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/domain"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Fetcher is the profile service
type Fetcher interface {
	GetMerchantProfile(ctx context.Context, account domain.Account) (*domain.MerchantProfile, error)
}

// State of the most recently issued resolve
type State int

const (
	StateUnresolved State = iota
	StateLoading
	StateAbsent   // backend has no profile for the account
	StateResolved // profile fetched
	StateFailed   // fetch failed; treated as not completed
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateLoading:
		return "loading"
	case StateAbsent:
		return "absent"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request identifies one resolve attempt
type Request struct {
	Generation uint64
	Account    domain.Account
}

// Result is the outcome of Fetch, applied with Apply
type Result struct {
	Request
	Profile *domain.MerchantProfile
	Err     error
}

const cachePrefix = "profile:v1:"

// Gate caches the merchant profile per account and answers the onboarding question.
// Begin and Apply must be called from the event loop; Fetch may run anywhere.
type Gate struct {
	fetcher Fetcher
	cache   *gocache.Cache
	log     *zap.Logger

	generation uint64
	account    domain.Account
	state      State
	err        error
}

// NewGate creates a gate whose cached profiles expire after ttl
func NewGate(fetcher Fetcher, ttl time.Duration, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &Gate{
		fetcher: fetcher,
		cache:   gocache.New(ttl, 10*time.Minute),
		log:     log,
	}
}

// Begin starts a new resolve for account. Any earlier in-flight result becomes stale.
func (g *Gate) Begin(account domain.Account) Request {
	g.generation++
	if account != g.account {
		g.cache.Flush()
	}
	g.account = account
	g.state = StateLoading
	g.err = nil
	return Request{Generation: g.generation, Account: account}
}

// Fetch calls the profile service. It does not touch gate state.
func (g *Gate) Fetch(ctx context.Context, req Request) Result {
	res := Result{Request: req}
	p, err := g.fetcher.GetMerchantProfile(ctx, req.Account)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		// absent profile: not an error, onboarding required
	case err != nil:
		res.Err = domain.Kind(err, domain.ErrProfileFetchFailed, "get merchant profile")
	default:
		res.Profile = p
	}
	return res
}

// Apply records a fetch result. Results from superseded requests are dropped and false is returned.
func (g *Gate) Apply(res Result) bool {
	if res.Generation != g.generation || res.Account != g.account {
		g.log.Debug("discarding stale profile response",
			zap.Uint64("generation", res.Generation),
			zap.Uint64("current", g.generation))
		return false
	}

	key := cachePrefix + string(res.Account)
	switch {
	case res.Err != nil:
		g.state = StateFailed
		g.err = res.Err
		g.cache.Delete(key)
		g.log.Warn("merchant profile unavailable, treating onboarding as incomplete",
			zap.String("account", res.Account.String()),
			zap.Error(res.Err))
	case res.Profile == nil:
		g.state = StateAbsent
		g.cache.Delete(key)
	default:
		g.state = StateResolved
		p := *res.Profile
		g.cache.Set(key, &p, gocache.DefaultExpiration)
	}
	return true
}

// Resolve fetches the profile for account and applies it in one step.
func (g *Gate) Resolve(ctx context.Context, account domain.Account) (*domain.MerchantProfile, error) {
	if account.IsZero() {
		return nil, domain.ErrNoSession
	}
	res := g.Fetch(ctx, g.Begin(account))
	g.Apply(res)
	return res.Profile, res.Err
}

// Profile returns the cached profile of the current account, or nil.
func (g *Gate) Profile() *domain.MerchantProfile {
	if g.account.IsZero() {
		return nil
	}
	v, ok := g.cache.Get(cachePrefix + string(g.account))
	if !ok {
		return nil
	}
	return v.(*domain.MerchantProfile)
}

// Completed reports whether profile-gated actions are allowed. Anything short of a
// fetched, completed profile (loading, failed, absent, expired) counts as not completed.
func (g *Gate) Completed() bool {
	if g.state != StateResolved {
		return false
	}
	p := g.Profile()
	return p != nil && p.ProfileCompleted
}

// OnboardingRequired is raised when the backend says the profile is missing or incomplete.
// A failed fetch does not raise it.
func (g *Gate) OnboardingRequired() bool {
	switch g.state {
	case StateAbsent:
		return true
	case StateResolved:
		p := g.Profile()
		return p != nil && !p.ProfileCompleted
	}
	return false
}

func (g *Gate) State() State { return g.state }

// Err is the last fetch failure, if the latest resolve failed
func (g *Gate) Err() error { return g.err }

// Account the gate currently resolves for
func (g *Gate) Account() domain.Account { return g.account }

// Reset drops every cached profile and invalidates in-flight requests.
func (g *Gate) Reset() {
	g.generation++
	g.account = ""
	g.state = StateUnresolved
	g.err = nil
	g.cache.Flush()
}
