package usecase

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/domain/entity"
)

// BackendCheck is the support result of one wake-lock backend.
type BackendCheck struct {
	Name      string
	Supported bool
}

// FeedCheck is the freshness result of the finance feed.
type FeedCheck struct {
	Location  string
	Loaded    bool
	Error     string
	Items     int
	UpdatedAt time.Time
	Status    string
	Stale     bool
}

// DoctorOutput aggregates all checks.
type DoctorOutput struct {
	Backends []BackendCheck
	Feed     *FeedCheck
	OK       bool
}

// RunDoctorUseCase checks wake-lock backend availability and feed freshness.
type RunDoctorUseCase struct {
	backends   []port.WakeLockPlatform
	feed       port.FinanceFeedSource
	staleAfter time.Duration
	clock      clock.Clock
}

// NewRunDoctorUseCase creates a new RunDoctorUseCase. feed may be nil.
func NewRunDoctorUseCase(
	backends []port.WakeLockPlatform,
	feed port.FinanceFeedSource,
	staleAfter time.Duration,
	clk clock.Clock,
) *RunDoctorUseCase {
	if clk == nil {
		clk = clock.New()
	}
	if staleAfter <= 0 {
		staleAfter = entity.DefaultFinanceStaleAfter
	}
	return &RunDoctorUseCase{backends: backends, feed: feed, staleAfter: staleAfter, clock: clk}
}

// Execute runs every check. OK requires at least one supported backend;
// a stale or missing feed is reported but does not fail the run.
func (uc *RunDoctorUseCase) Execute(ctx context.Context) *DoctorOutput {
	out := &DoctorOutput{}

	for _, b := range uc.backends {
		supported := b.Supported(ctx)
		out.Backends = append(out.Backends, BackendCheck{Name: b.Name(), Supported: supported})
		if supported {
			out.OK = true
		}
	}

	if uc.feed != nil {
		out.Feed = CheckFinanceFeed(ctx, uc.feed, uc.staleAfter, uc.clock.Now())
	}

	return out
}

// CheckFinanceFeed loads the feed and evaluates its freshness at now.
func CheckFinanceFeed(ctx context.Context, src port.FinanceFeedSource, staleAfter time.Duration, now time.Time) *FeedCheck {
	check := &FeedCheck{Location: src.Location()}

	feed, err := src.Load(ctx)
	if err != nil {
		check.Error = err.Error()
		return check
	}

	check.Loaded = true
	check.Items = len(feed.Items)
	check.Stale = feed.IsStale(now, staleAfter)
	if feed.Meta != nil {
		check.UpdatedAt = feed.Meta.UpdatedAt
		check.Status = feed.Meta.Status
	}
	return check
}
