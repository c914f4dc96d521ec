package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"quick-event/internal/event"
	"quick-event/pkg/datemath"
	"quick-event/pkg/gcalendar"
	"quick-event/pkg/log"
)

// CalendarClient is the slice of pkg/gcalendar the use case needs; nil when
// the Calendar API is not configured.
type CalendarClient interface {
	InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error)
}

// ProfileTarget is where a profile's events land.
type ProfileTarget struct {
	BaseURL string
	Src     string
}

// Config is the per-process parsing configuration, passed in explicitly so
// the pipeline stays pure and safe to run concurrently.
type Config struct {
	Timezone               string // IANA id, passed through to URLs and the API
	DefaultDurationMinutes int
	Aliases                event.AliasTable
	Targets                map[event.Profile]ProfileTarget
	CalendarID             string // calendar for API inserts, "" means primary

	// Now overrides the clock; tests pin it. Defaults to the parser's Now.
	Now func() time.Time
}

const (
	parseCacheSize = 256
	parseCacheTTL  = time.Minute
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	l        log.Logger
	parser   *datemath.Parser
	calendar CalendarClient
	cfg      Config

	// Identical queries repeat heavily from as-you-type front-ends; results
	// only depend on the wall clock, so a short TTL keeps them honest.
	cache *expirable.LRU[string, event.ParseOutput]
}

// New creates a new event UseCase implementation.
func New(l log.Logger, parser *datemath.Parser, calendar CalendarClient, cfg Config) *implUseCase {
	if cfg.DefaultDurationMinutes <= 0 {
		cfg.DefaultDurationMinutes = 60
	}
	if cfg.Now == nil {
		cfg.Now = parser.Now
	}
	return &implUseCase{
		l:        l,
		parser:   parser,
		calendar: calendar,
		cfg:      cfg,
		cache:    expirable.NewLRU[string, event.ParseOutput](parseCacheSize, nil, parseCacheTTL),
	}
}
