package market

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/robfig/cron/v3"
)

// Simulator drives the price oracle on a cron schedule, replacing the
// original in-page timer. Production systems would swap this for a real
// feed; tests call Market.Tick directly with a fixed random source.
type Simulator struct {
	market   *Market
	sink     QuoteSink
	schedule string
	rng      *rand.Rand
	cron     *cron.Cron
}

// NewSimulator creates a Simulator ticking market into sink on the given
// cron schedule (e.g. "@every 2s").
func NewSimulator(market *Market, sink QuoteSink, schedule string) *Simulator {
	return &Simulator{
		market:   market,
		sink:     sink,
		schedule: schedule,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run starts the schedule, publishes one immediate tick so quotes exist
// before the first interval elapses, and blocks until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) error {
	s.market.Tick(s.sink, s.rng.Float64, time.Now())

	s.cron = cron.New()
	_, err := s.cron.AddFunc(s.schedule, func() {
		s.market.Tick(s.sink, s.rng.Float64, time.Now())
	})
	if err != nil {
		return fmt.Errorf("invalid oracle schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	<-ctx.Done()

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	return nil
}
