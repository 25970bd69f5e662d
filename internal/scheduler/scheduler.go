package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/edmarfarias/library-api/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OverdueService interface {
	OverdueLoans(ctx context.Context, today time.Time, graceDays int) ([]model.Loan, error)
}

type Notifier interface {
	NotifyOverdue(ctx context.Context, to []string, body string) error
}

type Config struct {
	GraceDays    int           `yaml:"graceDays" envconfig:"OVERDUE_GRACE_DAYS" default:"4"`
	InitialDelay time.Duration `yaml:"initialDelay" envconfig:"OVERDUE_SWEEP_DELAY" default:"1m"`
	Interval     time.Duration `yaml:"interval" envconfig:"OVERDUE_SWEEP_INTERVAL" default:"24h"`
	SweepTimeout time.Duration `yaml:"sweepTimeout" envconfig:"OVERDUE_SWEEP_TIMEOUT" default:"30s"`
}

const overdueBody = `Você possui um livro com a devolução atrasada. Por favor, devolva o livro à biblioteca.`

// Scheduler drives the daily overdue sweep: detect open overdue loans,
// collect their customers' addresses and hand them to the Notifier. A
// sweep never propagates errors; it logs and waits for the next tick.
type Scheduler struct {
	cfg      Config
	svc      OverdueService
	notifier Notifier
	log      *zap.Logger
	now      func() time.Time

	sweeping atomic.Bool
}

func New(cfg Config, svc OverdueService, notifier Notifier, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		svc:      svc,
		notifier: notifier,
		log:      log.Named("scheduler"),
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled. The first sweep fires after
// InitialDelay, then once per Interval. A tick that lands while a sweep
// is still in flight is dropped, not queued.
func (s *Scheduler) Run(ctx context.Context) error {
	warmup := time.NewTimer(s.cfg.InitialDelay)
	defer warmup.Stop()
	select {
	case <-ctx.Done():
		return nil
	case <-warmup.C:
	}
	s.sweep(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return nil
		case <-ticker.C:
			s.sweep(ctx)
			// drop the tick that may have queued up while sweeping
			select {
			case <-ticker.C:
			default:
			}
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	if !s.sweeping.CompareAndSwap(false, true) {
		s.log.Debug("sweep in flight, tick dropped")
		return
	}
	defer s.sweeping.Store(false)

	sweepID := uuid.NewString()
	// a shutdown lets a running sweep finish; only the deadline aborts it
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.SweepTimeout)
	defer cancel()

	today := s.now()
	loans, err := s.svc.OverdueLoans(ctx, today, s.cfg.GraceDays)
	if err != nil {
		s.log.Error("overdue sweep", zap.String("sweep_id", sweepID), zap.Error(err))
		return
	}
	addrs := collectEmails(loans)
	s.log.Info("overdue sweep",
		zap.String("sweep_id", sweepID),
		zap.Int("overdue", len(loans)),
		zap.Int("recipients", len(addrs)))
	if len(addrs) == 0 {
		return
	}
	if err := s.notifier.NotifyOverdue(ctx, addrs, overdueBody); err != nil {
		s.log.Error("notify overdue", zap.String("sweep_id", sweepID), zap.Error(err))
	}
}

// collectEmails deduplicates the non-empty addresses preserving
// first-seen order. Loans without an email contribute nothing.
func collectEmails(loans []model.Loan) []string {
	seen := make(map[string]struct{}, len(loans))
	addrs := make([]string, 0, len(loans))
	for _, l := range loans {
		if l.CustomerEmail == "" {
			continue
		}
		if _, ok := seen[l.CustomerEmail]; ok {
			continue
		}
		seen[l.CustomerEmail] = struct{}{}
		addrs = append(addrs, l.CustomerEmail)
	}
	return addrs
}
