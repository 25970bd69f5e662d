package service

import (
	"time"

	"github.com/edmarfarias/library-api/internal/repository"
	"github.com/edmarfarias/library-api/pkg/kafka"
	"go.uber.org/zap"
)

// Enqueuer publishes loan lifecycle events. Publishing is best-effort:
// the service logs failures and never surfaces them to API callers.
type Enqueuer interface {
	Enqueue(topic string, v any) error
}

type Service struct {
	loans repository.LoanRepository
	books repository.BookRepository
	enq   Enqueuer
	log   *zap.Logger
	now   func() time.Time
}

func NewService(loans repository.LoanRepository, books repository.BookRepository, enq Enqueuer, log *zap.Logger) *Service {
	return &Service{
		loans: loans,
		books: books,
		enq:   enq,
		log:   log,
		now:   time.Now,
	}
}

func (s *Service) publish(eventType kafka.LoanEventType, loanID, bookID int64, customer string) {
	ev := kafka.EventLoan{
		Type:     eventType,
		LoanID:   loanID,
		BookID:   bookID,
		Customer: customer,
		At:       s.now().UTC(),
	}
	if err := s.enq.Enqueue(kafka.LoanTopic, ev); err != nil {
		s.log.Warn("enqueue loan event",
			zap.String("type", string(eventType)),
			zap.Int64("loan_id", loanID),
			zap.Error(err))
	}
}
