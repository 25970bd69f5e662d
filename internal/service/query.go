package service

import (
	"context"
	"time"

	"github.com/edmarfarias/library-api/internal/errs"
	"github.com/edmarfarias/library-api/internal/model"
)

// FindLoans returns the page of loans whose book ISBN equals the filter's
// isbn or whose customer matches it as a case-insensitive substring. At
// least one filter field must be set.
func (s *Service) FindLoans(ctx context.Context, filter model.LoanFilter, page, size int) (model.LoanPage, error) {
	if filter.Isbn == "" && filter.Customer == "" {
		return model.LoanPage{}, errs.ErrEmptyFilter
	}
	return s.loans.FindLoans(ctx, filter, page, size)
}

// LoansByBook lists every loan of one book, open or closed, most recent
// first.
func (s *Service) LoansByBook(ctx context.Context, bookID int64, page, size int) (model.LoanPage, error) {
	if _, err := s.books.GetBook(ctx, bookID); err != nil {
		return model.LoanPage{}, err
	}
	return s.loans.LoansByBook(ctx, bookID, page, size)
}

// OverdueLoans returns the open loans granted at least graceDays before
// today. A loan granted exactly graceDays ago is overdue.
func (s *Service) OverdueLoans(ctx context.Context, today time.Time, graceDays int) ([]model.Loan, error) {
	threshold := model.DateOf(today.AddDate(0, 0, -graceDays))
	return s.loans.FindOpenLoansBefore(ctx, threshold)
}
