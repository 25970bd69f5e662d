package service

import (
	"context"
	"strings"

	"github.com/edmarfarias/library-api/internal/errs"
	"github.com/edmarfarias/library-api/internal/model"
	"github.com/edmarfarias/library-api/pkg/kafka"
	"github.com/pkg/errors"
)

// CreateLoan grants a loan for the book with the given ISBN. A book may
// have at most one open loan at any instant: the pre-check here is an
// optimization, the store's conditional unique index is authoritative
// under concurrency and its conflict is remapped to the same business
// error.
func (s *Service) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error) {
	if strings.TrimSpace(req.Customer) == "" {
		return model.Loan{}, errs.ErrEmptyCustomer
	}
	today := model.DateOf(s.now())
	loanDate := req.LoanDate
	if loanDate.IsZero() {
		loanDate = today
	}
	if loanDate.After(today) {
		return model.Loan{}, errs.ErrFutureLoanDate
	}

	book, err := s.books.GetBookByIsbn(ctx, req.Isbn)
	if err != nil {
		return model.Loan{}, err
	}

	loaned, err := s.loans.ExistsActiveLoan(ctx, book.ID)
	if err != nil {
		return model.Loan{}, err
	}
	if loaned {
		return model.Loan{}, errs.ErrBookLoaned
	}

	created, err := s.loans.CreateLoan(ctx, model.Loan{
		BookID:        book.ID,
		Customer:      req.Customer,
		CustomerEmail: req.CustomerEmail,
		LoanDate:      loanDate,
		Returned:      false,
	})
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return model.Loan{}, errs.ErrBookLoaned
		}
		return model.Loan{}, err
	}

	s.publish(kafka.LoanCreated, created.ID, created.BookID, created.Customer)
	return created, nil
}

func (s *Service) GetLoan(ctx context.Context, id int64) (model.Loan, error) {
	return s.loans.GetLoan(ctx, id)
}

// MarkReturned closes a loan. Returning an already-returned loan is
// idempotent: the stored loan comes back unchanged.
func (s *Service) MarkReturned(ctx context.Context, id int64) (model.Loan, error) {
	loan, err := s.loans.GetLoan(ctx, id)
	if err != nil {
		return model.Loan{}, err
	}
	if loan.Returned {
		return loan, nil
	}
	loan.Returned = true
	updated, err := s.loans.UpdateLoan(ctx, loan)
	if err != nil {
		return model.Loan{}, err
	}
	s.publish(kafka.LoanReturned, updated.ID, updated.BookID, updated.Customer)
	return updated, nil
}

// UpdateLoan merges the permitted deltas onto the stored snapshot. Only
// returned and customerEmail are writable; returned never goes back to
// false once true. Everything else in the payload is ignored.
func (s *Service) UpdateLoan(ctx context.Context, in model.Loan) (model.Loan, error) {
	if in.ID == 0 {
		return model.Loan{}, errs.ErrNilLoanID
	}
	prior, err := s.loans.GetLoan(ctx, in.ID)
	if err != nil {
		return model.Loan{}, err
	}
	wasReturned := prior.Returned
	if in.Returned {
		prior.Returned = true
	}
	if in.CustomerEmail != "" {
		prior.CustomerEmail = in.CustomerEmail
	}
	updated, err := s.loans.UpdateLoan(ctx, prior)
	if err != nil {
		return model.Loan{}, err
	}
	if !wasReturned && updated.Returned {
		s.publish(kafka.LoanReturned, updated.ID, updated.BookID, updated.Customer)
	}
	return updated, nil
}
