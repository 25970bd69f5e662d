package handler

import (
	"context"

	"github.com/edmarfarias/library-api/internal/model"
	"github.com/edmarfarias/library-api/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LoanService interface {
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
	GetLoan(ctx context.Context, id int64) (model.Loan, error)
	MarkReturned(ctx context.Context, id int64) (model.Loan, error)
	UpdateLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	FindLoans(ctx context.Context, filter model.LoanFilter, page, size int) (model.LoanPage, error)
	LoansByBook(ctx context.Context, bookID int64, page, size int) (model.LoanPage, error)
}

type BookService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.BookPage, error)
	UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

var _ LoanService = (*service.Service)(nil)
var _ BookService = (*service.Service)(nil)
