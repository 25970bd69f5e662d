package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/edmarfarias/library-api/internal/errs"
	"github.com/edmarfarias/library-api/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type LoanRepository interface {
	CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	GetLoan(ctx context.Context, id int64) (model.Loan, error)
	UpdateLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	ExistsActiveLoan(ctx context.Context, bookID int64) (bool, error)
	FindLoans(ctx context.Context, filter model.LoanFilter, page, size int) (model.LoanPage, error)
	FindOpenLoansBefore(ctx context.Context, threshold model.Date) ([]model.Loan, error)
	LoansByBook(ctx context.Context, bookID int64, page, size int) (model.LoanPage, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	loanTableName = `loan`
	bookTableName = `book`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// returned is nullable in the schema (legacy rows); reads normalize it to
// false, likewise customer_email to "".
var loanColumns = []string{
	"l.id",
	"l.book_id",
	"l.customer",
	`coalesce(l.customer_email, '') as customer_email`,
	"l.loan_date",
	`coalesce(l.returned, false) as returned`,
}

func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	q, args, err := qb.Insert(loanTableName).
		Columns("book_id", "customer", "customer_email", "loan_date", "returned").
		Values(loan.BookID, loan.Customer, nullString(loan.CustomerEmail), loan.LoanDate, loan.Returned).
		Suffix(`returning id, book_id, customer, coalesce(customer_email, '') as customer_email, loan_date, coalesce(returned, false) as returned`).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var created model.Loan
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if isPgErr(err, pgerrcode.UniqueViolation) {
			return model.Loan{}, errs.ErrConflict
		}
		r.log.Error("CreateLoan", zap.String("q", q), zap.Any("args", args))
		return model.Loan{}, err
	}
	return created, nil
}

func (r *repository) GetLoan(ctx context.Context, id int64) (model.Loan, error) {
	q, args, err := qb.Select(loanColumns...).
		From(loanTableName + " l").
		Where(sq.Eq{"l.id": id}).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

// UpdateLoan rewrites the mutable columns of an existing row. The caller
// supplies the authoritative snapshot; book_id, customer and loan_date
// are never touched here.
func (r *repository) UpdateLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	q, args, err := qb.Update(loanTableName).
		Set("returned", loan.Returned).
		Set("customer_email", nullString(loan.CustomerEmail)).
		Where(sq.Eq{"id": loan.ID}).
		Suffix(`returning id, book_id, customer, coalesce(customer_email, '') as customer_email, loan_date, coalesce(returned, false) as returned`).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var updated model.Loan
	if err := r.db.GetContext(ctx, &updated, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		if isPgErr(err, pgerrcode.UniqueViolation) {
			return model.Loan{}, errs.ErrConflict
		}
		return model.Loan{}, err
	}
	return updated, nil
}

func (r *repository) ExistsActiveLoan(ctx context.Context, bookID int64) (bool, error) {
	q := `
	select exists(select 1 from loan where book_id = $1 and returned is not true)
`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, bookID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) FindLoans(ctx context.Context, filter model.LoanFilter, page, size int) (model.LoanPage, error) {
	or := sq.Or{}
	if filter.Isbn != "" {
		or = append(or, sq.Eq{"b.isbn": filter.Isbn})
	}
	if filter.Customer != "" {
		or = append(or, sq.ILike{"l.customer": "%" + filter.Customer + "%"})
	}
	if len(or) == 0 {
		return model.LoanPage{}, errs.ErrEmptyFilter
	}

	from := fmt.Sprintf("%s l join %s b on b.id = l.book_id", loanTableName, bookTableName)
	total, err := r.countLoans(ctx, from, or)
	if err != nil {
		return model.LoanPage{}, err
	}

	q, args, err := qb.Select(loanColumns...).
		From(from).
		Where(or).
		OrderBy("l.loan_date desc", "l.id asc").
		Limit(uint64(size)).
		Offset(uint64(page) * uint64(size)).
		ToSql()
	if err != nil {
		return model.LoanPage{}, err
	}
	r.log.Debug("FindLoans", zap.String("query", q), zap.Any("args", args))

	loans := make([]model.Loan, 0)
	if err := r.db.SelectContext(ctx, &loans, q, args...); err != nil {
		return model.LoanPage{}, err
	}
	return model.LoanPage{
		Content:       loans,
		TotalElements: total,
		Pageable: model.Pageable{
			PageNumber: page,
			PageSize:   size,
		},
	}, nil
}

func (r *repository) FindOpenLoansBefore(ctx context.Context, threshold model.Date) ([]model.Loan, error) {
	q, args, err := qb.Select(loanColumns...).
		From(loanTableName + " l").
		Where(sq.LtOrEq{"l.loan_date": threshold}).
		Where("l.returned is not true").
		OrderBy("l.id asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, q, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) LoansByBook(ctx context.Context, bookID int64, page, size int) (model.LoanPage, error) {
	cond := sq.Eq{"l.book_id": bookID}
	total, err := r.countLoans(ctx, loanTableName+" l", cond)
	if err != nil {
		return model.LoanPage{}, err
	}

	q, args, err := qb.Select(loanColumns...).
		From(loanTableName + " l").
		Where(cond).
		OrderBy("l.loan_date desc", "l.id asc").
		Limit(uint64(size)).
		Offset(uint64(page) * uint64(size)).
		ToSql()
	if err != nil {
		return model.LoanPage{}, err
	}
	loans := make([]model.Loan, 0)
	if err := r.db.SelectContext(ctx, &loans, q, args...); err != nil {
		return model.LoanPage{}, err
	}
	return model.LoanPage{
		Content:       loans,
		TotalElements: total,
		Pageable: model.Pageable{
			PageNumber: page,
			PageSize:   size,
		},
	}, nil
}

func (r *repository) countLoans(ctx context.Context, from string, where sq.Sqlizer) (int64, error) {
	q, args, err := qb.Select("count(*)").From(from).Where(where).ToSql()
	if err != nil {
		return 0, err
	}
	var total int64
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
