package repository

import (
	"context"
	"database/sql"

	"github.com/edmarfarias/library-api/internal/errs"
	"github.com/edmarfarias/library-api/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=book.go -destination=mocks/book_mock.go

type BookRepository interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	GetBookByIsbn(ctx context.Context, isbn string) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.BookPage, error)
}

var bookColumns = []string{"id", "title", "author", "isbn"}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q, args, err := qb.Insert(bookTableName).
		Columns("title", "author", "isbn").
		Values(book.Title, book.Author, book.Isbn).
		Suffix("returning id, title, author, isbn").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var created model.Book
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if isPgErr(err, pgerrcode.UniqueViolation) {
			return model.Book{}, errs.ErrConflict
		}
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return created, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBookByIsbn(ctx context.Context, isbn string) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.Eq{"isbn": isbn}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// UpdateBook rewrites title and author. ISBN is immutable.
func (r *repository) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q, args, err := qb.Update(bookTableName).
		Set("title", book.Title).
		Set("author", book.Author).
		Where(sq.Eq{"id": book.ID}).
		Suffix("returning id, title, author, isbn").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var updated model.Book
	if err := r.db.GetContext(ctx, &updated, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return updated, nil
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(bookTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		if isPgErr(err, pgerrcode.ForeignKeyViolation) {
			return errs.ErrBookHasLoans
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.BookPage, error) {
	and := sq.And{}
	if filter.Title != "" {
		and = append(and, sq.ILike{"title": "%" + filter.Title + "%"})
	}
	if filter.Author != "" {
		and = append(and, sq.ILike{"author": "%" + filter.Author + "%"})
	}
	if filter.Isbn != "" {
		and = append(and, sq.Eq{"isbn": filter.Isbn})
	}

	countQ := qb.Select("count(*)").From(bookTableName)
	listQ := qb.Select(bookColumns...).From(bookTableName)
	if len(and) > 0 {
		countQ = countQ.Where(and)
		listQ = listQ.Where(and)
	}

	q, args, err := countQ.ToSql()
	if err != nil {
		return model.BookPage{}, err
	}
	var total int64
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return model.BookPage{}, err
	}

	q, args, err = listQ.
		OrderBy("id asc").
		Limit(uint64(size)).
		Offset(uint64(page) * uint64(size)).
		ToSql()
	if err != nil {
		return model.BookPage{}, err
	}
	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return model.BookPage{}, err
	}
	return model.BookPage{
		Content:       books,
		TotalElements: total,
		Pageable: model.Pageable{
			PageNumber: page,
			PageSize:   size,
		},
	}, nil
}
