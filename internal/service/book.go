package service

import (
	"context"

	"github.com/edmarfarias/library-api/internal/errs"
	"github.com/edmarfarias/library-api/internal/model"
	"github.com/pkg/errors"
)

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	created, err := s.books.CreateBook(ctx, model.Book{
		Title:  req.Title,
		Author: req.Author,
		Isbn:   req.Isbn,
	})
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return model.Book{}, errs.ErrIsbnExists
		}
		return model.Book{}, err
	}
	return created, nil
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.books.GetBook(ctx, id)
}

func (s *Service) GetBookByIsbn(ctx context.Context, isbn string) (model.Book, error) {
	return s.books.GetBookByIsbn(ctx, isbn)
}

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.BookPage, error) {
	return s.books.ListBooks(ctx, filter, page, size)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error) {
	prior, err := s.books.GetBook(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	prior.Title = req.Title
	prior.Author = req.Author
	return s.books.UpdateBook(ctx, prior)
}

// DeleteBook removes a catalog entry. The store's FK guard rejects the
// delete while any loan, open or closed, still references the book.
func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.books.DeleteBook(ctx, id)
}
