package service_test

import (
	"context"
	"testing"

	"github.com/edmarfarias/library-api/internal/errs"
	"github.com/edmarfarias/library-api/internal/model"
	mock_repository "github.com/edmarfarias/library-api/internal/repository/mocks"
	"github.com/edmarfarias/library-api/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_CreateBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		req          model.CreateBookRequest
		mockBehavior func(books *mock_repository.MockBookRepository)
		want         model.Book
		wantErr      error
	}{
		{
			name: "ok",
			req:  model.CreateBookRequest{Title: "Meu Livro", Author: "Jana", Isbn: "1234"},
			mockBehavior: func(books *mock_repository.MockBookRepository) {
				books.EXPECT().
					CreateBook(context.Background(), model.Book{Title: "Meu Livro", Author: "Jana", Isbn: "1234"}).
					Return(model.Book{ID: 1, Title: "Meu Livro", Author: "Jana", Isbn: "1234"}, nil)
			},
			want: model.Book{ID: 1, Title: "Meu Livro", Author: "Jana", Isbn: "1234"},
		},
		{
			name: "duplicate isbn",
			req:  model.CreateBookRequest{Title: "Outro", Author: "Jana", Isbn: "1234"},
			mockBehavior: func(books *mock_repository.MockBookRepository) {
				books.EXPECT().
					CreateBook(context.Background(), gomock.Any()).
					Return(model.Book{}, errs.ErrConflict)
			},
			wantErr: errs.ErrIsbnExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			loans := mock_repository.NewMockLoanRepository(c)
			books := mock_repository.NewMockBookRepository(c)
			tt.mockBehavior(books)
			svc := service.NewService(loans, books, &fakeEnqueuer{}, zap.NewExample().Named("test"))

			got, err := svc.CreateBook(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_UpdateBook_isbnImmutable(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	loans := mock_repository.NewMockLoanRepository(c)
	books := mock_repository.NewMockBookRepository(c)

	prior := model.Book{ID: 1, Title: "Meu Livro", Author: "Jana", Isbn: "1234"}
	updated := model.Book{ID: 1, Title: "Novo Titulo", Author: "Jana Silva", Isbn: "1234"}
	books.EXPECT().GetBook(context.Background(), int64(1)).Return(prior, nil)
	books.EXPECT().UpdateBook(context.Background(), updated).Return(updated, nil)

	svc := service.NewService(loans, books, &fakeEnqueuer{}, zap.NewExample().Named("test"))
	got, err := svc.UpdateBook(context.Background(), 1, model.UpdateBookRequest{Title: "Novo Titulo", Author: "Jana Silva"})
	require.NoError(t, err)
	require.Equal(t, "1234", got.Isbn)
}

func TestService_DeleteBook_withLoans(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	loans := mock_repository.NewMockLoanRepository(c)
	books := mock_repository.NewMockBookRepository(c)

	books.EXPECT().DeleteBook(context.Background(), int64(1)).Return(errs.ErrBookHasLoans)

	svc := service.NewService(loans, books, &fakeEnqueuer{}, zap.NewExample().Named("test"))
	err := svc.DeleteBook(context.Background(), 1)
	require.ErrorIs(t, err, errs.ErrBookHasLoans)
}
