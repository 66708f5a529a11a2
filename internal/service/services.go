package service

import (
	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/internal/store"
)

type Services struct {
	BookService    BookService
	UserService    UserService
	LendingService LendingService
}

func NewServices(repos *store.Repositories, logger *logger.Logger) *Services {
	return &Services{
		BookService:    NewBookService(repos.Books, logger),
		UserService:    NewUserService(repos.Users, logger),
		LendingService: NewLendingService(repos.Borrows, repos.Users, logger),
	}
}
