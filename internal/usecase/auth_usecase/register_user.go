package auth

import (
	"context"
	"errors"
	"net/mail"

	"sneakershop/internal/domain/model"
	"sneakershop/internal/repository"
)

// 会員登録の入力
type RegisterUserInput struct {
	Email    string
	Password string
	FullName string
}

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
}

// DI
func NewRegisterUserUsecase(userRepo repository.UserRepository, hasher PasswordHasher) *RegisterUserUsecase {
	return &RegisterUserUsecase{userRepo: userRepo, hasher: hasher}
}

// 会員登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (model.User, error) {
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return model.User{}, ErrInvalidEmailFormat
	}
	if len(in.Password) < 8 {
		return model.User{}, ErrPasswordTooShort
	}

	// email重複チェック
	if _, err := u.userRepo.FindByEmail(ctx, in.Email); err == nil {
		return model.User{}, ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.User{}, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}

	user, err := u.userRepo.Create(ctx, model.User{
		Email:        in.Email,
		PasswordHash: hashed,
		FullName:     in.FullName,
		IsActive:     true,
	})
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}
