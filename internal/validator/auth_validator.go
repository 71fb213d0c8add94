package validator

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"watchstore/internal/repository"
	"watchstore/internal/usecase"
)

type authValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

// サインアップの入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, email, password, firstName, lastName string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return usecase.ErrInvalidInput
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return usecase.ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return usecase.ErrInvalidInput
	}

	// パスワード最低文字数
	if len(password) < 6 {
		return usecase.ErrInvalidInput
	}

	// email重複チェック（DBが必要）
	_, err := v.users.FindByEmail(ctx, email)
	if err == nil {
		return usecase.ErrEmailAlreadyUsed
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return usecase.ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return usecase.ErrInvalidInput
	}

	return nil
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
