package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"watchstore/internal/domain/model"
	repo "watchstore/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")

	// emailが既に使用済み
	ErrEmailAlreadyUsed = errors.New("email already used")
)

// 入力検証はvalidatorパッケージに委譲する
type AuthValidator interface {
	ValidateRegister(ctx context.Context, email, password, firstName, lastName string) error
	ValidateLogin(ctx context.Context, email, password string) error
}

// アクセストークンの発行（実装はmainで組み立てる）
type TokenIssuer interface {
	Issue(userID int64, role model.Role, email string, now time.Time) (token string, expiresAt time.Time, err error)
}

type AuthUsecase struct {
	userRepo   repo.UserRepository
	validator  AuthValidator
	issuer     TokenIssuer
	bcryptCost int
}

// DI
func NewAuthUsecase(userRepo repo.UserRepository, validator AuthValidator, issuer TokenIssuer, bcryptCost int) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		validator:  validator,
		issuer:     issuer,
		bcryptCost: bcryptCost,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenOutput struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type AuthOutput struct {
	User  model.User  `json:"user"`
	Token TokenOutput `json:"token"`
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := u.validator.ValidateRegister(ctx, email, in.Password, in.FirstName, in.LastName); err != nil {
		if errors.Is(err, ErrEmailAlreadyUsed) {
			return AuthOutput{}, NewHTTPError(http.StatusConflict, "email already used")
		}
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return AuthOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}

	user, err := u.userRepo.Create(ctx, model.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         model.RoleUser,
	})
	if err != nil {
		return AuthOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}

	return u.withToken(user)
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := u.validator.ValidateLogin(ctx, email, in.Password); err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return AuthOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return AuthOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	return u.withToken(user)
}

func (u *AuthUsecase) Me(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return model.User{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	return user, nil
}

func (u *AuthUsecase) withToken(user model.User) (AuthOutput, error) {
	now := time.Now()
	token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, user.Email, now)
	if err != nil {
		return AuthOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}

	return AuthOutput{
		User: user,
		Token: TokenOutput{
			AccessToken: token,
			ExpiresIn:   int64(expiresAt.Sub(now).Seconds()),
		},
	}, nil
}
