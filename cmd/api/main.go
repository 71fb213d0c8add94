package main

import (
	"context"
	"errors"
	"log"
	"time"

	"watchstore/internal/config"
	"watchstore/internal/domain/model"
	"watchstore/internal/handler"
	"watchstore/internal/infra/db"
	infraRepo "watchstore/internal/infra/repository"
	repo "watchstore/internal/repository"
	"watchstore/internal/server"
	"watchstore/internal/usecase"
	"watchstore/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, email string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":   userID,
		"role":  string(role),
		"email": email,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ADMIN_EMAIL/ADMIN_PASSWORD があれば管理者を作っておく
func ensureAdmin(ctx context.Context, cfg config.Config, users repo.UserRepository) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	_, err := users.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 12)
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, model.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "User",
		Role:         model.RoleAdmin,
	})
	return err
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.User{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB, cfg.SearchMode)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	if err := ensureAdmin(context.Background(), cfg, userRepo); err != nil {
		log.Fatalf("ensure admin: %v", err)
	}

	//JWT issuer
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, productRepo)
	authUC := usecase.NewAuthUsecase(userRepo, validator.NewAuthValidator(userRepo), issuer, 12)
	adminUC := usecase.NewAdminUsecase(userRepo, productRepo, orderRepo)

	//Handler生成とルート登録
	e := server.New(cfg)
	server.RegisterRoutes(e, cfg, server.Handlers{
		Product:      handler.NewProductHandler(productUC),
		Auth:         handler.NewAuthHandler(authUC),
		Order:        handler.NewOrderHandler(orderUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		Admin:        handler.NewAdminHandler(orderUC, adminUC),
	})

	//Server起動
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
