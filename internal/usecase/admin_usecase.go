package usecase

import (
	"context"
	"net/http"

	"watchstore/internal/domain/model"
	"watchstore/internal/pagination"
	repo "watchstore/internal/repository"

	"golang.org/x/sync/errgroup"
)

// 管理画面用の横断的な読み取り（ユーザー一覧、ダッシュボード）
type AdminUsecase struct {
	userRepo    repo.UserRepository
	productRepo repo.ProductRepository
	orderRepo   repo.OrderRepository
}

// DI
func NewAdminUsecase(userRepo repo.UserRepository, productRepo repo.ProductRepository, orderRepo repo.OrderRepository) *AdminUsecase {
	return &AdminUsecase{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

type UserListOutput struct {
	Users      []model.User        `json:"users"`
	Pagination pagination.PageInfo `json:"pagination"`
}

func (u *AdminUsecase) ListUsers(ctx context.Context, adminUserID int64, page, limit int) (UserListOutput, error) {
	if adminUserID <= 0 {
		return UserListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	pg := pagination.Normalize(page, limit)

	users, err := u.userRepo.List(ctx, pg.Offset(), pg.Limit)
	if err != nil {
		return UserListOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	total, err := u.userRepo.Count(ctx)
	if err != nil {
		return UserListOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}

	return UserListOutput{
		Users:      users,
		Pagination: pg.PageInfo(total),
	}, nil
}

type DashboardStats struct {
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
	Users    int64   `json:"users"`
	Revenue  float64 `json:"revenue"`
}

// ダッシュボードの集計。4つの読み取りは独立なので並行に投げる。
func (u *AdminUsecase) GetDashboardStats(ctx context.Context, adminUserID int64) (DashboardStats, error) {
	if adminUserID <= 0 {
		return DashboardStats{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var stats DashboardStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.Products, err = u.productRepo.Count(gctx, repo.ProductFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		stats.Orders, err = u.orderRepo.Count(gctx, repo.OrderFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		stats.Users, err = u.userRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Revenue, err = u.orderRepo.SumRevenue(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardStats{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}

	return stats, nil
}
