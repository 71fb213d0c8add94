package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"watchstore/internal/domain/model"
	repo "watchstore/internal/repository"
	"watchstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminUsecase_ListUsers(t *testing.T) {
	ctx := context.Background()

	uRepo := new(UserRepoMock)
	uc := usecase.NewAdminUsecase(uRepo, new(ProductRepoMock), new(OrderRepoMock))

	uRepo.On("List", mock.Anything, 0, 10).Return([]model.User{{ID: 1}, {ID: 2}}, nil)
	uRepo.On("Count", mock.Anything).Return(int64(2), nil)

	out, err := uc.ListUsers(ctx, 1, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, out.Users, 2)
	assert.Equal(t, int64(2), out.Pagination.TotalItems)
}

func TestAdminUsecase_GetDashboardStats(t *testing.T) {
	ctx := context.Background()

	uRepo := new(UserRepoMock)
	pRepo := new(ProductRepoMock)
	oRepo := new(OrderRepoMock)
	uc := usecase.NewAdminUsecase(uRepo, pRepo, oRepo)

	pRepo.On("Count", mock.Anything, repo.ProductFilter{}).Return(int64(120), nil)
	oRepo.On("Count", mock.Anything, repo.OrderFilter{}).Return(int64(30), nil)
	uRepo.On("Count", mock.Anything).Return(int64(15), nil)
	oRepo.On("SumRevenue", mock.Anything).Return(250000.0, nil)

	stats, err := uc.GetDashboardStats(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, usecase.DashboardStats{
		Products: 120,
		Orders:   30,
		Users:    15,
		Revenue:  250000,
	}, stats)
}

func TestAdminUsecase_GetDashboardStats_StorageError(t *testing.T) {
	ctx := context.Background()

	uRepo := new(UserRepoMock)
	pRepo := new(ProductRepoMock)
	oRepo := new(OrderRepoMock)
	uc := usecase.NewAdminUsecase(uRepo, pRepo, oRepo)

	pRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Maybe()
	oRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil).Maybe()
	uRepo.On("Count", mock.Anything).Return(int64(0), nil).Maybe()
	oRepo.On("SumRevenue", mock.Anything).Return(0.0, nil).Maybe()

	_, err := uc.GetDashboardStats(ctx, 1)
	assertStatus(t, err, http.StatusInternalServerError)
}
