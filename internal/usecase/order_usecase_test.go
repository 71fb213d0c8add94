package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"watchstore/internal/domain/model"
	repo "watchstore/internal/repository"
	"watchstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o *model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id int64) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context, f repo.OrderFilter, offset, limit int) ([]model.Order, error) {
	args := m.Called(ctx, f, offset, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Count(ctx context.Context, f repo.OrderFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *OrderRepoMock) SumRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func TestOrderUsecase_CreateOrder_Success(t *testing.T) {
	ctx := context.Background()

	oRepo := new(OrderRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewOrderUsecase(oRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Submariner", Price: 8000, StockCount: 5}, nil)
	pRepo.On("FindByID", mock.Anything, int64(2)).Return(model.Product{ID: 2, Name: "Seamaster", Price: 3500, StockCount: 2}, nil)

	// 合計は現在価格から、明細はスナップショット
	oRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
		return o.UserID == 42 &&
			o.Status == model.OrderStatusPending &&
			o.Total == 8000*2+3500 &&
			o.Number != "" &&
			len(o.Items) == 2 &&
			o.Items[0].Name == "Submariner" && o.Items[0].UnitPrice == 8000 && o.Items[0].Quantity == 2 &&
			o.Items[1].Name == "Seamaster" && o.Items[1].UnitPrice == 3500 && o.Items[1].Quantity == 1
	})).Return(nil)

	order, err := uc.CreateOrder(ctx, 42, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
		ShippingAddress: " 1-2-3 Ginza, Tokyo ",
	})
	assert.NoError(t, err)
	assert.Equal(t, "1-2-3 Ginza, Tokyo", order.ShippingAddress)

	oRepo.AssertExpectations(t)
	pRepo.AssertExpectations(t)
}

func TestOrderUsecase_CreateOrder_EmptyItems(t *testing.T) {
	uc := usecase.NewOrderUsecase(new(OrderRepoMock), new(ProductRepoMock))

	_, err := uc.CreateOrder(context.Background(), 42, usecase.CreateOrderInput{})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestOrderUsecase_CreateOrder_InvalidQuantity(t *testing.T) {
	uc := usecase.NewOrderUsecase(new(OrderRepoMock), new(ProductRepoMock))

	_, err := uc.CreateOrder(context.Background(), 42, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 0}},
	})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestOrderUsecase_CreateOrder_OutOfStock(t *testing.T) {
	ctx := context.Background()

	oRepo := new(OrderRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewOrderUsecase(oRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "GMT", Price: 9000, StockCount: 1}, nil)
	oRepo.On("Create", mock.Anything, mock.Anything).Return(repo.ErrOutOfStock)

	_, err := uc.CreateOrder(ctx, 42, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestOrderUsecase_GetMyOrder_NotMine(t *testing.T) {
	ctx := context.Background()

	oRepo := new(OrderRepoMock)
	uc := usecase.NewOrderUsecase(oRepo, new(ProductRepoMock))

	// 他人の注文は404（存在を漏らさない）
	oRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Order{ID: 10, UserID: 7}, nil)

	_, err := uc.GetMyOrder(ctx, 42, 10)
	assertStatus(t, err, http.StatusNotFound)
}

func TestOrderUsecase_ListMyOrders_Success(t *testing.T) {
	ctx := context.Background()

	oRepo := new(OrderRepoMock)
	uc := usecase.NewOrderUsecase(oRepo, new(ProductRepoMock))

	f := repo.OrderFilter{UserID: 42}
	oRepo.On("List", mock.Anything, f, 0, 10).Return([]model.Order{{ID: 1, UserID: 42}}, nil)
	oRepo.On("Count", mock.Anything, f).Return(int64(1), nil)

	out, err := uc.ListMyOrders(ctx, 42, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, out.Orders, 1)
	assert.Equal(t, 1, out.Pagination.TotalPages)
}

func TestOrderUsecase_AdminListOrders_InvalidStatus(t *testing.T) {
	uc := usecase.NewOrderUsecase(new(OrderRepoMock), new(ProductRepoMock))

	_, err := uc.AdminListOrders(context.Background(), 1, 1, 10, "teleported")
	assertStatus(t, err, http.StatusBadRequest)
}

func TestOrderUsecase_AdminUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	oRepo := new(OrderRepoMock)
	uc := usecase.NewOrderUsecase(oRepo, new(ProductRepoMock))

	err := uc.AdminUpdateOrderStatus(ctx, 1, 5, "bogus")
	assertStatus(t, err, http.StatusBadRequest)

	oRepo.On("UpdateStatus", mock.Anything, int64(5), model.OrderStatusShipped).Return(nil)
	err = uc.AdminUpdateOrderStatus(ctx, 1, 5, model.OrderStatusShipped)
	assert.NoError(t, err)

	oRepo.On("UpdateStatus", mock.Anything, int64(99), model.OrderStatusShipped).Return(repo.ErrNotFound)
	err = uc.AdminUpdateOrderStatus(ctx, 1, 99, model.OrderStatusShipped)
	assertStatus(t, err, http.StatusNotFound)
}
