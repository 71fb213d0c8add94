package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"watchstore/internal/domain/model"
	"watchstore/internal/pagination"
	repo "watchstore/internal/repository"

	"github.com/google/uuid"
)

type OrderUsecase struct {
	orderRepo   repo.OrderRepository
	productRepo repo.ProductRepository
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository, productRepo repo.ProductRepository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo, productRepo: productRepo}
}

type OrderItemInput struct {
	ProductID int64
	Quantity  int64
}

type CreateOrderInput struct {
	Items           []OrderItemInput
	ShippingAddress string
}

// CreateOrder はモック決済のチェックアウト。
// 現在価格で合計を計算し、明細にスナップショットを残して在庫を引き当てる。
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID int64, in CreateOrderInput) (model.Order, error) {
	if userID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(in.Items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "order must have at least one item")
	}

	var total float64
	items := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order item")
		}

		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "product not found")
		}
		if err != nil {
			return model.Order{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
		}

		total += p.Price * float64(it.Quantity)
		items = append(items, model.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  it.Quantity,
		})
	}

	order := model.Order{
		Number:          uuid.NewString(),
		UserID:          userID,
		Status:          model.OrderStatusPending,
		Total:           total,
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
		Items:           items,
	}

	err := u.orderRepo.Create(ctx, &order)
	if errors.Is(err, repo.ErrOutOfStock) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "insufficient stock")
	}
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "product not found")
	}
	if err != nil {
		return model.Order{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}

	return order, nil
}

type OrderListOutput struct {
	Orders     []model.Order       `json:"orders"`
	Pagination pagination.PageInfo `json:"pagination"`
}

// 自分の注文一覧（新しい順）
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, page, limit int) (OrderListOutput, error) {
	if userID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return u.list(ctx, repo.OrderFilter{UserID: userID}, page, limit)
}

// 自分の注文詳細。他人の注文は存在しないのと同じ扱い（404）。
func (u *OrderUsecase) GetMyOrder(ctx context.Context, userID int64, orderID int64) (model.Order, error) {
	if userID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Order{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	if o.UserID != userID {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	return o, nil
}

// 全注文一覧（admin用、ステータス絞り込みつき）
func (u *OrderUsecase) AdminListOrders(ctx context.Context, adminUserID int64, page, limit int, status string) (OrderListOutput, error) {
	if adminUserID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	f := repo.OrderFilter{}
	if s := model.OrderStatus(strings.TrimSpace(status)); s != "" {
		if !model.ValidOrderStatus(s) {
			return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		f.Status = s
	}
	return u.list(ctx, f, page, limit)
}

func (u *OrderUsecase) AdminUpdateOrderStatus(ctx context.Context, adminUserID int64, orderID int64, status model.OrderStatus) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	if !model.ValidOrderStatus(status) {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orderRepo.UpdateStatus(ctx, orderID, status)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	return nil
}

func (u *OrderUsecase) list(ctx context.Context, f repo.OrderFilter, page, limit int) (OrderListOutput, error) {
	pg := pagination.Normalize(page, limit)

	orders, err := u.orderRepo.List(ctx, f, pg.Offset(), pg.Limit)
	if err != nil {
		return OrderListOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	total, err := u.orderRepo.Count(ctx, f)
	if err != nil {
		return OrderListOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}

	return OrderListOutput{
		Orders:     orders,
		Pagination: pg.PageInfo(total),
	}, nil
}
