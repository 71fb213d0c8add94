package repository

import (
	"context"

	"watchstore/internal/domain/model"
)

// OrderFilter は注文一覧の絞り込み（adminのステータス絞り込み用）
type OrderFilter struct {
	UserID int64
	Status model.OrderStatus
}

type OrderRepository interface {
	// Create は注文と明細を保存し、同一トランザクションで在庫を引き当てる。
	// 在庫が足りない商品があれば ErrOutOfStock。
	Create(ctx context.Context, o *model.Order) error

	FindByID(ctx context.Context, id int64) (model.Order, error)
	List(ctx context.Context, f OrderFilter, offset, limit int) ([]model.Order, error)
	Count(ctx context.Context, f OrderFilter) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error

	// SumRevenue はキャンセル以外の注文合計金額（ダッシュボード用）
	SumRevenue(ctx context.Context) (float64, error)
}
