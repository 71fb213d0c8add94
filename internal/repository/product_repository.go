package repository

import (
	"context"
	"errors"

	"watchstore/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ErrOutOfStock は在庫不足で注文を確定できないとき
var ErrOutOfStock = errors.New("out of stock")

// ProductFilter は商品一覧の絞り込み条件。
// 空のフィールドは条件に含めない（全件マッチであって全件除外ではない）。
// 条件は常にAND合成。
type ProductFilter struct {
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

// ProductListQuery は一覧取得の完全な指定（絞り込み＋並び順＋範囲）
type ProductListQuery struct {
	Filter ProductFilter
	Sort   Sort
	Offset int
	Limit  int
}

// 商品の永続化（取得・保存）だけを約束。
type ProductRepository interface {
	// List と Count は必ず同じ ProductFilter で呼ぶこと。
	// 別の条件で数えるとページングメタデータが一覧と食い違う。
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	Count(ctx context.Context, f ProductFilter) (int64, error)

	FindByID(ctx context.Context, id int64) (model.Product, error)
	ListFeatured(ctx context.Context, limit int) ([]model.Product, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	DistinctBrands(ctx context.Context) ([]string, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error
	SetStock(ctx context.Context, id int64, stockCount int64) error
}
