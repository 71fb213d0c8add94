package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"watchstore/internal/config"
	"watchstore/internal/domain/model"
	repo "watchstore/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db         *gorm.DB
	searchMode string
}

// DI
func NewProductGormRepository(db *gorm.DB, searchMode string) *ProductGormRepository {
	return &ProductGormRepository{db: db, searchMode: searchMode}
}

// applyFilter は絞り込み条件をWHERE句に変換する。
// 空フィールドは条件に足さない。条件はすべてAND。
func (r *ProductGormRepository) applyFilter(tx *gorm.DB, f repo.ProductFilter) *gorm.DB {
	if f.Category != "" {
		tx = tx.Where("category = ?", f.Category)
	}
	if f.Brand != "" {
		tx = tx.Where("brand = ?", f.Brand)
	}
	if f.MinPrice != nil {
		tx = tx.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		tx = tx.Where("price <= ?", *f.MaxPrice)
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		if r.searchMode == config.SearchModeFulltext {
			// 全文検索。部分一致とはヒット集合が変わる（語幹一致あり・途中一致なし）
			tx = tx.Where(
				"to_tsvector('english', name || ' ' || description) @@ plainto_tsquery('english', ?)", s)
		} else {
			like := "%" + s + "%"
			tx = tx.Where("name ILIKE ? OR description ILIKE ?", like, like)
		}
	}

	return tx
}

// List は絞り込み＋並び替え＋範囲指定で商品を返す。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.applyFilter(r.db.WithContext(ctx).Model(&model.Product{}), q.Filter)

	// Sort.Field は許可リスト経由のカラム名だけが来る
	dir := "asc"
	if q.Sort.Desc {
		dir = "desc"
	}
	tx = tx.Order(fmt.Sprintf("%s %s", q.Sort.Field, dir)).Order(fmt.Sprintf("id %s", dir))

	if err := tx.Offset(q.Offset).Limit(q.Limit).Find(&products).Error; err != nil {
		return nil, err
	}

	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// Count は同じ絞り込みでの総件数。
func (r *ProductGormRepository) Count(ctx context.Context, f repo.ProductFilter) (int64, error) {
	var total int64
	tx := r.applyFilter(r.db.WithContext(ctx).Model(&model.Product{}), f)
	if err := tx.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// おすすめ商品（在庫あり・評価の高い順、同率はレビュー数順）
func (r *ProductGormRepository) ListFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("in_stock = ?", true).
		Order("rating desc").
		Order("reviews desc").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// カテゴリの一覧（重複なし）
func (r *ProductGormRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "category")
}

// ブランドの一覧（重複なし）
func (r *ProductGormRepository) DistinctBrands(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "brand")
}

func (r *ProductGormRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Distinct(column).
		Where(column+" <> ''").
		Order(column + " asc").
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category,
		"brand":       p.Brand,
		"rating":      p.Rating,
		"reviews":     p.Reviews,
		"in_stock":    p.InStock,
		"stock_count": p.StockCount,
		"specs":       p.Specs,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除（ソフトデリート）
func (r *ProductGormRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 在庫数を現在値に更新。in_stock も同時に揃える。
func (r *ProductGormRepository) SetStock(ctx context.Context, id int64, stockCount int64) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_count": stockCount,
			"in_stock":    stockCount > 0,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
