package repository

import (
	"context"
	"errors"

	"watchstore/internal/domain/model"
	repo "watchstore/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// Create は注文＋明細の保存と在庫の引き当てを1トランザクションで行う。
func (r *OrderGormRepository) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range o.Items {
			//現在の在庫を取得
			var p model.Product
			if err := tx.First(&p, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return repo.ErrNotFound
				}
				return err
			}

			if p.StockCount < item.Quantity {
				return repo.ErrOutOfStock
			}

			remaining := p.StockCount - item.Quantity
			res := tx.Model(&model.Product{}).
				Where("id = ? AND stock_count >= ?", item.ProductID, item.Quantity).
				Updates(map[string]interface{}{
					"stock_count": gorm.Expr("stock_count - ?", item.Quantity),
					"in_stock":    remaining > 0,
				})
			if res.Error != nil {
				return res.Error
			}
			// 同時注文で在庫が先に減っていた場合もここで弾く
			if res.RowsAffected == 0 {
				return repo.ErrOutOfStock
			}
		}

		// 明細はアソシエーション経由でまとめてINSERTされる
		if err := tx.Create(o).Error; err != nil {
			return err
		}

		return nil
	})
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) applyFilter(tx *gorm.DB, f repo.OrderFilter) *gorm.DB {
	if f.UserID > 0 {
		tx = tx.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	return tx
}

// 新しい順
func (r *OrderGormRepository) List(ctx context.Context, f repo.OrderFilter, offset, limit int) ([]model.Order, error) {
	var orders []model.Order
	tx := r.applyFilter(r.db.WithContext(ctx).Model(&model.Order{}), f)
	err := tx.Preload("Items").
		Order("created_at desc").Order("id desc").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (r *OrderGormRepository) Count(ctx context.Context, f repo.OrderFilter) (int64, error) {
	var total int64
	tx := r.applyFilter(r.db.WithContext(ctx).Model(&model.Order{}), f)
	if err := tx.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// キャンセル以外の売上合計
func (r *OrderGormRepository) SumRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("status <> ?", model.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, err
	}
	return revenue, nil
}
