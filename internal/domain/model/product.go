package model

import (
	"time"

	"gorm.io/gorm"
)

// SpecMap は商品の自由仕様項目（ムーブメント、ケース径など）
type SpecMap map[string]string

type Product struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Category    string         `gorm:"type:varchar(100);index" json:"category"`
	Brand       string         `gorm:"type:varchar(100);index" json:"brand"`
	Rating      float64        `gorm:"not null;default:0" json:"rating"`
	Reviews     int64          `gorm:"not null;default:0" json:"reviews"`
	InStock     bool           `gorm:"not null;default:true" json:"inStock"`
	StockCount  int64          `gorm:"not null;default:0" json:"stockCount"`
	Specs       SpecMap        `gorm:"serializer:json;type:jsonb" json:"specs,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
