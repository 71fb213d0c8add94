package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus は受け付けるステータス値かどうかを返す
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Number          string      `gorm:"type:varchar(64);uniqueIndex;not null" json:"number"`
	UserID          int64       `gorm:"not null;index" json:"userId"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Total           float64     `gorm:"not null" json:"total"`
	ShippingAddress string      `gorm:"type:text" json:"shippingAddress"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt       time.Time   `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time   `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// OrderItem は注文時点の商品スナップショット
type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64   `gorm:"not null;index" json:"-"`
	ProductID int64   `gorm:"not null" json:"productId"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice"`
	Quantity  int64   `gorm:"not null" json:"quantity"`
}
