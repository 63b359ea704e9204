package model

import "time"

// priceは注文確定時点のスナップショット。カタログの価格変更の影響を受けない。
type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;index" json:"order_id"`
	SneakerID int64     `gorm:"not null;index" json:"sneaker_id"`
	Size      int       `gorm:"not null" json:"size"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
