package model

import "time"

// カートの明細
// quantityは在庫からすでに引き落とした取り置き数。
// (user_id, sneaker_id, size)につき1行。quantity<=0の行は存在させない。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	SneakerID int64     `gorm:"not null;index" json:"sneaker_id"`
	Size      int       `gorm:"not null" json:"size"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
