package model

import "time"

// サイズごとの在庫行
// stockは「カートに取り置かれていない」残数。常に0以上。
type SneakerSize struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SneakerID int64     `gorm:"not null;uniqueIndex:idx_sneaker_eu_size" json:"sneaker_id"`
	EUSize    int       `gorm:"not null;column:eu_size;uniqueIndex:idx_sneaker_eu_size" json:"eu_size"`
	Stock     int64     `gorm:"not null" json:"stock"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
