package model

import "time"

// カタログのスニーカー1件
type Sneaker struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Brand       string    `gorm:"type:varchar(100);not null" json:"brand"`
	Price       float64   `gorm:"not null" json:"price"`
	Colorway    string    `gorm:"type:varchar(255)" json:"colorway"`
	Tag         string    `gorm:"type:varchar(50)" json:"tag"`
	ImageURL    string    `gorm:"type:varchar(255)" json:"image_url"`
	Gender      string    `gorm:"type:varchar(10)" json:"gender"` // 'men' or 'women'
	Description string    `gorm:"type:varchar(2000)" json:"description"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
