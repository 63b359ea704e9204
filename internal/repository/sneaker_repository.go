package repository

import (
	"context"
	"errors"

	"sneakershop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type SneakerListQuery struct {
	Gender string // "men" / "women" / 空なら全件
}

// スニーカーの永続化（保存・取得）だけを約束。
type SneakerRepository interface {
	List(ctx context.Context, q SneakerListQuery) ([]model.Sneaker, error)
	FindByID(ctx context.Context, id int64) (model.Sneaker, error)

	Create(ctx context.Context, s model.Sneaker) (model.Sneaker, error)
	Update(ctx context.Context, s model.Sneaker) error
	DeleteByID(ctx context.Context, id int64) error
}
