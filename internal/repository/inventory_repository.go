package repository

import (
	"context"

	"sneakershop/internal/domain/model"
)

type InventoryRepository interface {
	// (sneaker_id, eu_size)のサイズ行を取得
	FindSize(ctx context.Context, sneakerID int64, euSize int) (model.SneakerSize, error)

	// スニーカーのサイズ行を一覧取得（eu_size昇順）
	ListBySneakerID(ctx context.Context, sneakerID int64) ([]model.SneakerSize, error)

	// サイズ行を作成、あれば在庫の現在値を設定
	UpsertSize(ctx context.Context, sneakerID int64, euSize int, stock int64) (model.SneakerSize, error)

	// 在庫が足りるときだけ減算
	DecreaseStockIfEnough(ctx context.Context, sneakerID int64, euSize int, qty int64) (bool, error)

	// 在庫戻し（カート減量・削除）
	IncreaseStock(ctx context.Context, sneakerID int64, euSize int, qty int64) error

	// スニーカー削除時のカスケード
	DeleteBySneakerID(ctx context.Context, sneakerID int64) error
}
