package repository

import (
	"context"

	"sneakershop/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	// 同一(user, sneaker, size)の既存行を探す
	FindByUserSneakerSize(ctx context.Context, userID int64, sneakerID int64, size int) (model.CartItem, error)
	// 本人の明細だけを返す（他人のIDはErrNotFound）
	FindOwnedByID(ctx context.Context, cartItemID int64, userID int64) (model.CartItem, error)
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	// チェックアウト後のクリア用。在庫は戻さない。
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
