package usecase_test

import (
	"context"
	"errors"
	"testing"

	"sneakershop/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func newOrderUsecase(store *fakeStore) *usecase.OrderUsecase {
	return usecase.NewOrderUsecase(&fakeTxManager{store: store})
}

func TestOrderUsecase_Checkout_CreatesOrderAndClearsCart(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sn1 := store.addSneaker("Checkout Sneaker 1", "Nike", 100)
	store.addSize(sn1.ID, 42, 10)
	sn2 := store.addSneaker("Checkout Sneaker 2", "Adidas", 200)
	store.addSize(sn2.ID, 43, 5)

	cartUC := newCartUsecase(store)
	_, err := cartUC.AddToCart(ctx, testUserID, usecase.AddCartInput{SneakerID: sn1.ID, Size: 42, Quantity: 2})
	assert.NoError(t, err)
	_, err = cartUC.AddToCart(ctx, testUserID, usecase.AddCartInput{SneakerID: sn2.ID, Size: 43, Quantity: 1})
	assert.NoError(t, err)

	uc := newOrderUsecase(store)
	out, err := uc.Checkout(ctx, testUserID, "key-1")
	assert.NoError(t, err)

	// 2*100 + 1*200
	assert.Equal(t, 400.0, out.Total)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 100.0, out.Items[0].Price)
	assert.Equal(t, 42, out.Items[0].Size)
	assert.Equal(t, "Checkout Sneaker 1", out.Items[0].Name)

	// カートは空になる
	items, _ := store.CartItems().ListByUserID(ctx, testUserID)
	assert.Empty(t, items)

	// 在庫は戻らない（注文に確定）
	assert.Equal(t, int64(8), store.stockOf(sn1.ID, 42))
	assert.Equal(t, int64(4), store.stockOf(sn2.ID, 43))
}

func TestOrderUsecase_Checkout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	uc := newOrderUsecase(store)
	_, err := uc.Checkout(ctx, testUserID, "key-1")

	assert.ErrorIs(t, err, usecase.ErrEmptyCart)
	assert.Empty(t, store.orders)
}

// 価格スナップショット：チェックアウト後のカタログ価格変更は注文に影響しない。
func TestOrderUsecase_Checkout_PriceSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sn := store.addSneaker("Snapshot Sneaker", "Nike", 100)
	store.addSize(sn.ID, 42, 5)

	cartUC := newCartUsecase(store)
	_, err := cartUC.AddToCart(ctx, testUserID, usecase.AddCartInput{SneakerID: sn.ID, Size: 42, Quantity: 2})
	assert.NoError(t, err)

	uc := newOrderUsecase(store)
	out, err := uc.Checkout(ctx, testUserID, "key-1")
	assert.NoError(t, err)
	assert.Equal(t, 200.0, out.Total)

	// 値上げしても過去の注文は変わらない
	updated := store.sneakers[sn.ID]
	updated.Price = 999
	store.sneakers[sn.ID] = updated

	detail, err := uc.GetMyOrderDetail(ctx, testUserID, out.ID)
	assert.NoError(t, err)
	assert.Equal(t, 200.0, detail.Total)
	assert.Equal(t, 100.0, detail.Items[0].Price)
}

// 同じキーでの再送は同じ注文を返し、注文は増えない。
func TestOrderUsecase_Checkout_IdempotentReplay(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sn := store.addSneaker("Replay Sneaker", "Nike", 100)
	store.addSize(sn.ID, 42, 5)

	cartUC := newCartUsecase(store)
	_, err := cartUC.AddToCart(ctx, testUserID, usecase.AddCartInput{SneakerID: sn.ID, Size: 42, Quantity: 1})
	assert.NoError(t, err)

	uc := newOrderUsecase(store)
	first, err := uc.Checkout(ctx, testUserID, "same-key")
	assert.NoError(t, err)

	second, err := uc.Checkout(ctx, testUserID, "same-key")
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, store.orders, 1)
}

func TestOrderUsecase_ListMyOrders_NewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sn := store.addSneaker("Order Sneaker", "Nike", 100)
	store.addSize(sn.ID, 42, 10)

	cartUC := newCartUsecase(store)
	uc := newOrderUsecase(store)

	_, err := cartUC.AddToCart(ctx, testUserID, usecase.AddCartInput{SneakerID: sn.ID, Size: 42, Quantity: 1})
	assert.NoError(t, err)
	first, err := uc.Checkout(ctx, testUserID, "key-1")
	assert.NoError(t, err)

	_, err = cartUC.AddToCart(ctx, testUserID, usecase.AddCartInput{SneakerID: sn.ID, Size: 42, Quantity: 2})
	assert.NoError(t, err)
	second, err := uc.Checkout(ctx, testUserID, "key-2")
	assert.NoError(t, err)

	outs, err := uc.ListMyOrders(ctx, testUserID)
	assert.NoError(t, err)
	assert.Len(t, outs, 2)
	assert.Equal(t, second.ID, outs[0].ID)
	assert.Equal(t, first.ID, outs[1].ID)
}

func TestOrderUsecase_GetMyOrderDetail_OtherUsersOrderIsHidden(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sn := store.addSneaker("Order Sneaker", "Nike", 100)
	store.addSize(sn.ID, 42, 5)

	cartUC := newCartUsecase(store)
	uc := newOrderUsecase(store)

	_, err := cartUC.AddToCart(ctx, testUserID, usecase.AddCartInput{SneakerID: sn.ID, Size: 42, Quantity: 1})
	assert.NoError(t, err)
	out, err := uc.Checkout(ctx, testUserID, "key-1")
	assert.NoError(t, err)

	_, err = uc.GetMyOrderDetail(ctx, testUserID+1, out.ID)

	var nf *usecase.NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "Order not found", err.Error())
}
