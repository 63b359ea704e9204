package usecase_test

import (
	"context"
	"errors"
	"testing"

	"sneakershop/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func newSneakerUsecase(store *fakeStore) *usecase.SneakerUsecase {
	return usecase.NewSneakerUsecase(store.Sneakers(), store.Inventory(), &fakeTxManager{store: store})
}

func TestSneakerUsecase_CreateSneaker_Validation(t *testing.T) {
	ctx := context.Background()
	uc := newSneakerUsecase(newFakeStore())

	var ii *usecase.InvalidInputError

	_, err := uc.CreateSneaker(ctx, usecase.CreateSneakerInput{Brand: "Nike", Price: 100})
	assert.True(t, errors.As(err, &ii))

	_, err = uc.CreateSneaker(ctx, usecase.CreateSneakerInput{Name: "Air Max", Price: 100})
	assert.True(t, errors.As(err, &ii))

	_, err = uc.CreateSneaker(ctx, usecase.CreateSneakerInput{Name: "Air Max", Brand: "Nike", Price: -1})
	assert.True(t, errors.As(err, &ii))
}

// スニーカー削除はサイズ行も同一トランザクションで消す（明示カスケード）。
func TestSneakerUsecase_DeleteSneaker_CascadesSizes(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sn := store.addSneaker("Doomed", "Nike", 100)
	store.addSize(sn.ID, 42, 5)
	store.addSize(sn.ID, 43, 3)

	uc := newSneakerUsecase(store)

	assert.NoError(t, uc.DeleteSneaker(ctx, sn.ID))

	_, err := uc.GetSneaker(ctx, sn.ID)
	var nf *usecase.NotFoundError
	assert.True(t, errors.As(err, &nf))

	assert.Equal(t, int64(-1), store.stockOf(sn.ID, 42))
	assert.Equal(t, int64(-1), store.stockOf(sn.ID, 43))
}

func TestSneakerUsecase_SetSizeStock_UpsertsRow(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sn := store.addSneaker("Stocked", "Nike", 100)

	uc := newSneakerUsecase(store)

	row, err := uc.SetSizeStock(ctx, sn.ID, 42, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), row.Stock)

	// 既存行は現在値の上書き
	row, err = uc.SetSizeStock(ctx, sn.ID, 42, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), row.Stock)
	assert.Equal(t, int64(2), store.stockOf(sn.ID, 42))
}

func TestSneakerUsecase_SetSizeStock_Validation(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sn := store.addSneaker("Stocked", "Nike", 100)

	uc := newSneakerUsecase(store)

	var ii *usecase.InvalidInputError
	_, err := uc.SetSizeStock(ctx, sn.ID, 0, 5)
	assert.True(t, errors.As(err, &ii))

	_, err = uc.SetSizeStock(ctx, sn.ID, 42, -1)
	assert.True(t, errors.As(err, &ii))

	var nf *usecase.NotFoundError
	_, err = uc.SetSizeStock(ctx, 999999, 42, 5)
	assert.True(t, errors.As(err, &nf))
}

func TestSneakerUsecase_ListSneakers_GenderFilter(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	uc := newSneakerUsecase(store)

	_, err := uc.CreateSneaker(ctx, usecase.CreateSneakerInput{Name: "M", Brand: "Nike", Price: 100, Gender: "men"})
	assert.NoError(t, err)
	_, err = uc.CreateSneaker(ctx, usecase.CreateSneakerInput{Name: "W", Brand: "Nike", Price: 100, Gender: "women"})
	assert.NoError(t, err)

	men, err := uc.ListSneakers(ctx, "men")
	assert.NoError(t, err)
	assert.Len(t, men, 1)
	assert.Equal(t, "M", men[0].Name)

	// 不明な値は絞り込まない
	all, err := uc.ListSneakers(ctx, "unisex")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}
