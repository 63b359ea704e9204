package usecase

import (
	"context"
	"errors"

	repo "sneakershop/internal/repository"
)

// ReservationEngine は在庫とカート取り置きの移動規則。
// 状態は持たず、必ず呼び出し側のトランザクション（TxRepos）上で動く。
type ReservationEngine struct{}

func NewReservationEngine() *ReservationEngine {
	return &ReservationEngine{}
}

// Reserve はqty分を在庫から取り置きへ移す。
// サイズ行が無ければSizeUnavailable、在庫不足ならInsufficientStock。
// 失敗時は在庫を一切変更しない。
func (e *ReservationEngine) Reserve(ctx context.Context, r repo.TxRepos, sneakerID int64, size int, qty int64) error {
	if qty <= 0 {
		return NewInvalidInput("invalid quantity")
	}

	// サイズ行の存在チェック
	if _, err := r.Inventory().FindSize(ctx, sneakerID, size); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &SizeUnavailableError{Size: size}
		}
		return err
	}

	// 条件付きUPDATEで減算。並行リクエストでも残数を下回らない。
	ok, err := r.Inventory().DecreaseStockIfEnough(ctx, sneakerID, size, qty)
	if err != nil {
		return err
	}
	if !ok {
		// 残数をエラーに載せて案内する
		row, err := r.Inventory().FindSize(ctx, sneakerID, size)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return &SizeUnavailableError{Size: size}
			}
			return err
		}
		return &InsufficientStockError{Size: size, Available: row.Stock}
	}

	return nil
}

// Release はqty分を取り置きから在庫へ全量戻す。
func (e *ReservationEngine) Release(ctx context.Context, r repo.TxRepos, sneakerID int64, size int, qty int64) error {
	if qty <= 0 {
		return NewInvalidInput("invalid quantity")
	}
	return r.Inventory().IncreaseStock(ctx, sneakerID, size, qty)
}

// Adjust は取り置き数をoldQtyからnewQtyへ変更する。
// 増分は残在庫に対してだけ検証する（本人の取り置き分は二重に数えない）。
func (e *ReservationEngine) Adjust(ctx context.Context, r repo.TxRepos, sneakerID int64, size int, oldQty int64, newQty int64) error {
	diff := newQty - oldQty
	if diff > 0 {
		return e.Reserve(ctx, r, sneakerID, size, diff)
	}
	if diff < 0 {
		return e.Release(ctx, r, sneakerID, size, -diff)
	}
	return nil
}
