package usecase

import (
	"context"
	"errors"

	"sneakershop/internal/domain/model"
	repo "sneakershop/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// 在庫の増減はすべてReservationEngine経由で、1操作=1トランザクション。
type CartUsecase struct {
	tx     repo.TransactionManager
	engine *ReservationEngine
}

func NewCartUsecase(tx repo.TransactionManager, engine *ReservationEngine) *CartUsecase {
	return &CartUsecase{tx: tx, engine: engine}
}

// カート表示用のスニーカー情報（スナップショットではなく現在値）
type CartLineSneaker struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Colorway string  `json:"colorway"`
	Tag      string  `json:"tag"`
	ImageURL string  `json:"image_url"`
}

type CartLine struct {
	ID       int64           `json:"id"`
	Size     int             `json:"size"`
	Quantity int64           `json:"quantity"`
	Sneaker  CartLineSneaker `json:"sneaker"`
}

type AddCartInput struct {
	SneakerID int64
	Size      int
	Quantity  int64
}

// UpdateCartItemOutput はドメインの結果。
// Removedは「数量0以下で行ごと削除した」ことを表し、204への変換はhandlerが行う。
type UpdateCartItemOutput struct {
	Removed bool
	Line    CartLine
}

// GetCart はカートの明細一覧。スニーカー情報は現在のカタログから引く。
// カタログから消えたスニーカーの行は表示しない（エラーにもしない）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) ([]CartLine, error) {
	var lines []CartLine

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := r.CartItems().ListByUserID(ctx, userID)
		if err != nil {
			return err
		}

		lines = make([]CartLine, 0, len(items))
		for _, it := range items {
			s, err := r.Sneakers().FindByID(ctx, it.SneakerID)
			if errors.Is(err, repo.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			lines = append(lines, toCartLine(it, s))
		}
		return nil
	})

	if err != nil {
		return []CartLine{}, err
	}
	return lines, nil
}

// AddToCart はカートに追加（同一スニーカー・同一サイズは数量加算）。
// 取り置きと行の作成/加算は同一トランザクションで行う。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (CartLine, error) {
	if in.SneakerID <= 0 {
		return CartLine{}, NewInvalidInput("invalid sneaker_id")
	}
	if in.Quantity < 1 {
		return CartLine{}, NewInvalidInput("invalid quantity")
	}

	var line CartLine

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		s, err := r.Sneakers().FindByID(ctx, in.SneakerID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "Sneaker"}
		}
		if err != nil {
			return err
		}

		// 既存行があればマージ
		var existingQty int64 = 0
		existing, err := r.CartItems().FindByUserSneakerSize(ctx, userID, in.SneakerID, in.Size)
		if err == nil {
			existingQty = existing.Quantity
		} else if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		// 追加分だけを残在庫に対して検証する
		if err := u.engine.Reserve(ctx, r, in.SneakerID, in.Size, in.Quantity); err != nil {
			var ise *InsufficientStockError
			if errors.As(err, &ise) && existingQty > 0 {
				// マージ時の上限は「残在庫＋本人の取り置き分」で案内する
				return &InsufficientStockError{
					Size:         ise.Size,
					Available:    ise.Available + existingQty,
					IncludesHeld: true,
				}
			}
			return err
		}

		if existingQty > 0 {
			newQty := existingQty + in.Quantity
			if err := r.CartItems().UpdateQuantity(ctx, existing.ID, newQty); err != nil {
				return err
			}
			existing.Quantity = newQty
			line = toCartLine(existing, s)
			return nil
		}

		created, err := r.CartItems().Create(ctx, model.CartItem{
			UserID:    userID,
			SneakerID: in.SneakerID,
			Size:      in.Size,
			Quantity:  in.Quantity,
		})
		if err != nil {
			return err
		}
		line = toCartLine(created, s)
		return nil
	})

	if err != nil {
		return CartLine{}, err
	}
	return line, nil
}

// UpdateCartItem は数量変更。quantity<=0は行の削除＋全量在庫戻し。
// 増量できないときは明細も在庫も変更しない。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID int64, cartItemID int64, quantity int64) (UpdateCartItemOutput, error) {
	if cartItemID <= 0 {
		return UpdateCartItemOutput{}, NewInvalidInput("invalid id")
	}

	var out UpdateCartItemOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := r.CartItems().FindOwnedByID(ctx, cartItemID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "Cart item"}
		}
		if err != nil {
			return err
		}

		if quantity <= 0 {
			// 行を消して取り置きを全量戻す
			if err := u.engine.Release(ctx, r, item.SneakerID, item.Size, item.Quantity); err != nil {
				return err
			}
			if err := r.CartItems().DeleteByID(ctx, item.ID); err != nil {
				return err
			}
			out = UpdateCartItemOutput{Removed: true}
			return nil
		}

		if err := u.engine.Adjust(ctx, r, item.SneakerID, item.Size, item.Quantity, quantity); err != nil {
			return err
		}
		if err := r.CartItems().UpdateQuantity(ctx, item.ID, quantity); err != nil {
			return err
		}

		s, err := r.Sneakers().FindByID(ctx, item.SneakerID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "Sneaker"}
		}
		if err != nil {
			return err
		}

		item.Quantity = quantity
		out = UpdateCartItemOutput{Line: toCartLine(item, s)}
		return nil
	})

	if err != nil {
		return UpdateCartItemOutput{}, err
	}
	return out, nil
}

// DeleteCartItem は明細削除。取り置きは全量在庫へ戻す。
func (u *CartUsecase) DeleteCartItem(ctx context.Context, userID int64, cartItemID int64) error {
	if cartItemID <= 0 {
		return NewInvalidInput("invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := r.CartItems().FindOwnedByID(ctx, cartItemID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "Cart item"}
		}
		if err != nil {
			return err
		}

		if err := u.engine.Release(ctx, r, item.SneakerID, item.Size, item.Quantity); err != nil {
			return err
		}
		return r.CartItems().DeleteByID(ctx, item.ID)
	})
}

// ClearAfterCheckout はカートを空にする。在庫は戻さない。
// 取り置きは注文に確定済みなので、チェックアウトの流れ以外から呼ばないこと。
func (u *CartUsecase) ClearAfterCheckout(ctx context.Context, userID int64) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		return r.CartItems().DeleteAllByUserID(ctx, userID)
	})
}

func toCartLine(it model.CartItem, s model.Sneaker) CartLine {
	return CartLine{
		ID:       it.ID,
		Size:     it.Size,
		Quantity: it.Quantity,
		Sneaker: CartLineSneaker{
			ID:       s.ID,
			Name:     s.Name,
			Brand:    s.Brand,
			Price:    s.Price,
			Colorway: s.Colorway,
			Tag:      s.Tag,
			ImageURL: s.ImageURL,
		},
	}
}
