package usecase

import (
	"context"
	"errors"
	"time"

	"sneakershop/internal/domain/model"
	repo "sneakershop/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemOutput struct {
	SneakerID int64   `json:"sneaker_id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	ImageURL  string  `json:"image_url"`
	Size      int     `json:"size"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderOutput struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Total     float64           `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderItemOutput `json:"items"`
}

// Checkout はカートを不変の注文へ変換する。
// 価格は確定時点のカタログ価格をスナップショットし、カートは在庫を戻さずに空にする。
// 全工程が1トランザクション。途中で失敗したら注文もカートも元のまま。
func (u *OrderUsecase) Checkout(ctx context.Context, userID int64, idempotencyKey string) (OrderOutput, error) {
	if idempotencyKey == "" {
		return OrderOutput{}, NewInvalidInput("invalid idempotency key")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 同じキーなら同じ注文を返す
		existing, found, err := r.Orders().FindByIdempotencyKey(ctx, userID, idempotencyKey)
		if err != nil {
			return err
		}
		if found {
			out, err = u.buildOrderOutput(ctx, r, existing)
			return err
		}

		cartItems, err := r.CartItems().ListByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		// 現在価格でスナップショットを作る
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var total float64 = 0

		for _, ci := range cartItems {
			s, err := r.Sneakers().FindByID(ctx, ci.SneakerID)
			if errors.Is(err, repo.ErrNotFound) {
				return &NotFoundError{Resource: "Sneaker"}
			}
			if err != nil {
				return err
			}

			orderItems = append(orderItems, model.OrderItem{
				SneakerID: ci.SneakerID,
				Size:      ci.Size,
				Quantity:  ci.Quantity,
				Price:     s.Price,
			})
			total += float64(ci.Quantity) * s.Price
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:         userID,
			Total:          total,
			IdempotencyKey: idempotencyKey,
			CreatedAt:      time.Now(),
		})
		if err != nil {
			//競合（同時に同じキーが入った等）はもう一回検索して同じ結果を返す
			ex2, found2, err2 := r.Orders().FindByIdempotencyKey(ctx, userID, idempotencyKey)
			if err2 == nil && found2 {
				out, err2 = u.buildOrderOutput(ctx, r, ex2)
				return err2
			}
			return err
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return err
		}

		// カートを空にする。取り置きは注文のものになったので在庫へは戻さない。
		if err := r.CartItems().DeleteAllByUserID(ctx, userID); err != nil {
			return err
		}

		created, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		out, err = u.buildOrderOutput(ctx, r, created)
		return err
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ListMyOrders は本人の注文を新しい順に返す。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return err
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			out, err := u.buildOrderOutput(ctx, r, o)
			if err != nil {
				return err
			}
			outs = append(outs, out)
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewInvalidInput("invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "Order"}
		}
		if err != nil {
			return err
		}
		if o.UserID != userID {
			//他人の注文は「存在しない扱い」にする
			return &NotFoundError{Resource: "Order"}
		}

		out, err = u.buildOrderOutput(ctx, r, o)
		return err
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 明細と表示用スニーカー情報を合わせて返す。
// priceはOrderItemのスナップショット値。スニーカーが消えていても明細は残す。
func (u *OrderUsecase) buildOrderOutput(ctx context.Context, r repo.TxRepos, o model.Order) (OrderOutput, error) {
	items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
	if err != nil {
		return OrderOutput{}, err
	}

	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItem := OrderItemOutput{
			SneakerID: it.SneakerID,
			Size:      it.Size,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}

		s, err := r.Sneakers().FindByID(ctx, it.SneakerID)
		if err == nil {
			outItem.Name = s.Name
			outItem.Brand = s.Brand
			outItem.ImageURL = s.ImageURL
		} else if !errors.Is(err, repo.ErrNotFound) {
			return OrderOutput{}, err
		}

		outItems = append(outItems, outItem)
	}

	return OrderOutput{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		Items:     outItems,
	}, nil
}
