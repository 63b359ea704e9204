package usecase

import (
	"errors"
	"fmt"
)

// ドメインの結果とHTTPステータスを分離する。
// ここではエラーの種類だけを表し、ステータス変換はhandler側のwriteErrorが行う。

// チェックアウト時にカートが空
var ErrEmptyCart = errors.New("Cart is empty")

// 対象が存在しない、または本人のものではない
type NotFoundError struct {
	Resource string // "Sneaker" / "Cart item" / "Order"
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// 要求サイズの在庫行が存在しない
type SizeUnavailableError struct {
	Size int
}

func (e *SizeUnavailableError) Error() string {
	return fmt.Sprintf("Size %d is not available for this sneaker", e.Size)
}

// 要求数が在庫を超えた
// Availableは案内する上限。IncludesHeldがtrueのときは本人の取り置き分も
// 含めた到達可能な最大数（残在庫そのものではない）。
type InsufficientStockError struct {
	Size         int
	Available    int64
	IncludesHeld bool
}

func (e *InsufficientStockError) Error() string {
	if e.IncludesHeld {
		return fmt.Sprintf("Only %d items available for size %d", e.Available, e.Size)
	}
	return fmt.Sprintf("Only %d items left for size %d", e.Available, e.Size)
}

// 入力不正
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func NewInvalidInput(message string) error {
	return &InvalidInputError{Message: message}
}
