package usecase

import (
	"context"
	"errors"
	"strings"

	"sneakershop/internal/domain/model"
	repo "sneakershop/internal/repository"
)

// SneakerUsecase はカタログの公開API。
// 在庫カウンタそのものはReservationEngineだけが動かす。ここで触るのは
// サイズ行の作成・現在値の設定・カスケード削除まで。
type SneakerUsecase struct {
	sneakerRepo   repo.SneakerRepository
	inventoryRepo repo.InventoryRepository
	tx            repo.TransactionManager
}

// DI
func NewSneakerUsecase(
	sneakerRepo repo.SneakerRepository,
	inventoryRepo repo.InventoryRepository,
	tx repo.TransactionManager,
) *SneakerUsecase {
	return &SneakerUsecase{
		sneakerRepo:   sneakerRepo,
		inventoryRepo: inventoryRepo,
		tx:            tx,
	}
}

type CreateSneakerInput struct {
	Name        string
	Brand       string
	Price       float64
	Colorway    string
	Tag         string
	ImageURL    string
	Gender      string
	Description string
}

func (u *SneakerUsecase) ListSneakers(ctx context.Context, gender string) ([]model.Sneaker, error) {
	return u.sneakerRepo.List(ctx, repo.SneakerListQuery{Gender: gender})
}

func (u *SneakerUsecase) GetSneaker(ctx context.Context, id int64) (model.Sneaker, error) {
	s, err := u.sneakerRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Sneaker{}, &NotFoundError{Resource: "Sneaker"}
	}
	if err != nil {
		return model.Sneaker{}, err
	}
	return s, nil
}

func (u *SneakerUsecase) CreateSneaker(ctx context.Context, in CreateSneakerInput) (model.Sneaker, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Sneaker{}, NewInvalidInput("name is required")
	}
	if strings.TrimSpace(in.Brand) == "" {
		return model.Sneaker{}, NewInvalidInput("brand is required")
	}
	if in.Price < 0 {
		return model.Sneaker{}, NewInvalidInput("invalid price")
	}

	return u.sneakerRepo.Create(ctx, model.Sneaker{
		Name:        in.Name,
		Brand:       in.Brand,
		Price:       in.Price,
		Colorway:    in.Colorway,
		Tag:         in.Tag,
		ImageURL:    in.ImageURL,
		Gender:      in.Gender,
		Description: in.Description,
	})
}

// DeleteSneaker はスニーカーと、そのサイズ行を同一トランザクションで消す。
// 所有コレクションの明示的カスケード。ORM任せの暗黙削除はしない。
func (u *SneakerUsecase) DeleteSneaker(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewInvalidInput("invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Inventory().DeleteBySneakerID(ctx, id); err != nil {
			return err
		}
		err := r.Sneakers().DeleteByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "Sneaker"}
		}
		return err
	})
}

// ListSizes はサイズごとの残在庫（eu_size昇順）。
func (u *SneakerUsecase) ListSizes(ctx context.Context, sneakerID int64) ([]model.SneakerSize, error) {
	if _, err := u.sneakerRepo.FindByID(ctx, sneakerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Sneaker"}
		}
		return nil, err
	}
	return u.inventoryRepo.ListBySneakerID(ctx, sneakerID)
}

// SetSizeStock はサイズ行の在庫現在値を設定する（無ければ行を作る）。
func (u *SneakerUsecase) SetSizeStock(ctx context.Context, sneakerID int64, euSize int, stock int64) (model.SneakerSize, error) {
	if euSize <= 0 {
		return model.SneakerSize{}, NewInvalidInput("invalid size")
	}
	if stock < 0 {
		return model.SneakerSize{}, NewInvalidInput("invalid stock")
	}

	if _, err := u.sneakerRepo.FindByID(ctx, sneakerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.SneakerSize{}, &NotFoundError{Resource: "Sneaker"}
		}
		return model.SneakerSize{}, err
	}

	return u.inventoryRepo.UpsertSize(ctx, sneakerID, euSize, stock)
}
