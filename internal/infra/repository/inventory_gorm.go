package repository

import (
	"context"
	"errors"

	"sneakershop/internal/domain/model"
	repo "sneakershop/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// サイズ行を取得
func (r *InventoryGormRepository) FindSize(ctx context.Context, sneakerID int64, euSize int) (model.SneakerSize, error) {
	var row model.SneakerSize

	err := r.db.WithContext(ctx).
		Where("sneaker_id = ? AND eu_size = ?", sneakerID, euSize).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SneakerSize{}, repo.ErrNotFound
	}
	if err != nil {
		return model.SneakerSize{}, err
	}
	return row, nil
}

func (r *InventoryGormRepository) ListBySneakerID(ctx context.Context, sneakerID int64) ([]model.SneakerSize, error) {
	var rows []model.SneakerSize

	if err := r.db.WithContext(ctx).
		Where("sneaker_id = ?", sneakerID).
		Order("eu_size asc").
		Find(&rows).Error; err != nil {
		return []model.SneakerSize{}, err
	}
	return rows, nil
}

// サイズ行を作成、既存なら在庫の現在値を設定
func (r *InventoryGormRepository) UpsertSize(ctx context.Context, sneakerID int64, euSize int, stock int64) (model.SneakerSize, error) {
	var row model.SneakerSize

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Where("sneaker_id = ? AND eu_size = ?", sneakerID, euSize).
			First(&row).Error

		if findErr == nil {
			res := tx.Model(&model.SneakerSize{}).
				Where("id = ?", row.ID).
				Update("stock", stock)
			if res.Error != nil {
				return res.Error
			}
			row.Stock = stock
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		//無い場合は新規作成
		row = model.SneakerSize{
			SneakerID: sneakerID,
			EUSize:    euSize,
			Stock:     stock,
		}
		return tx.Create(&row).Error
	})

	if err != nil {
		return model.SneakerSize{}, err
	}
	return row, nil
}

// 在庫が足りるときだけ減らす
func (r *InventoryGormRepository) DecreaseStockIfEnough(ctx context.Context, sneakerID int64, euSize int, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.SneakerSize{}).
		Where("sneaker_id = ? AND eu_size = ? AND stock >= ?", sneakerID, euSize, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し（カート減量・削除）
func (r *InventoryGormRepository) IncreaseStock(ctx context.Context, sneakerID int64, euSize int, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.SneakerSize{}).
		Where("sneaker_id = ? AND eu_size = ?", sneakerID, euSize).
		Update("stock", gorm.Expr("stock + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// スニーカー削除時のカスケード
func (r *InventoryGormRepository) DeleteBySneakerID(ctx context.Context, sneakerID int64) error {
	return r.db.WithContext(ctx).
		Where("sneaker_id = ?", sneakerID).
		Delete(&model.SneakerSize{}).Error
}
