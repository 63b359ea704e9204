package repository

import (
	"context"
	"errors"

	"sneakershop/internal/domain/model"
	repo "sneakershop/internal/repository"

	"gorm.io/gorm"
)

type SneakerGormRepository struct {
	db *gorm.DB
}

// DI
func NewSneakerGormRepository(db *gorm.DB) *SneakerGormRepository {
	return &SneakerGormRepository{db: db}
}

func (r *SneakerGormRepository) List(ctx context.Context, q repo.SneakerListQuery) ([]model.Sneaker, error) {
	tx := r.db.WithContext(ctx).Model(&model.Sneaker{})

	// genderは'men'/'women'だけ有効。それ以外は絞らない。
	if q.Gender == "men" || q.Gender == "women" {
		tx = tx.Where("gender = ?", q.Gender)
	}

	var sneakers []model.Sneaker
	if err := tx.Order("id asc").Find(&sneakers).Error; err != nil {
		return []model.Sneaker{}, err
	}
	return sneakers, nil
}

func (r *SneakerGormRepository) FindByID(ctx context.Context, id int64) (model.Sneaker, error) {
	var s model.Sneaker

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Sneaker{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Sneaker{}, err
	}
	return s, nil
}

func (r *SneakerGormRepository) Create(ctx context.Context, s model.Sneaker) (model.Sneaker, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Sneaker{}, err
	}
	return s, nil
}

func (r *SneakerGormRepository) Update(ctx context.Context, s model.Sneaker) error {
	res := r.db.WithContext(ctx).
		Model(&model.Sneaker{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"name":        s.Name,
			"brand":       s.Brand,
			"price":       s.Price,
			"colorway":    s.Colorway,
			"tag":         s.Tag,
			"image_url":   s.ImageURL,
			"gender":      s.Gender,
			"description": s.Description,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SneakerGormRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Sneaker{}, id)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
