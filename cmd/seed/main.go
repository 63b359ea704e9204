package main

import (
	"context"
	"errors"
	"log"

	"sneakershop/internal/domain/model"
	"sneakershop/internal/infra/db"
	infraRepo "sneakershop/internal/infra/repository"
	repo "sneakershop/internal/repository"

	"github.com/joho/godotenv"
)

var (
	menSizes   = []int{41, 42, 43, 44, 45, 46}
	womenSizes = []int{35, 36, 37, 38, 39, 40, 41}
)

const defaultStock = 10

// 既存スニーカーに対して、性別ごとの標準サイズ行を作る。
// すでにあるサイズ行は在庫も含めて触らない。
func main() {
	_ = godotenv.Load()

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(&model.Sneaker{}, &model.SneakerSize{}); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	sneakerRepo := infraRepo.NewSneakerGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)

	sneakers, err := sneakerRepo.List(ctx, repo.SneakerListQuery{})
	if err != nil {
		log.Fatal(err)
	}
	if len(sneakers) == 0 {
		log.Println("no sneakers found")
		return
	}

	created := 0
	for _, s := range sneakers {
		sizes := menSizes
		if s.Gender == "women" {
			sizes = womenSizes
		}

		for _, size := range sizes {
			_, err := inventoryRepo.FindSize(ctx, s.ID, size)
			if err == nil {
				continue
			}
			if !errors.Is(err, repo.ErrNotFound) {
				log.Fatal(err)
			}

			if _, err := inventoryRepo.UpsertSize(ctx, s.ID, size, defaultStock); err != nil {
				log.Fatal(err)
			}
			created++
		}
	}

	log.Printf("created %d size rows", created)
}
