package repository

import (
	"context"
	"errors"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// 明細をカート投入順（id asc）で返す
func (r *CartGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

// 商品情報を結合した表示用の一覧（公開商品のみ）
func (r *CartGormRepository) ListLines(ctx context.Context, userID int64) ([]repo.CartLine, error) {
	var lines []repo.CartLine
	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select(`cart_items.id as cart_item_id,
			cart_items.product_id,
			products.product_name,
			products.price as unit_price,
			cart_items.quantity,
			products.stock_quantity,
			products.image_url,
			products.brand,
			cart_items.added_at`).
		Joins("inner join products on products.id = cart_items.product_id").
		Where("cart_items.user_id = ? AND products.is_active = ?", userID, true).
		Order("cart_items.id asc").
		Scan(&lines).Error
	if err != nil {
		return []repo.CartLine{}, err
	}
	return lines, nil
}

// 同一商品は数量加算
func (r *CartGormRepository) Upsert(ctx context.Context, userID int64, productID int64, addQty int64) error {
	if addQty <= 0 {
		return errors.New("invalid quantity")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.CartItem

		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			First(&item).Error

		if err == nil {
			res := tx.Model(&model.CartItem{}).
				Where("id = ?", item.ID).
				Update("quantity", item.Quantity+addQty)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return repo.ErrNotFound
			}
			return nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		//無い場合は新規作成
		newItem := model.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  addQty,
			AddedAt:   time.Now(),
		}
		return tx.Create(&newItem).Error
	})
}

// 明細の数量を更新（本人の明細のみ）
func (r *CartGormRepository) UpdateQuantity(ctx context.Context, cartItemID int64, userID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Update("quantity", qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 明細を削除（本人の明細のみ）
func (r *CartGormRepository) Remove(ctx context.Context, cartItemID int64, userID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Delete(&model.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 全明細を削除して削除件数を返す
func (r *CartGormRepository) Clear(ctx context.Context, userID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// 数量合計
func (r *CartGormRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count *int64
	err := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Select("sum(quantity)").
		Where("user_id = ?", userID).
		Scan(&count).Error
	if err != nil {
		return 0, err
	}
	if count == nil {
		return 0, nil
	}
	return *count, nil
}
