package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

type CategoryInput struct {
	CategoryName string
	Description  string
	ImageURL     string
}

func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	items, err := u.categoryRepo.List(ctx)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, in CategoryInput) (model.Category, error) {
	if err := validateCategoryInput(in); err != nil {
		return model.Category{}, err
	}

	created, err := u.categoryRepo.Create(ctx, model.Category{
		CategoryName: strings.TrimSpace(in.CategoryName),
		Description:  in.Description,
		ImageURL:     in.ImageURL,
	})
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, categoryID int64, in CategoryInput) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}
	if err := validateCategoryInput(in); err != nil {
		return err
	}

	err := u.categoryRepo.Update(ctx, model.Category{
		ID:           categoryID,
		CategoryName: strings.TrimSpace(in.CategoryName),
		Description:  in.Description,
		ImageURL:     in.ImageURL,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CategoryUsecase) Delete(ctx context.Context, categoryID int64) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	err := u.categoryRepo.Delete(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validateCategoryInput(in CategoryInput) error {
	name := strings.TrimSpace(in.CategoryName)
	if len(name) < 2 || len(name) > 100 {
		return NewHTTPError(http.StatusBadRequest, "category_name must be between 2 and 100 characters")
	}
	return nil
}
