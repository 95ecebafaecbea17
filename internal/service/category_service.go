package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/apperror"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/models"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List(ctx context.Context, query ListQuery) ([]CategoryDTO, int64, error) {
	query = normalizeListQuery(query)

	tx := s.db.WithContext(ctx).Model(&models.Category{})
	tx = applySearch(tx, query.Search, "name", "plant")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	var categories []models.Category
	if err := tx.
		Order("created_at DESC, id DESC").
		Limit(query.Limit).
		Offset(query.offset()).
		Find(&categories).Error; err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, categoryToDTO(category))
	}
	return dtos, total, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (CategoryDTO, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CategoryDTO{}, apperror.New(apperror.CodeNotFound, "Category not found")
		}
		return CategoryDTO{}, fmt.Errorf("load category: %w", err)
	}

	return categoryToDTO(category), nil
}

func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (CategoryDTO, error) {
	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return CategoryDTO{}, err
	}
	plant, err := normalizeRequiredString(input.Plant, "plant")
	if err != nil {
		return CategoryDTO{}, err
	}

	exists, err := s.nameExistsInPlant(ctx, name, plant, nil)
	if err != nil {
		return CategoryDTO{}, err
	}
	if exists {
		return CategoryDTO{}, apperror.New(apperror.CodeConflict, "Category already exists in this plant")
	}

	category := models.Category{
		Name:  name,
		Plant: plant,
	}

	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return CategoryDTO{}, mapDatabaseError(err)
	}

	return categoryToDTO(category), nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, input CategoryInput) (CategoryDTO, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CategoryDTO{}, apperror.New(apperror.CodeNotFound, "Category not found")
		}
		return CategoryDTO{}, fmt.Errorf("load category: %w", err)
	}

	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return CategoryDTO{}, err
	}
	plant, err := normalizeRequiredString(input.Plant, "plant")
	if err != nil {
		return CategoryDTO{}, err
	}

	exists, err := s.nameExistsInPlant(ctx, name, plant, &id)
	if err != nil {
		return CategoryDTO{}, err
	}
	if exists {
		return CategoryDTO{}, apperror.New(apperror.CodeConflict, "Category already exists in this plant")
	}

	if err := s.db.WithContext(ctx).Model(&category).Updates(map[string]interface{}{
		"name":  name,
		"plant": plant,
	}).Error; err != nil {
		return CategoryDTO{}, mapDatabaseError(err)
	}

	return categoryToDTO(category), nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.CodeNotFound, "Category not found")
		}
		return fmt.Errorf("load category: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&models.Category{}, id).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

// Same advisory pre-check as departments: races are possible because the
// (name, plant) pair carries no unique constraint.
func (s *CategoryService) nameExistsInPlant(ctx context.Context, name, plant string, excludeID *uint) (bool, error) {
	query := s.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("LOWER(name) = LOWER(?) AND LOWER(plant) = LOWER(?)", name, plant)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check category uniqueness: %w", err)
	}
	return count > 0, nil
}

func categoryToDTO(category models.Category) CategoryDTO {
	return CategoryDTO{
		ID:        category.ID,
		Name:      category.Name,
		Plant:     category.Plant,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
