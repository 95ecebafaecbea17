package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/apperror"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/models"
)

type DepartmentService struct {
	db *gorm.DB
}

func NewDepartmentService(db *gorm.DB) *DepartmentService {
	return &DepartmentService{db: db}
}

func (s *DepartmentService) List(ctx context.Context, query ListQuery) ([]DepartmentDTO, int64, error) {
	query = normalizeListQuery(query)

	tx := s.db.WithContext(ctx).Model(&models.Department{})
	tx = applySearch(tx, query.Search, "name", "plant")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count departments: %w", err)
	}

	var departments []models.Department
	if err := tx.
		Order("created_at DESC, id DESC").
		Limit(query.Limit).
		Offset(query.offset()).
		Find(&departments).Error; err != nil {
		return nil, 0, fmt.Errorf("list departments: %w", err)
	}

	dtos := make([]DepartmentDTO, 0, len(departments))
	for _, department := range departments {
		dtos = append(dtos, departmentToDTO(department))
	}
	return dtos, total, nil
}

func (s *DepartmentService) Get(ctx context.Context, id uint) (DepartmentDTO, error) {
	var department models.Department
	if err := s.db.WithContext(ctx).First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentDTO{}, apperror.New(apperror.CodeNotFound, "Department not found")
		}
		return DepartmentDTO{}, fmt.Errorf("load department: %w", err)
	}

	return departmentToDTO(department), nil
}

func (s *DepartmentService) Create(ctx context.Context, input DepartmentInput) (DepartmentDTO, error) {
	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return DepartmentDTO{}, err
	}
	plant, err := normalizeRequiredString(input.Plant, "plant")
	if err != nil {
		return DepartmentDTO{}, err
	}

	exists, err := s.nameExistsInPlant(ctx, name, plant, nil)
	if err != nil {
		return DepartmentDTO{}, err
	}
	if exists {
		return DepartmentDTO{}, apperror.New(apperror.CodeConflict, "Department already exists in this plant")
	}

	department := models.Department{
		Name:  name,
		Plant: plant,
	}

	if err := s.db.WithContext(ctx).Create(&department).Error; err != nil {
		return DepartmentDTO{}, mapDatabaseError(err)
	}

	return departmentToDTO(department), nil
}

func (s *DepartmentService) Update(ctx context.Context, id uint, input DepartmentInput) (DepartmentDTO, error) {
	var department models.Department
	if err := s.db.WithContext(ctx).First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentDTO{}, apperror.New(apperror.CodeNotFound, "Department not found")
		}
		return DepartmentDTO{}, fmt.Errorf("load department: %w", err)
	}

	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return DepartmentDTO{}, err
	}
	plant, err := normalizeRequiredString(input.Plant, "plant")
	if err != nil {
		return DepartmentDTO{}, err
	}

	exists, err := s.nameExistsInPlant(ctx, name, plant, &id)
	if err != nil {
		return DepartmentDTO{}, err
	}
	if exists {
		return DepartmentDTO{}, apperror.New(apperror.CodeConflict, "Department already exists in this plant")
	}

	if err := s.db.WithContext(ctx).Model(&department).Updates(map[string]interface{}{
		"name":  name,
		"plant": plant,
	}).Error; err != nil {
		return DepartmentDTO{}, mapDatabaseError(err)
	}

	return departmentToDTO(department), nil
}

func (s *DepartmentService) Delete(ctx context.Context, id uint) error {
	var department models.Department
	if err := s.db.WithContext(ctx).First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.CodeNotFound, "Department not found")
		}
		return fmt.Errorf("load department: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&models.Department{}, id).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

// nameExistsInPlant is a read-then-write pre-check; concurrent creates can
// still race it (no unique constraint backs the (name, plant) pair).
func (s *DepartmentService) nameExistsInPlant(ctx context.Context, name, plant string, excludeID *uint) (bool, error) {
	query := s.db.WithContext(ctx).
		Model(&models.Department{}).
		Where("LOWER(name) = LOWER(?) AND LOWER(plant) = LOWER(?)", name, plant)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check department uniqueness: %w", err)
	}
	return count > 0, nil
}

func departmentToDTO(department models.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:        department.ID,
		Name:      department.Name,
		Plant:     department.Plant,
		CreatedAt: department.CreatedAt,
		UpdatedAt: department.UpdatedAt,
	}
}
