package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/apperror"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/models"
)

type AssetStoreService struct {
	db *gorm.DB
}

func NewAssetStoreService(db *gorm.DB) *AssetStoreService {
	return &AssetStoreService{db: db}
}

func (s *AssetStoreService) List(ctx context.Context, query AssetListQuery) ([]AssetStoreDTO, int64, error) {
	query.ListQuery = normalizeListQuery(query.ListQuery)

	tx := s.db.WithContext(ctx).Model(&models.AssetStore{})
	tx = applySearch(tx, query.Search, "asset_no", "asset_tag", "asset_description")
	if query.DepartmentID != nil {
		tx = tx.Where("department_id = ?", *query.DepartmentID)
	}
	if query.CategoryID != nil {
		tx = tx.Where("category_id = ?", *query.CategoryID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count asset stores: %w", err)
	}

	var assets []models.AssetStore
	if err := tx.
		Preload("Department").
		Preload("Category").
		Order("created_at DESC, id DESC").
		Limit(query.Limit).
		Offset(query.offset()).
		Find(&assets).Error; err != nil {
		return nil, 0, fmt.Errorf("list asset stores: %w", err)
	}

	dtos := make([]AssetStoreDTO, 0, len(assets))
	for _, asset := range assets {
		dtos = append(dtos, assetToDTO(asset))
	}
	return dtos, total, nil
}

func (s *AssetStoreService) Get(ctx context.Context, id uint) (AssetStoreDTO, error) {
	var asset models.AssetStore
	if err := s.db.WithContext(ctx).
		Preload("Department").
		Preload("Category").
		First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssetStoreDTO{}, apperror.New(apperror.CodeNotFound, "Asset store not found")
		}
		return AssetStoreDTO{}, fmt.Errorf("load asset store: %w", err)
	}

	return assetToDTO(asset), nil
}

// CreateOrUpdate upserts on assetNo: an existing record with the same
// asset number is updated in place, otherwise a new one is created. The
// second return value reports which path was taken.
func (s *AssetStoreService) CreateOrUpdate(ctx context.Context, input AssetStoreInput) (AssetStoreDTO, bool, error) {
	assetNo, err := normalizeRequiredString(input.AssetNo, "assetNo")
	if err != nil {
		return AssetStoreDTO{}, false, err
	}
	description, err := normalizeRequiredString(input.AssetDescription, "assetDescrition")
	if err != nil {
		return AssetStoreDTO{}, false, err
	}

	if input.Quantity != nil && *input.Quantity < 0 {
		return AssetStoreDTO{}, false, apperror.New(apperror.CodeValidation, "quantity must be a non-negative integer")
	}

	if err := s.ensureReferences(ctx, input.DepartmentID, input.CategoryID); err != nil {
		return AssetStoreDTO{}, false, err
	}

	var existing models.AssetStore
	findErr := s.db.WithContext(ctx).Where("asset_no = ?", assetNo).First(&existing).Error
	switch {
	case findErr == nil:
		// Omitted quantity/assetTag keep their stored values; the
		// quantity default of 1 applies to creation only.
		quantity := existing.Quantity
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		assetTag := existing.AssetTag
		if input.AssetTag != nil {
			assetTag = trimOptional(input.AssetTag)
		}

		if err := s.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
			"asset_tag":         assetTag,
			"asset_description": description,
			"quantity":          quantity,
			"department_id":     input.DepartmentID,
			"category_id":       input.CategoryID,
		}).Error; err != nil {
			return AssetStoreDTO{}, false, mapDatabaseError(err)
		}

		dto, err := s.Get(ctx, existing.ID)
		return dto, true, err

	case errors.Is(findErr, gorm.ErrRecordNotFound):
		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		asset := models.AssetStore{
			AssetNo:          assetNo,
			AssetTag:         trimOptional(input.AssetTag),
			AssetDescription: description,
			Quantity:         quantity,
			DepartmentID:     input.DepartmentID,
			CategoryID:       input.CategoryID,
		}
		if err := s.db.WithContext(ctx).Create(&asset).Error; err != nil {
			return AssetStoreDTO{}, false, mapDatabaseError(err)
		}

		dto, err := s.Get(ctx, asset.ID)
		return dto, false, err

	default:
		return AssetStoreDTO{}, false, fmt.Errorf("find asset by number: %w", findErr)
	}
}

func (s *AssetStoreService) Update(ctx context.Context, id uint, input AssetStoreInput) (AssetStoreDTO, error) {
	var asset models.AssetStore
	if err := s.db.WithContext(ctx).First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssetStoreDTO{}, apperror.New(apperror.CodeNotFound, "Asset store not found")
		}
		return AssetStoreDTO{}, fmt.Errorf("load asset store: %w", err)
	}

	assetNo, err := normalizeRequiredString(input.AssetNo, "assetNo")
	if err != nil {
		return AssetStoreDTO{}, err
	}
	description, err := normalizeRequiredString(input.AssetDescription, "assetDescrition")
	if err != nil {
		return AssetStoreDTO{}, err
	}

	quantity := asset.Quantity
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	if quantity < 0 {
		return AssetStoreDTO{}, apperror.New(apperror.CodeValidation, "quantity must be a non-negative integer")
	}

	if assetNo != asset.AssetNo {
		var count int64
		if err := s.db.WithContext(ctx).
			Model(&models.AssetStore{}).
			Where("asset_no = ? AND id <> ?", assetNo, id).
			Count(&count).Error; err != nil {
			return AssetStoreDTO{}, fmt.Errorf("check asset number uniqueness: %w", err)
		}
		if count > 0 {
			return AssetStoreDTO{}, apperror.New(apperror.CodeConflict, "Asset number already exists")
		}
	}

	if err := s.ensureReferences(ctx, input.DepartmentID, input.CategoryID); err != nil {
		return AssetStoreDTO{}, err
	}

	if err := s.db.WithContext(ctx).Model(&asset).Updates(map[string]interface{}{
		"asset_no":          assetNo,
		"asset_tag":         trimOptional(input.AssetTag),
		"asset_description": description,
		"quantity":          quantity,
		"department_id":     input.DepartmentID,
		"category_id":       input.CategoryID,
	}).Error; err != nil {
		return AssetStoreDTO{}, mapDatabaseError(err)
	}

	return s.Get(ctx, id)
}

func (s *AssetStoreService) Delete(ctx context.Context, id uint) error {
	var asset models.AssetStore
	if err := s.db.WithContext(ctx).First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.CodeNotFound, "Asset store not found")
		}
		return fmt.Errorf("load asset store: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&models.AssetStore{}, id).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

// BulkUpload reconciles a spreadsheet-shaped batch against the store in a
// single transaction. Row-level validation failures are recorded and
// skipped; any unexpected error rolls the whole batch back.
func (s *AssetStoreService) BulkUpload(ctx context.Context, plant string, rows []BulkAssetRow) (BulkUploadResult, error) {
	result := BulkUploadResult{
		Errors:  []string{},
		Created: []AssetStoreDTO{},
		Updated: []AssetStoreDTO{},
	}

	plant = strings.TrimSpace(plant)
	if plant == "" {
		return result, apperror.New(apperror.CodeValidation, "Plant is required")
	}
	if len(rows) == 0 {
		return result, apperror.New(apperror.CodeValidation, "No assets data provided")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var departments []models.Department
		if err := tx.Select("id", "name").Where("plant = ?", plant).Find(&departments).Error; err != nil {
			return fmt.Errorf("load plant departments: %w", err)
		}
		var categories []models.Category
		if err := tx.Select("id", "name").Where("plant = ?", plant).Find(&categories).Error; err != nil {
			return fmt.Errorf("load plant categories: %w", err)
		}

		departmentNames := make(map[string]uint, len(departments))
		departmentIDs := make(map[uint]uint, len(departments))
		for _, department := range departments {
			departmentNames[strings.ToLower(department.Name)] = department.ID
			departmentIDs[department.ID] = department.ID
		}
		categoryNames := make(map[string]uint, len(categories))
		categoryIDs := make(map[uint]uint, len(categories))
		for _, category := range categories {
			categoryNames[strings.ToLower(category.Name)] = category.ID
			categoryIDs[category.ID] = category.ID
		}

		// One scan classifies every row as create-vs-update without
		// per-row existence queries.
		var existing []models.AssetStore
		if err := tx.Select("id", "asset_no").Find(&existing).Error; err != nil {
			return fmt.Errorf("load existing asset numbers: %w", err)
		}
		existingByNo := make(map[string]uint, len(existing))
		for _, asset := range existing {
			existingByNo[asset.AssetNo] = asset.ID
		}

		type pendingUpdate struct {
			id     uint
			fields map[string]interface{}
		}
		var toCreate []models.AssetStore
		var toUpdate []pendingUpdate

		for i, row := range rows {
			// Row numbers match the source spreadsheet, whose first
			// data row sits under a header.
			rowNumber := i + 2

			assetNo := strings.TrimSpace(string(row.AssetNo))
			description := strings.TrimSpace(string(row.AssetDescription))
			if assetNo == "" || description == "" || row.Quantity == nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Missing required fields", rowNumber))
				continue
			}
			if !row.Quantity.Valid || row.Quantity.Value < 0 {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Invalid quantity", rowNumber))
				continue
			}

			departmentID, refErr := resolveReference(string(row.DepartmentID), row.DepartmentName, departmentNames, departmentIDs, "Department")
			if refErr != "" {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", rowNumber, refErr))
				continue
			}
			categoryID, refErr := resolveReference(string(row.CategoryID), row.CategoryName, categoryNames, categoryIDs, "Category")
			if refErr != "" {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", rowNumber, refErr))
				continue
			}

			var assetTag *string
			if tag := strings.TrimSpace(string(row.AssetTag)); tag != "" {
				assetTag = &tag
			}

			if existingID, ok := existingByNo[assetNo]; ok {
				toUpdate = append(toUpdate, pendingUpdate{
					id: existingID,
					fields: map[string]interface{}{
						"asset_no":          assetNo,
						"asset_tag":         assetTag,
						"asset_description": description,
						"quantity":          row.Quantity.Value,
						"department_id":     departmentID,
						"category_id":       categoryID,
					},
				})
			} else {
				toCreate = append(toCreate, models.AssetStore{
					AssetNo:          assetNo,
					AssetTag:         assetTag,
					AssetDescription: description,
					Quantity:         row.Quantity.Value,
					DepartmentID:     departmentID,
					CategoryID:       categoryID,
				})
			}
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return mapDatabaseError(err)
			}
			for _, created := range toCreate {
				result.Created = append(result.Created, assetToDTO(created))
			}
			result.Success += len(toCreate)
		}

		if len(toUpdate) > 0 {
			ids := make([]uint, 0, len(toUpdate))
			for _, update := range toUpdate {
				if err := tx.Model(&models.AssetStore{}).Where("id = ?", update.id).Updates(update.fields).Error; err != nil {
					return mapDatabaseError(err)
				}
				ids = append(ids, update.id)
			}

			var updated []models.AssetStore
			if err := tx.Where("id IN ?", ids).Find(&updated).Error; err != nil {
				return fmt.Errorf("reload updated assets: %w", err)
			}
			for _, asset := range updated {
				result.Updated = append(result.Updated, assetToDTO(asset))
			}
			result.Success += len(toUpdate)
		}

		return nil
	})
	if err != nil {
		return BulkUploadResult{Errors: []string{}, Created: []AssetStoreDTO{}, Updated: []AssetStoreDTO{}}, err
	}

	return result, nil
}

func (s *AssetStoreService) AppendTransfer(ctx context.Context, assetID uint, input TransferInput) (TransferLogDTO, error) {
	fromPlant, err := normalizeRequiredString(input.TransferFromPlant, "transferFromPlant")
	if err != nil {
		return TransferLogDTO{}, err
	}
	toPlant, err := normalizeRequiredString(input.TransferToPlant, "transferToPlant")
	if err != nil {
		return TransferLogDTO{}, err
	}

	var asset models.AssetStore
	if err := s.db.WithContext(ctx).First(&asset, assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TransferLogDTO{}, apperror.New(apperror.CodeNotFound, "Asset store not found")
		}
		return TransferLogDTO{}, fmt.Errorf("load asset store: %w", err)
	}

	log := models.TransferLog{
		AssetID:           assetID,
		TransferFromPlant: fromPlant,
		TransferToPlant:   toPlant,
	}
	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		return TransferLogDTO{}, mapDatabaseError(err)
	}

	return transferToDTO(log), nil
}

func (s *AssetStoreService) ListTransfers(ctx context.Context, assetID uint) ([]TransferLogDTO, error) {
	var asset models.AssetStore
	if err := s.db.WithContext(ctx).First(&asset, assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeNotFound, "Asset store not found")
		}
		return nil, fmt.Errorf("load asset store: %w", err)
	}

	var logs []models.TransferLog
	if err := s.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("created_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list transfer logs: %w", err)
	}

	dtos := make([]TransferLogDTO, 0, len(logs))
	for _, log := range logs {
		dtos = append(dtos, transferToDTO(log))
	}
	return dtos, nil
}

// ensureReferences verifies each supplied foreign key independently so a
// missing category is reported even when no department was given.
func (s *AssetStoreService) ensureReferences(ctx context.Context, departmentID, categoryID *uint) error {
	if departmentID != nil {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Department{}).Where("id = ?", *departmentID).Count(&count).Error; err != nil {
			return fmt.Errorf("check department existence: %w", err)
		}
		if count == 0 {
			return apperror.New(apperror.CodeValidation, "Department not found")
		}
	}
	if categoryID != nil {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", *categoryID).Count(&count).Error; err != nil {
			return fmt.Errorf("check category existence: %w", err)
		}
		if count == 0 {
			return apperror.New(apperror.CodeValidation, "Category not found")
		}
	}
	return nil
}

// resolveReference maps a human-supplied department/category reference to
// an id scoped to the request's plant. Precedence: numeric id, then the
// explicit name field, then a non-numeric id value treated as a name.
// Returns a nil id when no reference was supplied at all.
func resolveReference(rawID, explicitName string, nameMap map[string]uint, idMap map[uint]uint, label string) (*uint, string) {
	rawID = strings.TrimSpace(rawID)
	explicitName = strings.TrimSpace(explicitName)

	if rawID != "" {
		if numeric, err := strconv.ParseFloat(rawID, 64); err == nil {
			// Float to uint conversion is unspecified out of range, so
			// negative and fractional values are rejected before it.
			if numeric < 0 || numeric != math.Trunc(numeric) || numeric > math.MaxUint32 {
				return nil, fmt.Sprintf("%s ID %q not found", label, rawID)
			}
			id, ok := idMap[uint(numeric)]
			if !ok {
				return nil, fmt.Sprintf("%s ID %q not found", label, rawID)
			}
			return &id, ""
		}
	}

	if explicitName != "" {
		id, ok := nameMap[strings.ToLower(explicitName)]
		if !ok {
			return nil, fmt.Sprintf("%s %q not found", label, explicitName)
		}
		return &id, ""
	}

	if rawID != "" {
		id, ok := nameMap[strings.ToLower(rawID)]
		if !ok {
			return nil, fmt.Sprintf("%s %q not found", label, rawID)
		}
		return &id, ""
	}

	return nil, ""
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func assetToDTO(asset models.AssetStore) AssetStoreDTO {
	dto := AssetStoreDTO{
		ID:               asset.ID,
		AssetNo:          asset.AssetNo,
		AssetTag:         asset.AssetTag,
		AssetDescription: asset.AssetDescription,
		Quantity:         asset.Quantity,
		DepartmentID:     asset.DepartmentID,
		CategoryID:       asset.CategoryID,
		CreatedAt:        asset.CreatedAt,
		UpdatedAt:        asset.UpdatedAt,
	}
	if asset.Department != nil {
		dto.Department = &RefDTO{ID: asset.Department.ID, Name: asset.Department.Name, Plant: asset.Department.Plant}
	}
	if asset.Category != nil {
		dto.Category = &RefDTO{ID: asset.Category.ID, Name: asset.Category.Name, Plant: asset.Category.Plant}
	}
	return dto
}

func transferToDTO(log models.TransferLog) TransferLogDTO {
	return TransferLogDTO{
		ID:                log.ID,
		AssetID:           log.AssetID,
		TransferFromPlant: log.TransferFromPlant,
		TransferToPlant:   log.TransferToPlant,
		CreatedAt:         log.CreatedAt,
	}
}
