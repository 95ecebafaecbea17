package httpapi

import (
	"context"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/service"
)

type stubDepartments struct {
	listFn   func(ctx context.Context, query service.ListQuery) ([]service.DepartmentDTO, int64, error)
	getFn    func(ctx context.Context, id uint) (service.DepartmentDTO, error)
	createFn func(ctx context.Context, input service.DepartmentInput) (service.DepartmentDTO, error)
	updateFn func(ctx context.Context, id uint, input service.DepartmentInput) (service.DepartmentDTO, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (s stubDepartments) List(ctx context.Context, query service.ListQuery) ([]service.DepartmentDTO, int64, error) {
	if s.listFn == nil {
		return nil, 0, nil
	}
	return s.listFn(ctx, query)
}

func (s stubDepartments) Get(ctx context.Context, id uint) (service.DepartmentDTO, error) {
	if s.getFn == nil {
		return service.DepartmentDTO{}, nil
	}
	return s.getFn(ctx, id)
}

func (s stubDepartments) Create(ctx context.Context, input service.DepartmentInput) (service.DepartmentDTO, error) {
	if s.createFn == nil {
		return service.DepartmentDTO{}, nil
	}
	return s.createFn(ctx, input)
}

func (s stubDepartments) Update(ctx context.Context, id uint, input service.DepartmentInput) (service.DepartmentDTO, error) {
	if s.updateFn == nil {
		return service.DepartmentDTO{}, nil
	}
	return s.updateFn(ctx, id, input)
}

func (s stubDepartments) Delete(ctx context.Context, id uint) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubAssetStores struct {
	listFn           func(ctx context.Context, query service.AssetListQuery) ([]service.AssetStoreDTO, int64, error)
	getFn            func(ctx context.Context, id uint) (service.AssetStoreDTO, error)
	createOrUpdateFn func(ctx context.Context, input service.AssetStoreInput) (service.AssetStoreDTO, bool, error)
	updateFn         func(ctx context.Context, id uint, input service.AssetStoreInput) (service.AssetStoreDTO, error)
	deleteFn         func(ctx context.Context, id uint) error
	bulkUploadFn     func(ctx context.Context, plant string, rows []service.BulkAssetRow) (service.BulkUploadResult, error)
	appendTransferFn func(ctx context.Context, assetID uint, input service.TransferInput) (service.TransferLogDTO, error)
	listTransfersFn  func(ctx context.Context, assetID uint) ([]service.TransferLogDTO, error)
}

func (s stubAssetStores) List(ctx context.Context, query service.AssetListQuery) ([]service.AssetStoreDTO, int64, error) {
	if s.listFn == nil {
		return nil, 0, nil
	}
	return s.listFn(ctx, query)
}

func (s stubAssetStores) Get(ctx context.Context, id uint) (service.AssetStoreDTO, error) {
	if s.getFn == nil {
		return service.AssetStoreDTO{}, nil
	}
	return s.getFn(ctx, id)
}

func (s stubAssetStores) CreateOrUpdate(ctx context.Context, input service.AssetStoreInput) (service.AssetStoreDTO, bool, error) {
	if s.createOrUpdateFn == nil {
		return service.AssetStoreDTO{}, false, nil
	}
	return s.createOrUpdateFn(ctx, input)
}

func (s stubAssetStores) Update(ctx context.Context, id uint, input service.AssetStoreInput) (service.AssetStoreDTO, error) {
	if s.updateFn == nil {
		return service.AssetStoreDTO{}, nil
	}
	return s.updateFn(ctx, id, input)
}

func (s stubAssetStores) Delete(ctx context.Context, id uint) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s stubAssetStores) BulkUpload(ctx context.Context, plant string, rows []service.BulkAssetRow) (service.BulkUploadResult, error) {
	if s.bulkUploadFn == nil {
		return service.BulkUploadResult{}, nil
	}
	return s.bulkUploadFn(ctx, plant, rows)
}

func (s stubAssetStores) AppendTransfer(ctx context.Context, assetID uint, input service.TransferInput) (service.TransferLogDTO, error) {
	if s.appendTransferFn == nil {
		return service.TransferLogDTO{}, nil
	}
	return s.appendTransferFn(ctx, assetID, input)
}

func (s stubAssetStores) ListTransfers(ctx context.Context, assetID uint) ([]service.TransferLogDTO, error) {
	if s.listTransfersFn == nil {
		return nil, nil
	}
	return s.listTransfersFn(ctx, assetID)
}

type stubUsers struct {
	listFn func(ctx context.Context, query service.UserListQuery) ([]service.UserDTO, int64, error)
}

func (s stubUsers) List(ctx context.Context, query service.UserListQuery) ([]service.UserDTO, int64, error) {
	if s.listFn == nil {
		return nil, 0, nil
	}
	return s.listFn(ctx, query)
}

type stubAuth struct {
	signupFn func(ctx context.Context, input service.SignupInput) (service.AuthResult, error)
	signinFn func(ctx context.Context, input service.SigninInput) (service.AuthResult, error)
	meFn     func(ctx context.Context, userID uint) (service.UserDTO, error)
}

func (s stubAuth) Signup(ctx context.Context, input service.SignupInput) (service.AuthResult, error) {
	if s.signupFn == nil {
		return service.AuthResult{}, nil
	}
	return s.signupFn(ctx, input)
}

func (s stubAuth) Signin(ctx context.Context, input service.SigninInput) (service.AuthResult, error) {
	if s.signinFn == nil {
		return service.AuthResult{}, nil
	}
	return s.signinFn(ctx, input)
}

func (s stubAuth) Me(ctx context.Context, userID uint) (service.UserDTO, error) {
	if s.meFn == nil {
		return service.UserDTO{}, nil
	}
	return s.meFn(ctx, userID)
}
