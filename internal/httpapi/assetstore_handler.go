package httpapi

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/apperror"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/service"
)

type AssetStoreHandler struct {
	service service.AssetStores
	logger  *zap.Logger
}

func NewAssetStoreHandler(svc service.AssetStores, logger *zap.Logger) *AssetStoreHandler {
	return &AssetStoreHandler{service: svc, logger: logger}
}

type assetStoreRequest struct {
	AssetNo          string  `json:"assetNo"`
	AssetTag         *string `json:"assetTag"`
	AssetDescription string  `json:"assetDescrition"`
	Quantity         *int    `json:"quantity"`
	DepartmentID     *uint   `json:"departmentId"`
	CategoryID       *uint   `json:"categoryId"`
}

type bulkUploadRequest struct {
	Plant  string                 `json:"plant"`
	Assets []service.BulkAssetRow `json:"assets"`
}

type transferRequest struct {
	TransferFromPlant string `json:"transferFromPlant"`
	TransferToPlant   string `json:"transferToPlant"`
}

func (h *AssetStoreHandler) List(w http.ResponseWriter, r *http.Request) {
	departmentID, err := parseOptionalUintQuery(r, "departmentId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	categoryID, err := parseOptionalUintQuery(r, "categoryId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := service.AssetListQuery{
		ListQuery:    parseListQuery(r),
		DepartmentID: departmentID,
		CategoryID:   categoryID,
	}

	assets, total, err := h.service.List(r.Context(), query)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	normalized := normalizedForPagination(query.ListQuery)
	writeList(w, assets, newPagination(normalized.Page, normalized.Limit, total))
}

func (h *AssetStoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid asset store id")
		return
	}

	asset, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, asset)
}

// CreateOrUpdate is the upsert endpoint: POST with an existing assetNo
// updates that record and reports isUpdate=true with a 200.
func (h *AssetStoreHandler) CreateOrUpdate(w http.ResponseWriter, r *http.Request) {
	var req assetStoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	asset, isUpdate, err := h.service.CreateOrUpdate(r.Context(), service.AssetStoreInput{
		AssetNo:          req.AssetNo,
		AssetTag:         req.AssetTag,
		AssetDescription: req.AssetDescription,
		Quantity:         req.Quantity,
		DepartmentID:     req.DepartmentID,
		CategoryID:       req.CategoryID,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	status := http.StatusCreated
	message := "Asset store created successfully"
	if isUpdate {
		status = http.StatusOK
		message = "Asset store updated successfully"
	}

	writeJSON(w, status, envelope{
		Status:   true,
		Message:  message,
		Data:     asset,
		IsUpdate: &isUpdate,
	})
}

func (h *AssetStoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid asset store id")
		return
	}

	var req assetStoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	asset, err := h.service.Update(r.Context(), id, service.AssetStoreInput{
		AssetNo:          req.AssetNo,
		AssetTag:         req.AssetTag,
		AssetDescription: req.AssetDescription,
		Quantity:         req.Quantity,
		DepartmentID:     req.DepartmentID,
		CategoryID:       req.CategoryID,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeMessageData(w, http.StatusOK, "Asset store updated successfully", asset)
}

func (h *AssetStoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid asset store id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeMessage(w, http.StatusOK, "Asset store deleted successfully")
}

func (h *AssetStoreHandler) BulkUpload(w http.ResponseWriter, r *http.Request) {
	var req bulkUploadRequest
	if err := decodeJSONLenient(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.BulkUpload(r.Context(), req.Plant, req.Assets)
	if err != nil {
		// Bulk upload is the one endpoint that echoes unexpected error
		// detail back to the caller.
		if apperror.GetCode(err) == apperror.CodeInternal {
			h.logger.Error("bulk upload failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, envelope{
				Status:  false,
				Message: "Internal server error during bulk upload",
				Error:   err.Error(),
			})
			return
		}
		respondWithError(w, h.logger, err)
		return
	}

	message := fmt.Sprintf("Bulk upload completed. Created: %d, Updated: %d, Failed: %d",
		len(result.Created), len(result.Updated), result.Failed)
	writeMessageData(w, http.StatusOK, message, result)
}

func (h *AssetStoreHandler) AppendTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid asset store id")
		return
	}

	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	log, err := h.service.AppendTransfer(r.Context(), id, service.TransferInput{
		TransferFromPlant: req.TransferFromPlant,
		TransferToPlant:   req.TransferToPlant,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeMessageData(w, http.StatusCreated, "Transfer recorded successfully", log)
}

func (h *AssetStoreHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid asset store id")
		return
	}

	logs, err := h.service.ListTransfers(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, logs)
}
