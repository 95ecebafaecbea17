package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/apperror"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/service"
)

func TestAssetStoreUpsertReportsIsUpdate(t *testing.T) {
	cases := []struct {
		name        string
		isUpdate    bool
		wantCode    int
		wantMessage string
	}{
		{"create", false, http.StatusCreated, "Asset store created successfully"},
		{"update", true, http.StatusOK, "Asset store updated successfully"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(Services{
				AssetStores: stubAssetStores{
					createOrUpdateFn: func(_ context.Context, input service.AssetStoreInput) (service.AssetStoreDTO, bool, error) {
						if input.AssetNo != "GG-1001" {
							t.Fatalf("unexpected input: %+v", input)
						}
						return service.AssetStoreDTO{ID: 7, AssetNo: input.AssetNo}, tc.isUpdate, nil
					},
				},
			})

			body := strings.NewReader(`{"assetNo":"GG-1001","assetDescrition":"Annealing lehr"}`)
			recorder, resp := doRequest(t, router, http.MethodPost, "/api/v1/asset-stores", body)

			if recorder.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, recorder.Code, recorder.Body.String())
			}
			if resp.Message != tc.wantMessage {
				t.Fatalf("unexpected message: %q", resp.Message)
			}
			if resp.IsUpdate == nil || *resp.IsUpdate != tc.isUpdate {
				t.Fatalf("expected isUpdate=%v, got %v", tc.isUpdate, resp.IsUpdate)
			}
		})
	}
}

func TestBulkUploadSummaryMessage(t *testing.T) {
	router := newTestRouter(Services{
		AssetStores: stubAssetStores{
			bulkUploadFn: func(_ context.Context, plant string, rows []service.BulkAssetRow) (service.BulkUploadResult, error) {
				if plant != "GGL-2" || len(rows) != 2 {
					t.Fatalf("unexpected call: plant=%q rows=%d", plant, len(rows))
				}
				return service.BulkUploadResult{
					Success: 2,
					Failed:  1,
					Errors:  []string{"Row 4: Missing required fields"},
					Created: []service.AssetStoreDTO{{ID: 1}},
					Updated: []service.AssetStoreDTO{{ID: 2}},
				}, nil
			},
		},
	})

	body := strings.NewReader(`{"plant":"GGL-2","assets":[{"assetNo":"A"},{"assetNo":"B"}]}`)
	recorder, resp := doRequest(t, router, http.MethodPost, "/api/v1/asset-stores/bulk-upload", body)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if resp.Message != "Bulk upload completed. Created: 1, Updated: 1, Failed: 1" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}

	var result service.BulkUploadResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(result.Errors) != 1 || result.Errors[0] != "Row 4: Missing required fields" {
		t.Fatalf("row errors must round-trip, got %v", result.Errors)
	}
}

func TestBulkUploadToleratesUnknownColumns(t *testing.T) {
	var got []service.BulkAssetRow
	router := newTestRouter(Services{
		AssetStores: stubAssetStores{
			bulkUploadFn: func(_ context.Context, _ string, rows []service.BulkAssetRow) (service.BulkUploadResult, error) {
				got = rows
				return service.BulkUploadResult{}, nil
			},
		},
	})

	body := strings.NewReader(`{"plant":"GGL-1","assets":[{"assetNo":"A","Serial #":"ignored","Remarks":"ignored"}]}`)
	recorder, _ := doRequest(t, router, http.MethodPost, "/api/v1/asset-stores/bulk-upload", body)

	if recorder.Code != http.StatusOK {
		t.Fatalf("spreadsheet extras must not fail the request, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if len(got) != 1 || got[0].AssetNo != "A" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestBulkUploadEchoesInternalError(t *testing.T) {
	router := newTestRouter(Services{
		AssetStores: stubAssetStores{
			bulkUploadFn: func(context.Context, string, []service.BulkAssetRow) (service.BulkUploadResult, error) {
				return service.BulkUploadResult{}, errors.New("insert batch: connection reset")
			},
		},
	})

	body := strings.NewReader(`{"plant":"GGL-1","assets":[{"assetNo":"A"}]}`)
	recorder, resp := doRequest(t, router, http.MethodPost, "/api/v1/asset-stores/bulk-upload", body)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
	if resp.Message != "Internal server error during bulk upload" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Error != "insert batch: connection reset" {
		t.Fatalf("bulk upload must echo the error detail, got %q", resp.Error)
	}
	if len(resp.Errors) != 0 {
		t.Fatalf("batch-fatal detail belongs in the error field, not the row errors: %v", resp.Errors)
	}
}

func TestBulkUploadValidationStays400(t *testing.T) {
	router := newTestRouter(Services{
		AssetStores: stubAssetStores{
			bulkUploadFn: func(context.Context, string, []service.BulkAssetRow) (service.BulkUploadResult, error) {
				return service.BulkUploadResult{}, apperror.New(apperror.CodeValidation, "Plant is required")
			},
		},
	})

	body := strings.NewReader(`{"assets":[{"assetNo":"A"}]}`)
	recorder, resp := doRequest(t, router, http.MethodPost, "/api/v1/asset-stores/bulk-upload", body)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if resp.Message != "Plant is required" || len(resp.Errors) != 0 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestAssetListForwardsReferenceFilters(t *testing.T) {
	router := newTestRouter(Services{
		AssetStores: stubAssetStores{
			listFn: func(_ context.Context, query service.AssetListQuery) ([]service.AssetStoreDTO, int64, error) {
				if query.DepartmentID == nil || *query.DepartmentID != 4 {
					t.Fatalf("expected departmentId filter, got %+v", query)
				}
				if query.CategoryID != nil {
					t.Fatalf("categoryId must stay unset, got %+v", query)
				}
				return nil, 0, nil
			},
		},
	})

	recorder, _ := doRequest(t, router, http.MethodGet, "/api/v1/asset-stores?departmentId=4", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	recorder, resp := doRequest(t, router, http.MethodGet, "/api/v1/asset-stores?departmentId=abc", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed filter, got %d", recorder.Code)
	}
	if resp.Status {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestTransferEndpoints(t *testing.T) {
	router := newTestRouter(Services{
		AssetStores: stubAssetStores{
			appendTransferFn: func(_ context.Context, assetID uint, input service.TransferInput) (service.TransferLogDTO, error) {
				if assetID != 9 || input.TransferToPlant != "GGL-3" {
					t.Fatalf("unexpected call: id=%d input=%+v", assetID, input)
				}
				return service.TransferLogDTO{ID: 1, AssetID: assetID}, nil
			},
			listTransfersFn: func(_ context.Context, assetID uint) ([]service.TransferLogDTO, error) {
				return nil, apperror.New(apperror.CodeNotFound, "Asset not found")
			},
		},
	})

	body := strings.NewReader(`{"transferFromPlant":"GGL-1","transferToPlant":"GGL-3"}`)
	recorder, resp := doRequest(t, router, http.MethodPost, "/api/v1/asset-stores/9/transfers", body)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if resp.Message != "Transfer recorded successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}

	recorder, resp = doRequest(t, router, http.MethodGet, "/api/v1/asset-stores/9/transfers", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	if resp.Message != "Asset not found" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}
