package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ListQuery carries pagination and search parameters shared by every list
// operation. Zero values fall back to page=1, limit=10.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
}

type AssetListQuery struct {
	ListQuery
	DepartmentID *uint
	CategoryID   *uint
}

type UserListQuery struct {
	ListQuery
	SortBy    string
	SortOrder string
}

type DepartmentInput struct {
	Name  string
	Plant string
}

type CategoryInput struct {
	Name  string
	Plant string
}

type AssetStoreInput struct {
	AssetNo          string
	AssetTag         *string
	AssetDescription string
	Quantity         *int
	DepartmentID     *uint
	CategoryID       *uint
}

type TransferInput struct {
	TransferFromPlant string
	TransferToPlant   string
}

type SignupInput struct {
	Name     string
	Username string
	Email    string
	Mobile   string
	Password string
}

type SigninInput struct {
	Username string
	Password string
}

type DepartmentDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Plant     string    `json:"plant"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Plant     string    `json:"plant"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RefDTO is the reduced department/category projection attached to asset
// reads: id, name and plant only.
type RefDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Plant string `json:"plant"`
}

type AssetStoreDTO struct {
	ID               uint      `json:"id"`
	AssetNo          string    `json:"assetNo"`
	AssetTag         *string   `json:"assetTag"`
	AssetDescription string    `json:"assetDescrition"`
	Quantity         int       `json:"quantity"`
	DepartmentID     *uint     `json:"departmentId"`
	CategoryID       *uint     `json:"categoryId"`
	Department       *RefDTO   `json:"department,omitempty"`
	Category         *RefDTO   `json:"category,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type TransferLogDTO struct {
	ID                uint      `json:"id"`
	AssetID           uint      `json:"assetId"`
	TransferFromPlant string    `json:"transferFromPlant"`
	TransferToPlant   string    `json:"transferToPlant"`
	CreatedAt         time.Time `json:"createdAt"`
}

type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResult struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// FlexString tolerates spreadsheet-shaped JSON where a cell may arrive as
// either a string or a number; it holds the text form.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}

	return fmt.Errorf("expected string or number, got %s", string(data))
}

// FlexInt accepts a JSON number or a numeric string. Unparsable input is
// kept with Valid=false so a single bad cell fails its row, not the whole
// request body.
type FlexInt struct {
	Value int
	Valid bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		parsed, err := n.Float64()
		if err != nil {
			return nil
		}
		f.Value = int(parsed)
		f.Valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	f.Value = int(parsed)
	f.Valid = true
	return nil
}

// BulkAssetRow is one row of a bulk import request. The department and
// category references each accept a numeric id or a name; the explicit
// *Name fields take precedence over a non-numeric id value.
type BulkAssetRow struct {
	AssetNo          FlexString `json:"assetNo"`
	AssetTag         FlexString `json:"assetTag"`
	AssetDescription FlexString `json:"assetDescrition"`
	Quantity         *FlexInt   `json:"quantity"`
	DepartmentID     FlexString `json:"departmentId"`
	DepartmentName   string     `json:"departmentName"`
	CategoryID       FlexString `json:"categoryId"`
	CategoryName     string     `json:"categoryName"`
}

type BulkUploadResult struct {
	Success int             `json:"success"`
	Failed  int             `json:"failed"`
	Errors  []string        `json:"errors"`
	Created []AssetStoreDTO `json:"created"`
	Updated []AssetStoreDTO `json:"updated"`
}

type Departments interface {
	List(ctx context.Context, query ListQuery) ([]DepartmentDTO, int64, error)
	Get(ctx context.Context, id uint) (DepartmentDTO, error)
	Create(ctx context.Context, input DepartmentInput) (DepartmentDTO, error)
	Update(ctx context.Context, id uint, input DepartmentInput) (DepartmentDTO, error)
	Delete(ctx context.Context, id uint) error
}

type Categories interface {
	List(ctx context.Context, query ListQuery) ([]CategoryDTO, int64, error)
	Get(ctx context.Context, id uint) (CategoryDTO, error)
	Create(ctx context.Context, input CategoryInput) (CategoryDTO, error)
	Update(ctx context.Context, id uint, input CategoryInput) (CategoryDTO, error)
	Delete(ctx context.Context, id uint) error
}

type AssetStores interface {
	List(ctx context.Context, query AssetListQuery) ([]AssetStoreDTO, int64, error)
	Get(ctx context.Context, id uint) (AssetStoreDTO, error)
	CreateOrUpdate(ctx context.Context, input AssetStoreInput) (AssetStoreDTO, bool, error)
	Update(ctx context.Context, id uint, input AssetStoreInput) (AssetStoreDTO, error)
	Delete(ctx context.Context, id uint) error
	BulkUpload(ctx context.Context, plant string, rows []BulkAssetRow) (BulkUploadResult, error)
	AppendTransfer(ctx context.Context, assetID uint, input TransferInput) (TransferLogDTO, error)
	ListTransfers(ctx context.Context, assetID uint) ([]TransferLogDTO, error)
}

type Users interface {
	List(ctx context.Context, query UserListQuery) ([]UserDTO, int64, error)
}

type Auth interface {
	Signup(ctx context.Context, input SignupInput) (AuthResult, error)
	Signin(ctx context.Context, input SigninInput) (AuthResult, error)
	Me(ctx context.Context, userID uint) (UserDTO, error)
}
