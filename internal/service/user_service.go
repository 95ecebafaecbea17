package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/models"
)

// userSortColumns whitelists sortBy values; anything else falls back to
// creation time. Raw interpolation of the query parameter would be an
// injection vector.
var userSortColumns = map[string]string{
	"name":      "name",
	"username":  "username",
	"email":     "email",
	"mobile":    "mobile",
	"createdAt": "created_at",
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List(ctx context.Context, query UserListQuery) ([]UserDTO, int64, error) {
	query.ListQuery = normalizeListQuery(query.ListQuery)

	column, ok := userSortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(query.SortOrder, "ASC") {
		direction = "ASC"
	}

	tx := s.db.WithContext(ctx).Model(&models.User{})
	tx = applySearch(tx, query.Search, "name", "username", "email", "mobile")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	var users []models.User
	if err := tx.
		Order(fmt.Sprintf("%s %s, id DESC", column, direction)).
		Limit(query.Limit).
		Offset(query.offset()).
		Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	dtos := make([]UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, userToDTO(user))
	}
	return dtos, total, nil
}

// userToDTO deliberately drops the password hash; no read path may expose
// the credential field.
func userToDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Email:     user.Email,
		Mobile:    user.Mobile,
		CreatedAt: user.CreatedAt,
	}
}
