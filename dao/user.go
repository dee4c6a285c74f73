package dao

import (
	"Pulse/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByID 按ID查询用户
func (u *Users) FindByID(ctx context.Context, id uint64) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "id = ?", id)
}

// FindByUsername 按用户名查询用户
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// ExistsByID 判断用户是否存在
func (u *Users) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	return u.Repo.IsExist(ctx, "id = ?", id)
}

// IsUsernameExist 判断用户名是否被占用
func (u *Users) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ?", username)
}

// IsEmailExist 判断邮箱是否被占用
func (u *Users) IsEmailExist(ctx context.Context, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ?", email)
}

// UpdateByID 更新用户资料
func (u *Users) UpdateByID(ctx context.Context, id uint64, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return u.conn(ctx).
		Model(&models.Users{}).
		Where("id = ?", id).
		Updates(data).Error
}
