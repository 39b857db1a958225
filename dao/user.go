package dao

import (
	"context"
	"errors"

	"StudyHub/models"

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

// FindByUsername 根据用户名查询，不存在返回 nil
func (d *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	var user models.Users
	err := d.Db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// BatchFindByIDs 批量查询用户
func (d *Users) BatchFindByIDs(ctx context.Context, ids []uint64) ([]*models.Users, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*models.Users
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error
	return users, err
}

// Search 按用户名或邮箱模糊搜索
func (d *Users) Search(ctx context.Context, keyword string, offset, limit int) ([]*models.Users, error) {
	var users []*models.Users
	query := d.Db.WithContext(ctx).Model(&models.Users{})
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("username LIKE ? OR email LIKE ?", like, like)
	}
	err := query.
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	return users, err
}
