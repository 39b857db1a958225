package models

import "time"

// Users 用户表，ID 由雪花算法生成，关闭自增
type Users struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username   string    `gorm:"column:username;type:varchar(64);uniqueIndex:idx_users_username;not null" json:"username"`
	Email      string    `gorm:"column:email;type:varchar(128);default:''" json:"email"`
	Password   string    `gorm:"column:password;type:varchar(128);not null" json:"-"`
	Avatar     string    `gorm:"column:avatar;type:varchar(255);default:''" json:"avatar"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (Users) TableName() string {
	return "users"
}
