package models

import (
	"time"
)

// Users 用户表
// username/email 均为唯一键，注册冲突由唯一索引兜底
type Users struct {
	ID         uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Username   string    `gorm:"column:username;not null;uniqueIndex:uk_username" json:"username"`
	Email      string    `gorm:"column:email;not null;uniqueIndex:uk_email" json:"email"`
	Nickname   string    `gorm:"column:nickname;not null;default:''" json:"nickname"`
	Avatar     string    `gorm:"column:avatar;not null;default:''" json:"avatar"`
	Bio        string    `gorm:"column:bio;not null;default:''" json:"bio"`
	Credential string    `gorm:"column:credential;not null;default:''" json:"-"` // 由上游认证系统写入，本服务不解释
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
