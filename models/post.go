package models

import (
	"time"
)

// Post 帖子表
// ID 由 snowflake 生成
// status: 1=正常 0=已删除
type Post struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_status" json:"user_id"`
	Caption   string    `gorm:"column:caption;type:text;not null" json:"caption"`
	MediaURL  string    `gorm:"column:media_url;not null;default:''" json:"media_url"`
	Status    int       `gorm:"column:status;not null;default:1;index:idx_user_status" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
