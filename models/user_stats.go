package models

import (
	"time"
)

// UserStats 用户计数缓存
// 计数是关注边/帖子行的派生缓存，只能由计数层随关系变更原子增减，
// 线上路径永不全表重算（重算只发生在离线修复）
type UserStats struct {
	ID             uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID         uint64    `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	FollowerCount  uint32    `gorm:"column:follower_count;not null;default:0" json:"follower_count"`
	FollowingCount uint32    `gorm:"column:following_count;not null;default:0" json:"following_count"`
	PostCount      uint32    `gorm:"column:post_count;not null;default:0" json:"post_count"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
