package models

import (
	"time"
)

// UserFollow 关注边
// 对应表 user_follows
// 唯一键: follower_id + followee_id（有序对，唯一索引是并发兜底）
// 取关即物理删除，边的存在与否是关注关系的唯一事实来源
type UserFollow struct {
	ID         uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	FollowerID uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_followee,priority:1" json:"follower_id"` // 关注人
	FolloweeID uint64    `gorm:"column:followee_id;not null;uniqueIndex:uk_follower_followee,priority:2;index:idx_followee" json:"followee_id"` // 被关注人
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}

// FollowingQueryResult 关注列表联查结果
type FollowingQueryResult struct {
	UserID     uint64    `gorm:"column:user_id" json:"user_id"`
	Username   string    `gorm:"column:username" json:"username"`
	Nickname   string    `gorm:"column:nickname" json:"nickname"`
	Avatar     string    `gorm:"column:avatar" json:"avatar"`
	FollowTime time.Time `gorm:"column:follow_time" json:"follow_time"`
}
