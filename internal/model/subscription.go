package model

import "time"

// Subscription 订阅关系模型
// 唯一索引保证不重复订阅，CHECK 约束禁止订阅自己的频道
type Subscription struct {
	ID        int64 `gorm:"primaryKey;autoIncrement;comment:订阅记录ID" json:"id"`
	UserID    int64 `gorm:"not null;uniqueIndex:uq_subscriptions_user_channel;index:idx_subscriptions_user_id;comment:订阅者用户ID" json:"user_id"`
	ChannelID int64 `gorm:"not null;uniqueIndex:uq_subscriptions_user_channel;index:idx_subscriptions_channel_id;check:chk_no_self_subscribe,user_id <> channel_id;comment:被订阅频道用户ID" json:"channel_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;comment:订阅时间" json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
