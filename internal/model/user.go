package model

import "time"

// User 用户模型（用户即频道）
type User struct {
	ID           int64   `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Username     string  `gorm:"size:50;not null;uniqueIndex;comment:用户名" json:"username"`
	Email        *string `gorm:"size:100;uniqueIndex;comment:邮箱" json:"email"`
	PasswordHash string  `gorm:"size:255;not null;comment:密码哈希" json:"-"` // json:"-" 序列化时忽略密码

	ProfileImage       *string `gorm:"size:500;comment:头像地址" json:"profile_image"`
	ChannelDescription *string `gorm:"type:text;comment:频道简介" json:"channel_description"`

	CreatedAt time.Time `gorm:"autoCreateTime;comment:注册时间" json:"created_at"`

	// 关联关系（删除用户时级联清理其所有内容）
	Videos        []Video        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"videos,omitempty"`
	Likes         []Like         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
	Comments      []Comment      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Views         []View         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"views,omitempty"`
	Subscriptions []Subscription `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"subscriptions,omitempty"`
}

func (User) TableName() string {
	return "users"
}
