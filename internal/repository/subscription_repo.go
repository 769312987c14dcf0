package repository

import (
	"vibetube-go/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create 创建订阅关系
func (r *SubscriptionRepository) Create(userID, channelID int64) (*model.Subscription, error) {
	sub := &model.Subscription{UserID: userID, ChannelID: channelID}
	if err := r.db.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// Delete 删除订阅关系，返回是否真的删除了
func (r *SubscriptionRepository) Delete(userID, channelID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND channel_id = ?", userID, channelID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查订阅关系是否存在
func (r *SubscriptionRepository) Exists(userID, channelID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("user_id = ? AND channel_id = ?", userID, channelID).
		Count(&count).Error
	return count > 0, err
}

// CountByChannel 统计频道的订阅者数量
func (r *SubscriptionRepository) CountByChannel(channelID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}
