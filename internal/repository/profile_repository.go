package repository

import (
	"blog-api/internal/model"

	"gorm.io/gorm"
)

// ProfileRepository 用户资料数据仓储
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository 创建ProfileRepository实例
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create 创建资料
func (r *ProfileRepository) Create(profile *model.Profile) error {
	return r.db.Create(profile).Error
}

// GetByID 根据ID获取资料，预加载所属用户
func (r *ProfileRepository) GetByID(id uint) (*model.Profile, error) {
	var p model.Profile
	if err := r.db.Preload("User").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ExistsByUserID 用户是否已有资料
func (r *ProfileRepository) ExistsByUserID(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Profile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}
