package repository

import (
	"blog-api/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository 分类数据仓储
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建CategoryRepository实例
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create 创建分类
// 名称唯一约束由数据库兜底，并发下第二个写入者拿到唯一键冲突
func (r *CategoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

// ExistsByName 分类名是否已存在
func (r *CategoryRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Category{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
