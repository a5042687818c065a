package service

import (
	"strings"

	"blog-api/internal/model"
	"blog-api/internal/repository"
)

// CategoryService 分类业务逻辑
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

// NewCategoryService 创建CategoryService实例
func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create 创建分类
// 并发创建同名分类时：恰好一个成功，另一个因唯一键冲突得到ErrDuplicate
func (s *CategoryService) Create(name string, description *string) (*model.Category, error) {
	name = strings.TrimSpace(name)

	exists, err := s.categoryRepo.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	category := &model.Category{Name: name, Description: description}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, translate(err)
	}
	return category, nil
}
