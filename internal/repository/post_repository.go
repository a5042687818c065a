package repository

import (
	"blog-api/internal/model"

	"gorm.io/gorm"
)

// PostRepository 文章数据仓储
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建PostRepository实例
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// CreateWithCategory 在同一事务内创建文章与文章-分类连接行
// 任一步失败则整体回滚：不会出现只有文章没有连接行的中间状态
func (r *PostRepository) CreateWithCategory(post *model.Post, categoryID uint, assignedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 第一步：创建文章
		if err := tx.Create(post).Error; err != nil {
			return err
		}

		// 第二步：确认分类存在（不存在则回滚文章）
		var category model.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			return err
		}

		// 第三步：创建连接行，复合主键约束兜底重复配对
		link := &model.PostCategory{
			PostID:     post.ID,
			CategoryID: category.ID,
			AssignedBy: assignedBy,
		}
		return tx.Create(link).Error
	})
}

// GetByID 根据ID获取文章，预加载作者与分类
func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var p model.Post
	err := r.db.Preload("Author").Preload("Categories").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByTitle 根据标题获取最新一篇文章
func (r *PostRepository) GetByTitle(title string) (*model.Post, error) {
	var p model.Post
	err := r.db.Where("title = ?", title).Order("id DESC").First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CountByAuthor 统计作者名下文章数
func (r *PostRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// GetJoinRow 获取文章-分类连接行
func (r *PostRepository) GetJoinRow(postID, categoryID uint) (*model.PostCategory, error) {
	var link model.PostCategory
	err := r.db.Where("post_id = ? AND category_id = ?", postID, categoryID).First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}
