package service

import (
	"errors"
	"fmt"
	"strings"

	"blog-api/internal/model"
	"blog-api/internal/repository"

	"gorm.io/gorm"
)

// ErrTransaction 事务内任一步失败，文章与连接行均未落库
var ErrTransaction = errors.New("post transaction failed")

// PostService 文章业务逻辑
type PostService struct {
	postRepo *repository.PostRepository
	userRepo *repository.UserRepository
}

// NewPostService 创建PostService实例
func NewPostService(postRepo *repository.PostRepository, userRepo *repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// PostInput 创建文章的入参
type PostInput struct {
	Title      string
	Content    *string
	Published  bool
	Tags       []string
	AuthorID   uint
	CategoryID uint
	AssignedBy string
}

// Create 创建文章并关联分类（单事务，两行同进同退）
func (s *PostService) Create(in PostInput) (*model.Post, error) {
	// 作者存在性属于入参检查，在事务外完成
	author, err := s.userRepo.GetByID(in.AuthorID)
	if err != nil {
		return nil, translate(err)
	}

	// 连接行操作人缺省记作者本人
	assignedBy := strings.TrimSpace(in.AssignedBy)
	if assignedBy == "" {
		assignedBy = author.Username
	}

	post := &model.Post{
		Title:     strings.TrimSpace(in.Title),
		Content:   in.Content,
		Published: in.Published,
		AuthorID:  in.AuthorID,
		Tags:      in.Tags,
	}
	if err := s.postRepo.CreateWithCategory(post, in.CategoryID, assignedBy); err != nil {
		// 事务内的失败一律归为事务错误，分类缺失也在其中
		return nil, fmt.Errorf("%w: %v", ErrTransaction, err)
	}
	return post, nil
}

// GetByID 获取文章详情（含作者与分类）
func (s *PostService) GetByID(id uint) (*model.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}
