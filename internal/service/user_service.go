package service

import (
	"strings"

	"blog-api/internal/model"
	"blog-api/internal/repository"
	"blog-api/pkg/password"
)

// UserService 用户业务逻辑
type UserService struct {
	userRepo    *repository.UserRepository
	profileRepo *repository.ProfileRepository
	postRepo    *repository.PostRepository
}

// NewUserService 创建UserService实例
func NewUserService(userRepo *repository.UserRepository, profileRepo *repository.ProfileRepository, postRepo *repository.PostRepository) *UserService {
	return &UserService{userRepo: userRepo, profileRepo: profileRepo, postRepo: postRepo}
}

// Register 注册用户
// 明文密码到这里为止：哈希后立即丢弃，不入库不记日志
func (s *UserService) Register(username, plainPassword string) (*model.User, error) {
	username = strings.TrimSpace(username)

	// 预检用户名占用，用于友好的409；并发下数据库唯一约束兜底
	exists, err := s.userRepo.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	// 密码哈希
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
		Role:         model.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// Update 更新用户名和/或密码，二者皆为可选
func (s *UserService) Update(id uint, username, plainPassword *string) (*model.User, error) {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return nil, translate(err)
	}

	fields := make(map[string]interface{})
	if username != nil && *username != "" {
		fields["username"] = strings.TrimSpace(*username)
	}
	if plainPassword != nil && *plainPassword != "" {
		hash, err := password.Hash(*plainPassword)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hash
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(id, fields); err != nil {
			return nil, translate(err)
		}
	}
	return s.userRepo.GetByID(id)
}

// Delete 删除用户
// 限制策略：存在资料或文章引用时拒绝删除，绝不级联
func (s *UserService) Delete(id uint) (*model.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, translate(err)
	}

	hasProfile, err := s.profileRepo.ExistsByUserID(id)
	if err != nil {
		return nil, err
	}
	if hasProfile {
		return nil, ErrHasDependents
	}

	postCount, err := s.postRepo.CountByAuthor(id)
	if err != nil {
		return nil, err
	}
	if postCount > 0 {
		return nil, ErrHasDependents
	}

	if err := s.userRepo.Delete(id); err != nil {
		return nil, err
	}
	return user, nil
}

// List 获取全部用户及其文章摘要
func (s *UserService) List() ([]*model.User, error) {
	return s.userRepo.ListWithPosts()
}
