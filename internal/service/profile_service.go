package service

import (
	"strings"
	"time"

	"blog-api/internal/model"
	"blog-api/internal/repository"
)

// ProfileService 用户资料业务逻辑
type ProfileService struct {
	profileRepo *repository.ProfileRepository
	userRepo    *repository.UserRepository
}

// NewProfileService 创建ProfileService实例
func NewProfileService(profileRepo *repository.ProfileRepository, userRepo *repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// ProfileInput 创建资料的入参
type ProfileInput struct {
	Email       string
	Name        *string
	Address     string
	Phone       string
	UserID      uint
	Bio         *string
	DateOfBirth *time.Time
}

// Create 创建资料
// 每个用户至多一份资料；资料邮箱唯一约束独立于用户邮箱
func (s *ProfileService) Create(in ProfileInput) (*model.Profile, error) {
	// 所属用户必须存在
	if _, err := s.userRepo.GetByID(in.UserID); err != nil {
		return nil, translate(err)
	}

	// 预检一对一约束，用于友好的409；并发下唯一索引兜底
	exists, err := s.profileRepo.ExistsByUserID(in.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	profile := &model.Profile{
		Email:       strings.TrimSpace(in.Email),
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		UserID:      in.UserID,
		Bio:         in.Bio,
		DateOfBirth: in.DateOfBirth,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, translate(err)
	}
	return profile, nil
}

// GetByID 根据ID获取资料（含所属用户名）
func (s *ProfileService) GetByID(id uint) (*model.Profile, error) {
	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		return nil, translate(err)
	}
	return profile, nil
}
