package response

import (
	"net/http"

	"blog-api/internal/model"
	"blog-api/pkg/validate"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int                   `json:"code"`             // HTTP状态码
	Message string                `json:"message"`          // 响应消息
	Data    interface{}           `json:"data,omitempty"`   // 响应数据
	Errors  []validate.FieldError `json:"errors,omitempty"` // 字段校验错误列表
}

// Success 200成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// Created 201创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// ValidationFailed 400错误，附带全部字段校验失败
func ValidationFailed(c *gin.Context, errs []validate.FieldError) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: "validation failed",
		Errors:  errs,
	})
}

// NotFound 404错误
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409错误
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError 500错误
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// UserBrief 用户简要信息（创建/更新/删除的返回体）
type UserBrief struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// FilterUserBrief 只暴露id与用户名
func FilterUserBrief(user *model.User) *UserBrief {
	if user == nil {
		return nil
	}
	return &UserBrief{ID: user.ID, Username: user.Username}
}

// PostTitle 嵌套在用户列表里的文章摘要
type PostTitle struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// UserWithPosts 用户列表项，附带文章id/标题
type UserWithPosts struct {
	ID        uint        `json:"id"`
	Username  string      `json:"username"`
	Email     *string     `json:"email,omitempty"`
	IsActive  bool        `json:"is_active"`
	Role      string      `json:"role"`
	CreatedAt string      `json:"created_at"`
	Posts     []PostTitle `json:"posts"`
}

// FilterUserWithPosts 过滤用户信息，隐藏敏感字段，文章只保留id与标题
func FilterUserWithPosts(user *model.User) *UserWithPosts {
	if user == nil {
		return nil
	}
	posts := make([]PostTitle, 0, len(user.Posts))
	for _, p := range user.Posts {
		posts = append(posts, PostTitle{ID: p.ID, Title: p.Title})
	}
	return &UserWithPosts{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
		Posts:     posts,
	}
}

// ProfileInfo 资料响应，附带所属用户名
type ProfileInfo struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	Name        *string `json:"name,omitempty"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	UserID      uint    `json:"user_id"`
	Username    string  `json:"username,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	DateOfBirth string  `json:"date_of_birth,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// FilterProfileInfo 过滤资料信息
func FilterProfileInfo(profile *model.Profile) *ProfileInfo {
	if profile == nil {
		return nil
	}
	info := &ProfileInfo{
		ID:        profile.ID,
		Email:     profile.Email,
		Name:      profile.Name,
		Address:   profile.Address,
		Phone:     profile.Phone,
		UserID:    profile.UserID,
		Bio:       profile.Bio,
		CreatedAt: profile.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if profile.DateOfBirth != nil {
		info.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}
	if profile.User != nil {
		info.Username = profile.User.Username
	}
	return info
}

// CategoryInfo 分类响应
type CategoryInfo struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// FilterCategoryInfo 过滤分类信息
func FilterCategoryInfo(category *model.Category) *CategoryInfo {
	if category == nil {
		return nil
	}
	return &CategoryInfo{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// PostInfo 文章响应，附带作者与分类
type PostInfo struct {
	ID         uint           `json:"id"`
	Title      string         `json:"title"`
	Content    *string        `json:"content,omitempty"`
	Published  bool           `json:"published"`
	AuthorID   uint           `json:"author_id"`
	Author     *UserBrief     `json:"author,omitempty"`
	Categories []CategoryInfo `json:"categories,omitempty"`
	ViewCount  int            `json:"view_count"`
	Tags       []string       `json:"tags"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
}

// FilterPostInfo 过滤文章信息
func FilterPostInfo(post *model.Post) *PostInfo {
	if post == nil {
		return nil
	}
	info := &PostInfo{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		AuthorID:  post.AuthorID,
		Author:    FilterUserBrief(post.Author),
		ViewCount: post.ViewCount,
		Tags:      post.Tags,
		CreatedAt: post.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: post.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	for i := range post.Categories {
		info.Categories = append(info.Categories, *FilterCategoryInfo(&post.Categories[i]))
	}
	return info
}
