package handler

import (
	"errors"
	"strconv"
	"strings"

	"blog-api/internal/service"
	"blog-api/pkg/logger"
	"blog-api/pkg/response"
	"blog-api/pkg/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PostHandler struct {
	service *service.PostService
}

func NewPostHandler(s *service.PostService) *PostHandler {
	return &PostHandler{service: s}
}

// Insert 创建文章并关联分类 POST /insert-post
// 文章与连接行在同一事务提交：任一步失败，两行都不会出现
func (h *PostHandler) Insert(c *gin.Context) {
	type req struct {
		Title      string   `json:"title"`
		Content    *string  `json:"content"`
		Published  *bool    `json:"published"`
		Tags       []string `json:"tags"`
		AuthorID   uint     `json:"authorId"`
		CategoryID uint     `json:"categoryId"`
		AssignedBy string   `json:"assignedBy"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// 先归一化再校验，空白标题不能混过必填校验
	r.Title = strings.TrimSpace(r.Title)
	r.AssignedBy = strings.TrimSpace(r.AssignedBy)

	if errs := validate.Collect(
		validate.Field("title", r.Title).Required().MaxLen(255),
		validate.Field("authorId", r.AuthorID).Required().Positive(),
		validate.Field("categoryId", r.CategoryID).Required().Positive(),
		validate.Field("assignedBy", r.AssignedBy).Optional().MaxLen(64),
	); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	published := false
	if r.Published != nil {
		published = *r.Published
	}

	post, err := h.service.Create(service.PostInput{
		Title:      r.Title,
		Content:    r.Content,
		Published:  published,
		Tags:       r.Tags,
		AuthorID:   r.AuthorID,
		CategoryID: r.CategoryID,
		AssignedBy: r.AssignedBy,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.BadRequest(c, "authorId does not reference an existing user")
			return
		}
		// 事务失败（含分类不存在）：文章与连接行均已回滚
		logger.Error("创建文章失败", zap.Uint("author_id", r.AuthorID), zap.Uint("category_id", r.CategoryID), zap.Error(err))
		response.InternalError(c, "failed to create post")
		return
	}

	response.Created(c, response.FilterPostInfo(post))
}

// Get 获取文章详情 GET /post/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id must be an integer")
		return
	}

	post, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		logger.Error("查询文章失败", zap.Uint64("id", id), zap.Error(err))
		response.InternalError(c, "failed to get post")
		return
	}

	response.Success(c, response.FilterPostInfo(post))
}
