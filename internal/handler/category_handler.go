package handler

import (
	"errors"
	"strings"

	"blog-api/internal/service"
	"blog-api/pkg/logger"
	"blog-api/pkg/response"
	"blog-api/pkg/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	service *service.CategoryService
}

func NewCategoryHandler(s *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// Create 创建分类 POST /category
func (h *CategoryHandler) Create(c *gin.Context) {
	type req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// 先归一化再校验，空白串不能混过必填校验
	r.Name = strings.TrimSpace(r.Name)

	if errs := validate.Collect(
		validate.Field("name", r.Name).Required().MaxLen(100),
	); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	category, err := h.service.Create(r.Name, r.Description)
	if err != nil {
		if errors.Is(err, service.ErrDuplicate) {
			response.Conflict(c, "category name already exists")
			return
		}
		logger.Error("创建分类失败", zap.String("name", r.Name), zap.Error(err))
		response.InternalError(c, "failed to create category")
		return
	}

	response.Created(c, response.FilterCategoryInfo(category))
}
