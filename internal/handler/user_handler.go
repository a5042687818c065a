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

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Create 创建用户 POST /user
func (h *UserHandler) Create(c *gin.Context) {
	type req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// 先归一化再校验：空白串不能混过必填/长度规则
	r.Username = strings.TrimSpace(r.Username)

	// 规则表校验：收集全部字段错误后一次返回
	if errs := validate.Collect(
		validate.Field("username", r.Username).Required().Length(3, 50),
		validate.Field("password", r.Password).Required().MinLen(8),
	); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	user, err := h.service.Register(r.Username, r.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicate) {
			response.Conflict(c, "username already exists")
			return
		}
		logger.Error("创建用户失败", zap.Error(err))
		response.InternalError(c, "failed to create user")
		return
	}

	response.Created(c, response.FilterUserBrief(user))
}

// Update 更新用户名/密码 PUT /update
func (h *UserHandler) Update(c *gin.Context) {
	type req struct {
		ID       uint    `json:"id"`
		Username *string `json:"username"`
		Password *string `json:"password"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if r.Username != nil {
		trimmed := strings.TrimSpace(*r.Username)
		r.Username = &trimmed
	}

	if errs := validate.Collect(
		validate.Field("id", r.ID).Required().Positive(),
		validate.Field("username", r.Username).Optional().Length(3, 50),
		validate.Field("password", r.Password).Optional().MinLen(8),
	); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	user, err := h.service.Update(r.ID, r.Username, r.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicate) {
			response.Conflict(c, "username already exists")
			return
		}
		logger.Error("更新用户失败", zap.Uint("id", r.ID), zap.Error(err))
		response.InternalError(c, "failed to update user")
		return
	}

	response.Success(c, response.FilterUserBrief(user))
}

// Delete 删除用户 DELETE /delete
// 限制删除：有资料或文章引用时返回409
func (h *UserHandler) Delete(c *gin.Context) {
	type req struct {
		ID uint `json:"id"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if r.ID == 0 {
		response.BadRequest(c, "id is required")
		return
	}

	user, err := h.service.Delete(r.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, service.ErrHasDependents):
			response.Conflict(c, "user has profile or posts")
		default:
			logger.Error("删除用户失败", zap.Uint("id", r.ID), zap.Error(err))
			response.InternalError(c, "failed to delete user")
		}
		return
	}

	response.Success(c, response.FilterUserBrief(user))
}

// List 获取全部用户及文章摘要 GET /get-user
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List()
	if err != nil {
		logger.Error("查询用户列表失败", zap.Error(err))
		response.InternalError(c, "failed to list users")
		return
	}

	list := make([]*response.UserWithPosts, 0, len(users))
	for _, u := range users {
		list = append(list, response.FilterUserWithPosts(u))
	}
	response.Success(c, list)
}
