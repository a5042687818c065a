package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"blog-api/internal/service"
	"blog-api/pkg/logger"
	"blog-api/pkg/response"
	"blog-api/pkg/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	service *service.ProfileService
}

func NewProfileHandler(s *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: s}
}

// Create 创建用户资料 POST /profile
func (h *ProfileHandler) Create(c *gin.Context) {
	type req struct {
		Email       string  `json:"email"`
		Name        *string `json:"name"`
		Address     string  `json:"address"`
		Phone       string  `json:"phone"`
		UserID      uint    `json:"userId"`
		Bio         *string `json:"bio"`
		DateOfBirth *string `json:"dateOfBirth"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// 先归一化再校验，空白串不能混过必填校验
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)

	errs := validate.Collect(
		validate.Field("email", r.Email).Required().Email(),
		validate.Field("address", r.Address).Required().MaxLen(255),
		validate.Field("phone", r.Phone).Required().Phone(),
		validate.Field("userId", r.UserID).Required().Positive(),
	)

	// 出生日期可选，给了就必须是 YYYY-MM-DD
	var dob *time.Time
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		t, err := time.Parse("2006-01-02", *r.DateOfBirth)
		if err != nil {
			errs = append(errs, validate.FieldError{Field: "dateOfBirth", Message: "dateOfBirth must be in YYYY-MM-DD format"})
		} else {
			dob = &t
		}
	}

	if len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	profile, err := h.service.Create(service.ProfileInput{
		Email:       r.Email,
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		UserID:      r.UserID,
		Bio:         r.Bio,
		DateOfBirth: dob,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.BadRequest(c, "userId does not reference an existing user")
		case errors.Is(err, service.ErrDuplicate):
			response.Conflict(c, "profile already exists for this user or email")
		default:
			logger.Error("创建资料失败", zap.Uint("user_id", r.UserID), zap.Error(err))
			response.InternalError(c, "failed to create profile")
		}
		return
	}

	response.Created(c, response.FilterProfileInfo(profile))
}

// Get 查询用户资料 GET /get-profile?id=N
// id缺省取1（保持与历史行为一致）；查不到时data为null
func (h *ProfileHandler) Get(c *gin.Context) {
	idStr := c.DefaultQuery("id", "1")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "id must be an integer")
		return
	}

	profile, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Success(c, nil)
			return
		}
		logger.Error("查询资料失败", zap.Uint64("id", id), zap.Error(err))
		response.InternalError(c, "failed to get profile")
		return
	}

	response.Success(c, response.FilterProfileInfo(profile))
}
