package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 绑定全部业务路由
func RegisterRoutes(router *gin.Engine, userHandler *UserHandler, profileHandler *ProfileHandler, categoryHandler *CategoryHandler, postHandler *PostHandler) {
	// 用户
	router.POST("/user", userHandler.Create)
	router.PUT("/update", userHandler.Update)
	router.DELETE("/delete", userHandler.Delete)
	router.GET("/get-user", userHandler.List)

	// 资料
	router.POST("/profile", profileHandler.Create)
	router.GET("/get-profile", profileHandler.Get)

	// 分类
	router.POST("/category", categoryHandler.Create)

	// 文章
	router.POST("/insert-post", postHandler.Insert)
	router.GET("/post/:id", postHandler.Get)
}
