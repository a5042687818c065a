package model

import (
	"time"
)

// 用户角色枚举
const (
	RoleUser      = "USER"
	RoleAdmin     = "ADMIN"
	RoleModerator = "MODERATOR"
)

// User 用户模型
// 索引与唯一约束：用户名唯一、邮箱唯一（可空，空值不参与唯一判定）
// 说明：密码仅存储哈希（PasswordHash），不存储明文
// Role 仅随表结构保留，当前接口不做权限判断

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"type:varchar(50);not null;uniqueIndex;comment:用户名" json:"username"`
	PasswordHash string     `gorm:"type:varchar(255);not null;comment:密码哈希" json:"-"`
	Email        *string    `gorm:"type:varchar(128);uniqueIndex;comment:邮箱" json:"email,omitempty"`
	LastLogin    *time.Time `gorm:"comment:最近登录时间" json:"last_login,omitempty"`
	IsActive     bool       `gorm:"default:true;comment:是否启用" json:"is_active"`
	Role         string     `gorm:"type:varchar(16);default:'USER';comment:角色" json:"role"`
	CreatedAt    time.Time  `gorm:"comment:创建时间" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"comment:更新时间" json:"updated_at"`

	// 关联：一对一资料、一对多文章
	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Posts   []Post   `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}

// TableName 指定表名（因全局配置使用单数表名，这里与结构体名一致为 user）
func (User) TableName() string { return "user" }
