package model

import (
	"time"
)

// Category 文章分类
// 名称唯一

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex;comment:分类名称" json:"name"`
	Description *string   `gorm:"type:varchar(255);comment:分类描述" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"comment:创建时间" json:"created_at"`

	Posts []Post `gorm:"many2many:post_category;joinForeignKey:CategoryID;joinReferences:PostID" json:"posts,omitempty"`
}

func (Category) TableName() string { return "category" }
