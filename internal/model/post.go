package model

import (
	"time"
)

// Post 文章模型
// Tags 以JSON序列化存储，保持写入顺序
// 与 Category 多对多，经由自定义连接表 post_category（见 PostCategory）

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null;comment:标题" json:"title"`
	Content   *string   `gorm:"type:text;comment:正文" json:"content,omitempty"`
	Published bool      `gorm:"default:false;comment:是否发布" json:"published"`
	AuthorID  uint      `gorm:"not null;index;comment:作者ID" json:"author_id"`
	ViewCount int       `gorm:"default:0;comment:浏览次数" json:"view_count"`
	Tags      []string  `gorm:"serializer:json;type:varchar(1024);comment:标签列表" json:"tags"`
	CreatedAt time.Time `gorm:"comment:创建时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"comment:更新时间" json:"updated_at"`

	Author     *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Categories []Category `gorm:"many2many:post_category;joinForeignKey:PostID;joinReferences:CategoryID" json:"categories,omitempty"`
}

func (Post) TableName() string { return "post" }

// PostCategory 文章-分类连接表
// 复合主键 (postId, categoryId)：同一文章与分类的配对至多一条

type PostCategory struct {
	PostID     uint      `gorm:"primaryKey;comment:文章ID" json:"post_id"`
	CategoryID uint      `gorm:"primaryKey;comment:分类ID" json:"category_id"`
	AssignedAt time.Time `gorm:"autoCreateTime;comment:关联时间" json:"assigned_at"`
	AssignedBy string    `gorm:"type:varchar(64);not null;comment:关联操作人" json:"assigned_by"`
}

func (PostCategory) TableName() string { return "post_category" }
