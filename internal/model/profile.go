package model

import (
	"time"
)

// Profile 用户资料
// 与 User 一对一：userId 唯一；邮箱唯一约束独立于 user 表

type Profile struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Email       string     `gorm:"type:varchar(128);not null;uniqueIndex;comment:资料邮箱" json:"email"`
	Name        *string    `gorm:"type:varchar(64);comment:姓名" json:"name,omitempty"`
	Address     string     `gorm:"type:varchar(255);not null;comment:地址" json:"address"`
	Phone       string     `gorm:"type:varchar(32);not null;comment:电话" json:"phone"`
	UserID      uint       `gorm:"not null;uniqueIndex;comment:所属用户ID" json:"user_id"`
	Bio         *string    `gorm:"type:text;comment:个人简介" json:"bio,omitempty"`
	DateOfBirth *time.Time `gorm:"comment:出生日期" json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `gorm:"comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"comment:更新时间" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Profile) TableName() string { return "profile" }
