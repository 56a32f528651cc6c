package models

import "time"

type User struct {
	// 基础信息
	ID    string `json:"id"`             // 用户 ID ，创建后不可变
	Email string `json:"email"`          // 邮箱，忽略大小写全局唯一，创建后不可变
	Name  string `json:"name,omitempty"` // 显示名称

	// 权限相关
	IsAdmin bool `json:"isAdmin"` // 是否为管理员：管理员可以管理用户和站点设置

	// 时间信息
	CreatedAt time.Time  `json:"createdAt"`           // 创建时间
	LastLogin *time.Time `json:"lastLogin,omitempty"` // 最近一次成功登录时间
}

// UserPatch 是针对单个用户的部分更新。没有出现的字段保持原值；
// 邮箱和 ID 创建后不可变，所以这里没有对应的字段。
type UserPatch struct {
	Name    *string `json:"name,omitempty"`
	IsAdmin *bool   `json:"isAdmin,omitempty"`
}

// NewUserInput 是管理员创建用户时的输入。
type NewUserInput struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}
