package auth

import "errors"

var (
	// ErrInvalidCredentials 同时覆盖"用户不存在"和"密码错误"两种情况，
	// 对外只有这一种失败，避免探测账号是否存在
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailInUse 表示注册或创建用户时邮箱已被占用（忽略大小写）
	ErrEmailInUse = errors.New("email already in use")

	// ErrUnauthorized 表示调用方权限不足
	ErrUnauthorized = errors.New("unauthorized")

	// ErrCannotDeleteAdmin 表示删除目标是管理员，管理员不能通过删除接口移除
	ErrCannotDeleteAdmin = errors.New("cannot delete admin user")

	// ErrCannotDemoteLastAdmin 表示更新会把最后一名管理员降级
	ErrCannotDemoteLastAdmin = errors.New("cannot demote the last admin")
)
