package constants

const (
	// 初始管理员账号（仅在存储为空时写入）
	SeedAdminID       = "admin-123"
	SeedAdminEmail    = "admin@example.com"
	SeedAdminName     = "Admin User"
	SeedAdminPassword = "admin123"

	// 初始普通用户账号
	SeedUserID       = "user-123"
	SeedUserEmail    = "user@example.com"
	SeedUserName     = "Regular User"
	SeedUserPassword = "user123"
)
