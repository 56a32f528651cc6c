package constants

const (
	// 存储桶名称，所有键都放在这一个桶里
	StorageBucket = "agency"
)

const (
	// 持久化键布局：字符串键 → JSON 编码的值
	StorageKeyUsers              = "users"              // 用户列表（JSON 数组）
	StorageKeyPasswords          = "passwords"          // 凭据映射（[userId, hash] 对的 JSON 数组）
	StorageKeySession            = "user"               // 当前会话用户（单个 JSON 对象），登出时删除
	StorageKeyBackgroundSettings = "backgroundSettings" // 背景偏好设置（JSON 对象）
)
