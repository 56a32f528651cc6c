package types

// 请求体定义。字段都是指针，方便区分"没填"和"填了零值"。

type LoginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type SignupRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
}

type UserCreateRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	IsAdmin  *bool   `json:"isAdmin"`
}

type UserUpdateRequest struct {
	Name    *string `json:"name"`
	IsAdmin *bool   `json:"isAdmin"`
}

type BackgroundUpdateRequest struct {
	Type     *string `json:"type"`
	MediaURL *string `json:"mediaUrl"`
}

type ErrorMessage struct {
	Message *string `json:"message"`
}
