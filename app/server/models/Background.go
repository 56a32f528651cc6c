package models

// BackgroundType 是站点背景的展示模式
type BackgroundType string

const (
	BackgroundTypeParticles BackgroundType = "particles" // 粒子动画（默认）
	BackgroundTypeImage     BackgroundType = "image"     // 静态图片
	BackgroundTypeVideo     BackgroundType = "video"     // 视频
)

type BackgroundSettings struct {
	Type     BackgroundType `json:"type"`               // 背景类型
	MediaURL string         `json:"mediaUrl,omitempty"` // 媒体地址，仅 image / video 模式使用
}

// DefaultBackgroundSettings 是没有任何持久化记录时的默认背景
func DefaultBackgroundSettings() BackgroundSettings {
	return BackgroundSettings{Type: BackgroundTypeParticles}
}
