package background

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"aurora-agency-site/app/server/constants"
	"aurora-agency-site/app/server/kv"
	"aurora-agency-site/app/server/models"
)

// Store 持有站点背景偏好，只支持整体替换，每次更改立即持久化
type Store struct {
	mu sync.Mutex

	kv       kv.Store
	settings models.BackgroundSettings
}

// New 从存储中加载背景设置，没有记录时使用默认值（粒子背景）
func New(store kv.Store) (*Store, error) {
	s := &Store{
		kv:       store,
		settings: models.DefaultBackgroundSettings(),
	}

	if raw, err := store.Get(constants.StorageKeyBackgroundSettings); err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			return nil, fmt.Errorf("failed to load background settings: %w", err)
		}
	} else if err := json.Unmarshal(raw, &s.settings); err != nil {
		return nil, fmt.Errorf("failed to parse background settings: %w", err)
	}

	return s, nil
}

func (s *Store) Get() models.BackgroundSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings
}

// Set 整体替换设置并立即落盘。这里不做校验，
// mediaUrl 是否必填由调用方（管理面板表单）负责。
func (s *Store) Set(settings models.BackgroundSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal background settings: %w", err)
	}
	if err := s.kv.Set(constants.StorageKeyBackgroundSettings, raw); err != nil {
		return fmt.Errorf("failed to persist background settings: %w", err)
	}

	s.settings = settings
	return nil
}
