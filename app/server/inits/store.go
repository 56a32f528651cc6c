package inits

import (
	"fmt"

	"aurora-agency-site/app/server/kv"
)

func Storage(path string) (*kv.Bolt, error) {
	// 打开本地存储文件
	store, err := kv.OpenBolt(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	return store, nil
}
