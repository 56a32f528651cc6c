package inits

import (
	"os"
	"strings"

	"aurora-agency-site/app/server/config"
)

func Config() (*config.Config, error) {
	cfg := &config.Config{}

	// 手动配置映射
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dataPath, exist := os.LookupEnv("DATA_PATH"); !exist {
		cfg.System.DataPath = "agency.db" // 默认存储文件
	} else {
		cfg.System.DataPath = dataPath
	}

	return cfg, nil
}
