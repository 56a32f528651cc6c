package config

type Config struct {
	System struct {
		IsProd   bool   // 是否为生产环境
		Listen   string // 监听地址
		DataPath string // 本地存储文件路径
	}
}
