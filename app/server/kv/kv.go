package kv

import "errors"

// ErrKeyNotFound 表示键不存在，调用方使用 errors.Is 匹配
var ErrKeyNotFound = errors.New("key not found")

// Store 是本地键值存储的抽象：字符串键 → 字节值（约定为 JSON 编码）。
// 写入是同步的，调用返回时数据已经落盘（或已进入内存副本）。
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
