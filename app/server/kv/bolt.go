package kv

import (
	"fmt"

	"aurora-agency-site/app/server/constants"

	"github.com/boltdb/bolt"
)

// Bolt 是基于单个本地文件的 Store 实现，所有键放在同一个桶里
type Bolt struct {
	db *bolt.DB
}

var _ Store = (*Bolt)(nil)

func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage file: %w", err)
	}

	// 预创建桶，后续读写不再检查
	if err := db.Update(func(tx *bolt.Tx) error {
		_, errBucket := tx.CreateBucketIfNotExists([]byte(constants.StorageBucket))
		return errBucket
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create storage bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(key string) ([]byte, error) {
	var value []byte
	if err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(constants.StorageBucket)).Get([]byte(key))
		if raw == nil {
			return ErrKeyNotFound
		}

		// bolt 返回的切片只在事务内有效，需要复制
		value = append([]byte(nil), raw...)
		return nil
	}); err != nil {
		return nil, err
	}

	return value, nil
}

func (b *Bolt) Set(key string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(constants.StorageBucket)).Put([]byte(key), value)
	})
}

func (b *Bolt) Delete(key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(constants.StorageBucket)).Delete([]byte(key))
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
