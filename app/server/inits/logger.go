package inits

import (
	"fmt"

	"go.uber.org/zap"
)

func Logger(debugMode bool) (*zap.Logger, error) {
	// 开发环境用可读输出，生产环境用 JSON
	var (
		l   *zap.Logger
		err error
	)
	if debugMode {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l, nil
}
