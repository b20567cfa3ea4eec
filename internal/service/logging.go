package service

import "go.uber.org/zap"

// logger 默认是 Nop，进程启动时由 main 注入真实实例，
// 测试环境保持静默。
var logger = zap.NewNop()

// SetLogger 替换 service 包使用的日志实例。
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}
