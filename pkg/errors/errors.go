package errors

import "errors"

// ErrMalformedEvent 学业事件数据不合法（截止时间无法解析或缺少必填字段）
// 该请求的分析整体失败，不会静默丢弃单个事件
var ErrMalformedEvent = errors.New("学业事件数据不合法")

// ErrStoreUnavailable 学业数据源不可用，原样向调用方传播，不做重试
var ErrStoreUnavailable = errors.New("学业数据源不可用")
