package clock

import "time"

// Clock 当前时刻来源
// 分析计算从注入的 Clock 取 now，保证同一快照下结果可复现
type Clock interface {
	Now() time.Time
}

// Real 系统时钟
type Real struct{}

// Now 返回系统当前时间
func (Real) Now() time.Time { return time.Now() }

// Fixed 固定时钟，用于测试与离线重放
type Fixed struct {
	At time.Time
}

// NewFixed 创建固定时钟
func NewFixed(at time.Time) Fixed { return Fixed{At: at} }

// Now 始终返回 At
func (f Fixed) Now() time.Time { return f.At }
