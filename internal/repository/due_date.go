package repository

import (
	"fmt"
	"strings"
	"time"

	pkgerrors "github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/errors"
)

// 带时区偏移的格式直接解析；其余格式按调用方给定的时区解释
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999Z0700",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

// ParseDueDate 解析 ISO-8601 截止时间，接受可选的 UTC 标识 Z
// 解析失败返回 ErrMalformedEvent
func ParseDueDate(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: 截止时间为空", pkgerrors.ErrMalformedEvent)
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: 无法解析截止时间 %q", pkgerrors.ErrMalformedEvent, raw)
}
