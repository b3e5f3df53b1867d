package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/response"
)

// userIDMaxLen 与 courses / academic_events 表 user_id 列长度一致
const userIDMaxLen = 64

// ResolveUserID 从查询参数 user_id 中提取学生标识，缺省时使用 defaultID。
// 参数不合法时写入 400 响应并返回 false，调用方应直接 return。
func ResolveUserID(c *gin.Context, defaultID string) (string, bool) {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		return defaultID, true
	}
	if len(userID) > userIDMaxLen {
		response.BadRequest(c, 10001, "user_id 过长")
		return "", false
	}
	return userID, true
}
