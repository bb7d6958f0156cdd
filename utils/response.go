// file: utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// Success 统一成功响应: {"success":true,"message":...,<payload...>}
func Success(c *gin.Context, status int, msg string, data gin.H) {
	body := gin.H{"success": true}
	if msg != "" {
		body["message"] = msg
	}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error 统一错误响应: {"success":false,"message":...}
// 真实错误只写日志，不回给客户端
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}
