package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse 统一成功响应：数据挂在key字段下，附带条数
func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  count,
		key:      data,
	})
}

// ErrorResponse 统一错误响应：业务错误码 + 可读信息
func ErrorResponse(ctx *gin.Context, httpCode int, code string, message string) {
	ctx.JSON(httpCode, gin.H{
		"status":  "error",
		"code":    code,
		"message": message,
	})
}
