package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartfarm-api/internal/transport/http/apperr"
)

// ExposeDetail 非生产环境在错误体里附带内部原因（error 字段）
var ExposeDetail = true

type errBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func JSON(c *gin.Context, status int, data any) { c.JSON(status, data) }

func Created(c *gin.Context, data any) { c.JSON(http.StatusCreated, data) }

func OK(c *gin.Context, data any) { c.JSON(http.StatusOK, data) }

// Data 外层 {success, data} 信封，预测 / 社区接口沿用这个形状
func Data(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// Fail 集中做错误 → 状态码映射；未归类错误一律 500 + 通用消息
func Fail(c *gin.Context, err error) {
	var ae *apperr.E
	if errors.As(err, &ae) {
		body := errBody{Message: ae.Message}
		if body.Message == "" {
			body.Message = http.StatusText(ae.Status)
		}
		if ExposeDetail && ae.Err != nil {
			body.Error = ae.Err.Error()
		}
		c.AbortWithStatusJSON(ae.Status, body)
		return
	}
	body := errBody{Message: "Something went wrong on the server"}
	if ExposeDetail {
		body.Error = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}
