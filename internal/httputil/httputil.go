package httputil

import "github.com/gin-gonic/gin"

// RespondError отправляет сообщение об ошибке панели в едином формате и
// прекращает обработку запроса. AbortWithStatusJSON гарантирует, что
// последующие обработчики не выполнятся, даже если забыли вернуть управление.
func RespondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
