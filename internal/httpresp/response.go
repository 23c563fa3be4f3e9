package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK escreve o envelope de sucesso usado por toda a API:
// {"success": true, ...payload}.
func OK(c *gin.Context, payload gin.H) {
	write(c, http.StatusOK, payload)
}

func Created(c *gin.Context, payload gin.H) {
	write(c, http.StatusCreated, payload)
}

func write(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}
