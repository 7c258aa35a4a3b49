package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tallersur/pedidos-api/internal/presentation/http/dto/response"
)

// parseID extracts a numeric id from a path parameter, answering 400 itself
// when the value is not a positive integer.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
