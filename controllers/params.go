package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resort-admin/utils"
)

// pathID parses a numeric path parameter, answering 400 itself when the
// value is not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid "+name+": "+raw)
		return 0, false
	}
	return uint(id), true
}
