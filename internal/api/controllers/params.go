package controllers

import (
	"net/http"
	"strconv"

	"concierge/pkg/utils"
	"github.com/gin-gonic/gin"
)

// pathID reads a positive integer path parameter, answering 404 when it is
// not one: a non-numeric id cannot resolve to any row.
func pathID(c *gin.Context, name string, notFound string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusNotFound, notFound)
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the body, answering 400 on malformed JSON. Field rules
// are checked by the services.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Malformed JSON body")
		return false
	}
	return true
}
