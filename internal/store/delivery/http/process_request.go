package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds the create body. Field presence is checked by the use case.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	err := c.ShouldBindJSON(&req)
	return req, err
}
