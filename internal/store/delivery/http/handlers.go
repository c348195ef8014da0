package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Store responses are bare JSON bodies, not response.Resp.

// Create godoc
// @Summary     Create a task record
// @Description Stores a new task for the owner and returns its id.
// @Tags        Store
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task record"
// @Success     201 {object} createResp
// @Failure     400 {object} messageResp "Owner ID and title are required."
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} messageResp "Internal Server Error"
// @Router      /tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, messageResp{Message: err.Error()})
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		status, msg := h.mapError(err)
		c.JSON(status, messageResp{Message: msg})
		return
	}

	c.JSON(http.StatusCreated, h.newCreateResp(output))
}

// List godoc
// @Summary     List an owner's task records
// @Description Returns every record of the owner in creation order.
// @Tags        Store
// @Produce     json
// @Param       ownerId path string true "Owner ID"
// @Success     200 {array}  recordResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} messageResp "Internal Server Error"
// @Router      /tasks/{ownerId} [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, c.Param("ownerId"))
	if err != nil {
		status, msg := h.mapError(err)
		c.JSON(status, messageResp{Message: msg})
		return
	}

	c.JSON(http.StatusOK, h.newListResp(output))
}
