package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-sync/pkg/response"
	"personal-task-sync/pkg/scope"
)

const msgLoadFailed = "Failed to load tasks"

// LoadSession godoc
// @Summary     Load the session's tasks
// @Description Fetches the caller's tasks from the task store and replaces the local list. Without a token, or when the store is unreachable, the cached list is returned with reconciled=false.
// @Tags        Session
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/session [POST]
func (h *handler) LoadSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.LoadSession(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		h.l.Warnf(ctx, "uc.LoadSession: %v", err)
		response.OK(c, h.newSessionResp(output, msgLoadFailed))
		return
	}

	response.OK(c, h.newSessionResp(output, ""))
}

// Logout godoc
// @Summary     End the session
// @Description Clears the in-memory task list. The local cache is kept.
// @Tags        Session
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/session [DELETE]
func (h *handler) Logout(c *gin.Context) {
	h.uc.Logout(c.Request.Context())
	response.OK(c, nil)
}

// List godoc
// @Summary     List tasks
// @Description Returns the tasks passing the status, search and category filters, plus the category choices.
// @Tags        Tasks
// @Produce     json
// @Param       status   query string false "all, active or completed (default: all)"
// @Param       category query string false "Exact category, or all"
// @Param       search   query string false "Case-insensitive match on title or category"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output := h.uc.View(ctx, req.toInput())
	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Add a task
// @Description Creates the task in the task store and prepends it to the local list once the store confirms it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task draft"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "No active session"
// @Failure     502 {object} response.Resp "Rejected by the task store"
// @Failure     503 {object} response.Resp "Task store unreachable"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Add(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Flips the task's completed flag locally. Unknown ids report applied=false.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} mutationResp
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newMutationResp(h.uc.Toggle(ctx, id)))
}

// Update godoc
// @Summary     Edit a task
// @Description Merges the given fields into the task locally. A blank title keeps the existing one.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newMutationResp(h.uc.Edit(ctx, req.toInput())))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes the task from the local list.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} mutationResp
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newMutationResp(h.uc.Delete(ctx, id)))
}
