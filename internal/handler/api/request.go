package api

import (
	"net/http"

	reqdto "lendshare/internal/handler/dto/request"
	resdto "lendshare/internal/handler/dto/response"
	"lendshare/internal/handler/httperr"
	"lendshare/internal/handler/middleware"
	"lendshare/internal/usecase/commands"
	"lendshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Create item request
// @Description Post a description of something the caller wants to borrow
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param request body reqdto.CreateItemRequestRequest true "Create request"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing user identity")
		return
	}
	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), userID, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List own item requests
// @Description The caller's requests, newest first, each with answering items
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 404 {object} map[string]any
// @Router /requests [get]
func (h *RequestHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing user identity")
		return
	}
	views, err := h.q.ListOwn(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestList(views))
}

// @Summary List other users' item requests
// @Description Requests posted by everyone else, newest first
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param from query int false "Offset hint, floored to a page boundary"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /requests/all [get]
func (h *RequestHandler) ListAll(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing user identity")
		return
	}
	from, size, ok := pageParams(c)
	if !ok {
		return
	}
	views, err := h.q.ListAll(c.Request.Context(), userID, from, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestList(views))
}

// @Summary Get item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing user identity")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}
