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

type ItemHandler struct {
	cmds commands.ItemCommands
	q    queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, q: q}
}

// @Summary Create item
// @Description List an item for loan; optionally answers an item request
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing user identity")
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), userID, req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Get item
// @Description Get an item with its comments; owners also see last/next booking
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Patch an item's name, description or availability; owner only
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing user identity")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), userID, id, req.Name, req.Description, req.Available)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List own items
// @Description List the caller's items with booking info, ordered by id
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param from query int false "Offset hint, floored to a page boundary"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing user identity")
		return
	}
	from, size, ok := pageParams(c)
	if !ok {
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), userID, from, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemList(views))
}

// @Summary Search items
// @Description Substring search over available items; blank text yields an empty list
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param text query string false "Search text"
// @Param from query int false "Offset hint, floored to a page boundary"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} map[string]any
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	from, size, ok := pageParams(c)
	if !ok {
		return
	}
	views, err := h.q.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemList(views))
}

// @Summary Comment on item
// @Description Add a comment; requires a finished APPROVED booking by the caller
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param id path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Create comment request"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing user identity")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	view, err := h.cmds.AddComment(c.Request.Context(), userID, id, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}
