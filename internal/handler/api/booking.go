package api

import (
	"context"
	"net/http"
	"strconv"

	reqdto "lendshare/internal/handler/dto/request"
	resdto "lendshare/internal/handler/dto/response"
	"lendshare/internal/handler/httperr"
	"lendshare/internal/handler/middleware"
	"lendshare/internal/usecase/commands"
	"lendshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// stateAll is what an absent state parameter means.
const stateAll = "ALL"

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book an item for a time window; the booking starts in WAITING
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing user identity")
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), userID, req.ItemID, req.Start, req.End)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking by id; visible only to the booker or the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Decide booking
// @Description Approve or reject a waiting booking; item owner only, exactly once
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param id path string true "Booking ID"
// @Param approved query bool true "true approves, false rejects"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing user identity")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved parameter")
		return
	}
	view, err := h.cmds.Decide(c.Request.Context(), userID, id, approved)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List the caller's bookings filtered by state token
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED (default ALL)"
// @Param from query int false "Offset hint, floored to a page boundary"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *gin.Context) {
	h.list(c, h.q.ListByBooker)
}

// @Summary List bookings of owned items
// @Description List bookings of the caller's items filtered by state token
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED (default ALL)"
// @Param from query int false "Offset hint, floored to a page boundary"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /bookings/owner [get]
func (h *BookingHandler) ListOwner(c *gin.Context) {
	h.list(c, h.q.ListByOwner)
}

func (h *BookingHandler) list(c *gin.Context, query func(ctx context.Context, userID uuid.UUID, state string, from, size *int32) ([]*queries.BookingView, error)) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing user identity")
		return
	}
	state := c.Query("state")
	if state == "" {
		state = stateAll
	}
	from, size, ok := pageParams(c)
	if !ok {
		return
	}
	views, err := query(c.Request.Context(), userID, state, from, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}
