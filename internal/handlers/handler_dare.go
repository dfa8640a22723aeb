package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/dare2earn/d2e_backend/internal/dto"
	"github.com/dare2earn/d2e_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// DareHandler handles dare lifecycle requests.
type DareHandler struct {
	dareService portssvc.DareSvcFacade
}

// NewDareHandler creates a new DareHandler.
func NewDareHandler(ds portssvc.DareSvcFacade) *DareHandler {
	return &DareHandler{dareService: ds}
}

// registerDareRoutes sets up the public reads and the authenticated dare
// lifecycle routes.
func registerDareRoutes(r *gin.Engine, protected *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewDareHandler(services.Dare)

	r.GET("/api/dares", h.ListDares)
	r.GET("/api/dares/:id", h.GetDare)

	protected.POST("/dares", h.CreateDare)
	protected.POST("/dares/:id/join", h.JoinDare)
	protected.POST("/dares/:id/submit", h.Submit)
	protected.POST("/participants/:id/vote", h.Vote)
	protected.GET("/users/my-dares", h.MyDares)
	protected.GET("/users/my-participations", h.MyParticipations)
}

// ListDares godoc
// @Summary List dares
// @Description Returns one page of dares, optionally filtered by status and category.
// @Tags dares
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param status query string false "Filter by status (open, closed, completed, cancelled)"
// @Param category_id query string false "Filter by category"
// @Success 200 {object} dto.ListDaresResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dares [get]
func (h *DareHandler) ListDares(c *gin.Context) {
	var params dto.ListDaresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	resp, err := h.dareService.ListDares(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list dares")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetDare godoc
// @Summary Get a dare with its participants
// @Description Returns the dare and its participants ranked by vote count.
// @Tags dares
// @Produce json
// @Param id path string true "Dare ID"
// @Success 200 {object} dto.DareDetailResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dares/{id} [get]
func (h *DareHandler) GetDare(c *gin.Context) {
	summary, participants, err := h.dareService.GetDare(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve dare")
		return
	}

	resp := dto.DareDetailResponse{
		Dare:         dto.ToDareResponse(*summary),
		Participants: make([]dto.ParticipantResponse, 0, len(participants)),
	}
	for _, p := range participants {
		resp.Participants = append(resp.Participants, dto.ToParticipantResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateDare godoc
// @Summary Create a dare
// @Description Creates a new open dare owned by the authenticated user.
// @Tags dares
// @Accept json
// @Produce json
// @Param dare body dto.CreateDareRequest true "Dare details"
// @Success 201 {object} dto.DareResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/dares [post]
func (h *DareHandler) CreateDare(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateDareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	dare, err := h.dareService.CreateDare(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create dare")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDareResponseFromDare(*dare))
}

// JoinDare godoc
// @Summary Join a dare
// @Description Enrolls the authenticated user in an open dare, adding the entry fee to the prize pool.
// @Tags dares
// @Produce json
// @Param id path string true "Dare ID"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 400 {object} ErrorResponse "Dare closed, ended, or already joined"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/dares/{id}/join [post]
func (h *DareHandler) JoinDare(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	dareID := c.Param("id")
	participant, err := h.dareService.JoinDare(c.Request.Context(), dareID, userID)
	if err != nil {
		respondError(c, err, "Failed to join dare")
		return
	}

	logger.Info("Joined dare", slog.String("dare_id", dareID), slog.String("participant_id", participant.ParticipantID))
	c.JSON(http.StatusOK, dto.ToParticipantResponseFromParticipant(*participant))
}

// Submit godoc
// @Summary Submit an entry for a dare
// @Description Records or replaces the authenticated participant's submission.
// @Tags dares
// @Accept json
// @Produce json
// @Param id path string true "Dare ID"
// @Param submission body dto.SubmitRequest true "Submission details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Not a participant of this dare"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/dares/{id}/submit [post]
func (h *DareHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	if err := h.dareService.Submit(c.Request.Context(), c.Param("id"), userID, req); err != nil {
		respondError(c, err, "Failed to submit")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Submission recorded"})
}

// Vote godoc
// @Summary Vote for a participant's submission
// @Description Records one vote by the authenticated user for the participant.
// @Tags dares
// @Accept json
// @Produce json
// @Param id path string true "Participant ID"
// @Param vote body dto.VoteRequest false "Vote options"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Self-vote or duplicate vote"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/participants/{id}/vote [post]
func (h *DareHandler) Vote(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	if err := h.dareService.Vote(c.Request.Context(), c.Param("id"), userID, req.IsBoostedVote); err != nil {
		respondError(c, err, "Failed to record vote")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded"})
}

// MyDares godoc
// @Summary List the authenticated user's dares
// @Description Returns dares created by the authenticated user, newest first.
// @Tags dares
// @Produce json
// @Success 200 {object} []dto.DareResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/users/my-dares [get]
func (h *DareHandler) MyDares(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summaries, err := h.dareService.ListDaresByCreator(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list dares")
		return
	}

	resp := make([]dto.DareResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, dto.ToDareResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

// MyParticipations godoc
// @Summary List the authenticated user's participations
// @Description Returns the dares the authenticated user has joined, newest first.
// @Tags dares
// @Produce json
// @Success 200 {object} []dto.ParticipationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/users/my-participations [get]
func (h *DareHandler) MyParticipations(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	participations, err := h.dareService.ListParticipationsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list participations")
		return
	}

	resp := make([]dto.ParticipationResponse, 0, len(participations))
	for _, p := range participations {
		resp = append(resp, dto.ToParticipationResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}
