package handlers

import (
	"net/http"

	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/dare2earn/d2e_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles wallet transaction and notification requests.
type LedgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ls portssvc.LedgerSvcFacade) *LedgerHandler {
	return &LedgerHandler{ledgerService: ls}
}

func registerLedgerRoutes(protected *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewLedgerHandler(services.Ledger)

	protected.GET("/users/my-transactions", h.MyTransactions)
	protected.GET("/users/my-notifications", h.MyNotifications)
	protected.PUT("/notifications/:id/read", h.MarkNotificationRead)
}

// MyTransactions godoc
// @Summary List the authenticated user's wallet transactions
// @Description Returns the user's transactions, newest first.
// @Tags ledger
// @Produce json
// @Success 200 {object} []domain.Transaction
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/users/my-transactions [get]
func (h *LedgerHandler) MyTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	transactions, err := h.ledgerService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// MyNotifications godoc
// @Summary List the authenticated user's notifications
// @Description Returns the user's most recent notifications.
// @Tags ledger
// @Produce json
// @Success 200 {object} []domain.Notification
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/users/my-notifications [get]
func (h *LedgerHandler) MyNotifications(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	notifications, err := h.ledgerService.ListNotifications(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead godoc
// @Summary Mark a notification as read
// @Description Marks one of the authenticated user's notifications as read.
// @Tags ledger
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/notifications/{id}/read [put]
func (h *LedgerHandler) MarkNotificationRead(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.ledgerService.MarkNotificationRead(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to update notification")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
