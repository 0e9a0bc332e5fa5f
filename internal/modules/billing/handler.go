package billing

import (
	"errors"
	"net/http"

	"nextassist/internal/domain"
	"nextassist/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	billingGroup := protected.Group("/billing")
	{
		billingGroup.GET("/balance", h.GetBalance)
		billingGroup.GET("/transactions", h.ListTransactions)
	}
}

// RegisterRoleRoutes mirrors the balance view into a role-prefixed
// path space (/manager/balance, /assistant/balance).
func (h *Handler) RegisterRoleRoutes(g *gin.RouterGroup) {
	g.GET("/balance", h.GetBalance)
}

func (h *Handler) GetBalance(c *gin.Context) {
	userID := c.GetString("user_id")
	role := domain.UserRole(c.GetString("role"))

	info, err := h.service.GetBalance(c.Request.Context(), userID, role)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No balance record")
			return
		}
		response.Error(c, http.StatusInternalServerError, "BALANCE_FAILED", "Failed to load balance")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"balance": info})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	transactions, err := h.service.ListTransactions(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "TRANSACTIONS_FAILED", "Failed to load transactions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"transactions": transactions})
}
