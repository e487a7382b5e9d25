package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// BudgetCategoryRequest is one allocation row of a budget submission.
type BudgetCategoryRequest struct {
	Label string  `json:"label" binding:"required,max=100"`
	Value float64 `json:"value" binding:"min=0"`
}

// CreateBudgetRequest represents the request payload for creating a budget
type CreateBudgetRequest struct {
	Income      float64                 `json:"income" binding:"required,gt=0"`
	TotalBudget float64                 `json:"totalBudget" binding:"required,gt=0"`
	Categories  []BudgetCategoryRequest `json:"categories" binding:"dive"`
}

// BudgetResponse represents a budget in the response
type BudgetResponse struct {
	ID          string  `json:"id"`
	Income      float64 `json:"income"`
	TotalBudget float64 `json:"totalBudget"`
}

// BudgetSummaryResponse represents one per-category summary row
type BudgetSummaryResponse struct {
	Category    string  `json:"category"`
	TotalBudget float64 `json:"totalBudget"`
	Spent       float64 `json:"spent"`
}

// CreateBudget handles the creation of a new budget
// @Summary     Create a budget
// @Description Create a budget with an income ceiling, total allocation, and category breakdown
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBudgetRequest true "Budget allocation"
// @Success     201 {object} BudgetResponse "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid or inconsistent allocation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	in := services.BudgetInput{
		Income:      req.Income,
		TotalBudget: req.TotalBudget,
	}
	for _, cat := range req.Categories {
		in.Categories = append(in.Categories, services.BudgetCategoryInput{
			Label: cat.Label,
			Value: cat.Value,
		})
	}

	budget, err := h.budgetService.CreateBudget(userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditEntry{
		UserID:       userID,
		Action:       "CREATE_BUDGET",
		ResourceType: "budget",
		ResourceID:   budget.ID,
		IPAddress:    c.ClientIP(),
		Changes:      map[string]interface{}{"income": req.Income, "total_budget": req.TotalBudget},
	})

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgetSummaries handles the retrieval of per-category budget summaries
// @Summary     Get budget summaries
// @Description Get one summary per category of the latest budget, with actual spend
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]BudgetSummaryResponse "Per-category summaries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgetSummaries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summaries, err := h.budgetService.GetBudgetSummaries(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": summaries})
}
