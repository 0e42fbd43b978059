package controllers

import (
	"errors"
	"net/http"
	"time"

	"goldentouch-backend/models"
	"goldentouch-backend/reports"
	"goldentouch-backend/store"
	"goldentouch-backend/utils"

	"github.com/gin-gonic/gin"
)

type FinanceController struct {
	Store *store.Store
}

type FinanceEntryInput struct {
	Item     string  `json:"item" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Date     string  `json:"date"`
}

// validate applies the shared rules for expenses and revenues: positive
// amount, known category, well-formed or defaulted date. No mutation
// happens on failure.
func (input *FinanceEntryInput) validate(c *gin.Context, validCategory func(string) bool) bool {
	if input.Amount <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount must be greater than zero")
		return false
	}
	if !validCategory(input.Category) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown category: "+input.Category)
		return false
	}
	if input.Date == "" {
		input.Date = time.Now().Format("2006-01-02")
	} else if !validDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return false
	}
	return true
}

func (fc *FinanceController) CreateExpense(c *gin.Context) {
	var input FinanceEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.validate(c, models.ValidExpenseCategory) {
		return
	}

	expense := models.Expense{Item: input.Item, Category: input.Category, Amount: input.Amount, Date: input.Date}
	if err := fc.Store.CreateExpense(&expense); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expense")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (fc *FinanceController) ListExpenses(c *gin.Context) {
	expenses, err := fc.Store.ListExpenses()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (fc *FinanceController) DeleteExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := fc.Store.DeleteExpense(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete expense")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

func (fc *FinanceController) CreateRevenue(c *gin.Context) {
	var input FinanceEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.validate(c, models.ValidRevenueCategory) {
		return
	}

	revenue := models.Revenue{Item: input.Item, Category: input.Category, Amount: input.Amount, Date: input.Date}
	if err := fc.Store.CreateRevenue(&revenue); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create revenue")
		return
	}
	c.JSON(http.StatusCreated, revenue)
}

func (fc *FinanceController) ListRevenues(c *gin.Context) {
	revenues, err := fc.Store.ListRevenues()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve revenues")
		return
	}
	c.JSON(http.StatusOK, revenues)
}

func (fc *FinanceController) DeleteRevenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := fc.Store.DeleteRevenue(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Revenue not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete revenue")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Revenue deleted"})
}

// Summary reports the running totals plus the current month's rollup.
func (fc *FinanceController) Summary(c *gin.Context) {
	expenses, err := fc.Store.ListExpenses()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}
	revenues, err := fc.Store.ListRevenues()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve revenues")
		return
	}
	appointments, err := fc.Store.ListAppointments()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	services, err := fc.Store.ListServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	c.JSON(http.StatusOK, gin.H{
		"totalRevenue":    reports.TotalRevenue(revenues),
		"totalExpenses":   reports.TotalExpenses(expenses),
		"netIncome":       reports.NetIncome(revenues, expenses),
		"monthlyRevenue":  reports.RevenueForMonth(appointments, services, revenues, year, month),
		"monthlyExpenses": reports.ExpensesForMonth(expenses, year, month),
		"monthlyProfit":   reports.ProfitForMonth(appointments, services, revenues, expenses, year, month),
	})
}
