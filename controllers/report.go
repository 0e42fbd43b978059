package controllers

import (
	"net/http"
	"time"

	"goldentouch-backend/reports"
	"goldentouch-backend/store"
	"goldentouch-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct {
	Store *store.Store
}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue float64                `json:"currentMonthRevenue"`
	MonthGrowth         float64                `json:"monthGrowth"`
	CurrentYearRevenue  float64                `json:"currentYearRevenue"`
	YearGrowth          float64                `json:"yearGrowth"`
	TotalRevenue        float64                `json:"totalRevenue"`
	TotalExpenses       float64                `json:"totalExpenses"`
	NetIncome           float64                `json:"netIncome"`
	TopClients          []reports.RankedClient `json:"topClients"`
}

// GetAnalytics returns revenue growth figures for the current month and
// year against the preceding period.
func (rc *ReportController) GetAnalytics(c *gin.Context) {
	services, err := rc.Store.ListServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	clients, err := rc.Store.ListClients()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}
	appointments, err := rc.Store.ListAppointments()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	revenues, err := rc.Store.ListRevenues()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve revenues")
		return
	}
	expenses, err := rc.Store.ListExpenses()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}

	currentMonthRevenue := reports.RevenueForMonth(appointments, services, revenues, year, month)
	lastMonthRevenue := reports.RevenueForMonth(appointments, services, revenues, prevYear, prevMonth)
	currentYearRevenue := reports.RevenueForYear(appointments, services, revenues, year)
	lastYearRevenue := reports.RevenueForYear(appointments, services, revenues, year-1)

	c.JSON(http.StatusOK, AnalyticsSummary{
		CurrentMonthRevenue: currentMonthRevenue,
		MonthGrowth:         reports.Growth(currentMonthRevenue, lastMonthRevenue),
		CurrentYearRevenue:  currentYearRevenue,
		YearGrowth:          reports.Growth(currentYearRevenue, lastYearRevenue),
		TotalRevenue:        reports.TotalRevenue(revenues),
		TotalExpenses:       reports.TotalExpenses(expenses),
		NetIncome:           reports.NetIncome(revenues, expenses),
		TopClients:          reports.TopLoyalClients(clients, appointments),
	})
}
