package controllers

import (
	"net/http"
	"time"

	"goldentouch-backend/models"
	"goldentouch-backend/reports"
	"goldentouch-backend/store"
	"goldentouch-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Store *store.Store
}

type DashboardOverview struct {
	TotalClients    int                          `json:"totalClients"`
	MonthlyRevenue  float64                      `json:"monthlyRevenue"`
	MonthlyExpenses float64                      `json:"monthlyExpenses"`
	MonthlyProfit   float64                      `json:"monthlyProfit"`
	Upcoming        []reports.AppointmentDetails `json:"upcomingAppointments"`
	TopLoyalClients []reports.RankedClient       `json:"topLoyalClients"`
	BirthdaysToday  []models.Client              `json:"birthdaysToday"`
}

// Overview assembles the admin landing page numbers from one store
// snapshot.
func (dc *DashboardController) Overview(c *gin.Context) {
	clients, err := dc.Store.ListClients()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}
	services, err := dc.Store.ListServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	appointments, err := dc.Store.ListAppointments()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	expenses, err := dc.Store.ListExpenses()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}
	revenues, err := dc.Store.ListRevenues()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve revenues")
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	today := reports.Today()

	birthdays := reports.BirthdaysOn(clients, today)
	if birthdays == nil {
		birthdays = []models.Client{}
	}

	c.JSON(http.StatusOK, DashboardOverview{
		TotalClients:    len(clients),
		MonthlyRevenue:  reports.RevenueForMonth(appointments, services, revenues, year, month),
		MonthlyExpenses: reports.ExpensesForMonth(expenses, year, month),
		MonthlyProfit:   reports.ProfitForMonth(appointments, services, revenues, expenses, year, month),
		Upcoming:        reports.Upcoming(appointments, clients, services, today),
		TopLoyalClients: reports.TopLoyalClients(clients, appointments),
		BirthdaysToday:  birthdays,
	})
}
