package controllers

import (
	"errors"
	"net/http"

	"goldentouch-backend/models"
	"goldentouch-backend/reports"
	"goldentouch-backend/store"
	"goldentouch-backend/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	Store *store.Store
}

type BookingInput struct {
	ClientID      uint                 `json:"clientId"` // admins book on behalf of a client
	ServiceID     uint                 `json:"serviceId" binding:"required"`
	Date          string               `json:"date" binding:"required"`
	Time          string               `json:"time" binding:"required"`
	Questionnaire models.Questionnaire `json:"questionnaire"`
}

type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

// List returns every appointment joined with client and service details,
// newest first.
func (ac *AppointmentController) List(c *gin.Context) {
	appointments, clients, services, ok := ac.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, reports.History(appointments, clients, services))
}

// Upcoming returns future non-cancelled appointments sorted by date and
// time. Clients see only their own; the admin sees all.
func (ac *AppointmentController) Upcoming(c *gin.Context) {
	appointments, clients, services, ok := ac.snapshot(c)
	if !ok {
		return
	}

	if clientID, isClient := utils.CallerClientID(c); isClient {
		own, err := ac.Store.ListClientAppointments(clientID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
			return
		}
		appointments = own
	}

	c.JSON(http.StatusOK, reports.Upcoming(appointments, clients, services, reports.Today()))
}

// Book creates an appointment. Client bookings are created pending and
// confirmed later by the admin; admin bookings start confirmed.
func (ac *AppointmentController) Book(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !validDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}
	if !validTime(input.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Time must be HH:MM")
		return
	}

	clientID := input.ClientID
	status := models.StatusConfirmed
	if callerID, isClient := utils.CallerClientID(c); isClient {
		clientID = callerID
		status = models.StatusPending
	}
	if clientID == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "clientId is required")
		return
	}

	appointment := models.Appointment{
		ClientID:      clientID,
		ServiceID:     input.ServiceID,
		Date:          input.Date,
		Time:          input.Time,
		Status:        status,
		Questionnaire: input.Questionnaire,
	}
	if err := ac.Store.CreateAppointment(&appointment); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to book appointment")
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// Update reschedules an existing appointment: service, date, time and
// questionnaire are replaced, and the admin may move it to another client.
// Status is untouched; UpdateStatus owns that transition.
func (ac *AppointmentController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !validDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}
	if !validTime(input.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Time must be HH:MM")
		return
	}

	appointment, err := ac.Store.GetAppointment(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ClientID != 0 {
		appointment.ClientID = input.ClientID
	}
	appointment.ServiceID = input.ServiceID
	appointment.Date = input.Date
	appointment.Time = input.Time
	appointment.Questionnaire = input.Questionnaire

	if err := ac.Store.UpdateAppointment(&appointment); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// UpdateStatus moves an appointment between pending, confirmed and
// cancelled.
func (ac *AppointmentController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !models.ValidStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Status must be confirmed, pending or cancelled")
		return
	}

	if err := ac.Store.UpdateAppointmentStatus(id, input.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

func (ac *AppointmentController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ac.Store.DeleteAppointment(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}

func (ac *AppointmentController) snapshot(c *gin.Context) ([]models.Appointment, []models.Client, []models.Service, bool) {
	appointments, err := ac.Store.ListAppointments()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return nil, nil, nil, false
	}
	clients, err := ac.Store.ListClients()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return nil, nil, nil, false
	}
	services, err := ac.Store.ListServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return nil, nil, nil, false
	}
	return appointments, clients, services, true
}
