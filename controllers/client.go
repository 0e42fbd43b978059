package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"goldentouch-backend/models"
	"goldentouch-backend/reports"
	"goldentouch-backend/store"
	"goldentouch-backend/utils"

	"github.com/gin-gonic/gin"
)

type ClientController struct {
	Store *store.Store
}

type CreateClientInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
	IsLoyal  bool   `json:"isLoyal"`
	PhotoURL string `json:"photoUrl"`
}

type UpdateClientInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Birthday *string `json:"birthday"`
	IsLoyal  *bool   `json:"isLoyal"`
	PhotoURL *string `json:"photoUrl"`
}

func (cc *ClientController) Create(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Birthday != "" && !validDate(input.Birthday) {
		utils.RespondWithError(c, http.StatusBadRequest, "Birthday must be YYYY-MM-DD")
		return
	}

	client := models.Client{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Birthday: input.Birthday,
		IsLoyal:  input.IsLoyal,
		PhotoURL: input.PhotoURL,
	}
	if err := cc.Store.CreateClient(&client); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, client)
}

// List returns clients ranked by confirmed appointment count, optionally
// narrowed by a case-insensitive search term over name and email.
func (cc *ClientController) List(c *gin.Context) {
	clients, err := cc.Store.ListClients()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}
	appointments, err := cc.Store.ListAppointments()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	filtered := reports.FilterClients(clients, c.Query("q"))
	c.JSON(http.StatusOK, reports.LoyaltyRanking(filtered, appointments))
}

func (cc *ClientController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	client, err := cc.Store.GetClient(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, client)
}

func (cc *ClientController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	client, err := cc.Store.GetClient(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Birthday != nil {
		if *input.Birthday != "" && !validDate(*input.Birthday) {
			utils.RespondWithError(c, http.StatusBadRequest, "Birthday must be YYYY-MM-DD")
			return
		}
		client.Birthday = *input.Birthday
	}
	if input.IsLoyal != nil {
		client.IsLoyal = *input.IsLoyal
	}
	if input.PhotoURL != nil {
		client.PhotoURL = *input.PhotoURL
	}

	if err := cc.Store.UpdateClient(&client); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// Delete removes a client and, by the cascade policy, all of that
// client's appointments.
func (cc *ClientController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := cc.Store.DeleteClient(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}

// Birthdays lists the clients whose birthday is today, year ignored.
func (cc *ClientController) Birthdays(c *gin.Context) {
	clients, err := cc.Store.ListClients()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}
	matches := reports.BirthdaysOn(clients, reports.Today())
	if matches == nil {
		matches = []models.Client{}
	}
	c.JSON(http.StatusOK, matches)
}

// pathID parses the :id parameter, responding 400 on garbage.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
