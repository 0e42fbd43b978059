package controllers

import (
	"errors"
	"net/http"

	"goldentouch-backend/models"
	"goldentouch-backend/store"
	"goldentouch-backend/utils"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	Store *store.Store
}

type ServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	Category    string  `json:"category"`
	Emoji       string  `json:"emoji"`
}

func (sc *ServiceController) Create(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Category:    input.Category,
		Emoji:       input.Emoji,
	}
	if err := sc.Store.CreateService(&service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (sc *ServiceController) List(c *gin.Context) {
	services, err := sc.Store.ListServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, services)
}

func (sc *ServiceController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	service, err := sc.Store.GetService(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, service)
}

func (sc *ServiceController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Category:    input.Category,
		Emoji:       input.Emoji,
	}
	if err := sc.Store.UpdateService(&service); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		}
		return
	}
	c.JSON(http.StatusOK, service)
}

func (sc *ServiceController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := sc.Store.DeleteService(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
