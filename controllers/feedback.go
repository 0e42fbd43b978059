package controllers

import (
	"net/http"
	"time"

	"goldentouch-backend/models"
	"goldentouch-backend/store"
	"goldentouch-backend/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Store *store.Store
}

type FeedbackInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Create records a rating from the logged-in caller. The client's name is
// denormalized so the feedback survives client deletion.
func (fc *FeedbackController) Create(c *gin.Context) {
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	feedback := models.Feedback{
		Rating:  input.Rating,
		Comment: input.Comment,
		Date:    time.Now().Format("2006-01-02"),
	}
	if name, exists := c.Get("name"); exists {
		feedback.ClientName, _ = name.(string)
	}
	if clientID, isClient := utils.CallerClientID(c); isClient {
		feedback.ClientID = clientID
	}

	if err := fc.Store.CreateFeedback(&feedback); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save feedback")
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

func (fc *FeedbackController) List(c *gin.Context) {
	feedback, err := fc.Store.ListFeedback()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve feedback")
		return
	}
	c.JSON(http.StatusOK, feedback)
}
