package controllers

import (
	"net/http"

	"goldentouch-backend/session"
	"goldentouch-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Session *session.Session
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // admin name or client first name
	Secret     string `json:"secret" binding:"required"`
}

// Login validates credentials against the session and returns a bearer
// token for the API on success. Failure leaves the session untouched.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	identity, ok := ac.Session.Login(input.Identifier, input.Secret)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(identity)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  identity,
	})
}

// Logout resets the session to guest. Idempotent.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.Session.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the current session identity.
func (ac *AuthController) Me(c *gin.Context) {
	identity, ok := ac.Session.Current()
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Not logged in")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": identity})
}

// State exposes the session state machine: loading, guest, user or admin.
func (ac *AuthController) State(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": ac.Session.State()})
}
