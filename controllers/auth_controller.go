package controllers

import (
	"github.com/ecomall/ecomall-backend/config"
	"github.com/ecomall/ecomall-backend/models"
	"github.com/ecomall/ecomall-backend/utils"
	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	MobileNumber string `json:"mobile_number" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
}

// RegisterUser handles user registration
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	req.Email = utils.SanitizeString(req.Email)
	req.MobileNumber = utils.SanitizeString(req.MobileNumber)

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if valid, msg := utils.ValidateMobileNumber(req.MobileNumber); !valid {
		utils.BadRequest(c, "Invalid mobile number", msg)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ? OR mobile_number = ?", req.Email, req.MobileNumber).First(&existing).Error; err == nil {
		utils.LogError("Registration failed - Duplicate email or mobile: %s", req.Email)
		utils.Conflict(c, "Email or mobile number already registered", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Registration failed - Hashing error: %v", err)
		utils.InternalServerError(c, "Failed to register user", nil)
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Password:     hash,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Registration failed - DB error: %v", err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	utils.LogInfo("User registered successfully: %s", user.Email)
	utils.Created(c, "User registered successfully", gin.H{
		"user": gin.H{
			"user_id":       user.ID,
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"email":         user.Email,
			"mobile_number": user.MobileNumber,
		},
	})
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser handles user login
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Login attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Email and password are required", err.Error())
		return
	}

	req.Email = utils.SanitizeString(req.Email)

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login attempt failed - User not found: %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		utils.LogError("Login attempt failed - Invalid password for user: %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.LogError("Failed to generate JWT token for user: %s", req.Email)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User logged in successfully: %s", req.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"user_id":       user.ID,
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"email":         user.Email,
			"mobile_number": user.MobileNumber,
		},
	})
}
