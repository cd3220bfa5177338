package controllers

import (
	"little-lemon/models"
	"little-lemon/repositories"
	"little-lemon/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	userRepo *repositories.UserRepository
}

func NewAuthController(userRepo *repositories.UserRepository) *AuthController {
	return &AuthController{userRepo: userRepo}
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	exists, err := ctrl.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}
	if exists {
		c.JSON(400, gin.H{"success": false, "message": "Email already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err := ctrl.userRepo.Create(ctx, user); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	token, _ := utils.GenerateToken(user.ID, user.Username)

	c.JSON(201, gin.H{
		"success": true,
		"message": "Registration successful",
		"data": models.LoginResponse{
			Token: token,
			User:  *user,
		},
	})
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.userRepo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Login failed"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data": models.LoginResponse{
			Token: token,
			User:  *user,
		},
	})
}
