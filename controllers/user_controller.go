package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"techstore/models"
	"techstore/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	catalog *services.CatalogService
}

func NewUserController(catalog *services.CatalogService) *UserController {
	return &UserController{catalog: catalog}
}

// @Summary Get all users
// @Description Get list of all users
// @Tags Users
// @Produce json
// @Success 200 {object} models.ListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	users, err := ctrl.catalog.ListUsers()
	if err != nil {
		log.Printf("Error reading users: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Error fetching users",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ListResponse{
		Success: true,
		Count:   len(users),
		Data:    users,
	})
}

// @Summary Get user by ID
// @Description Get a single user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/users/{id} [get]
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	user, err := ctrl.catalog.GetUserByID(id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
		return
	}
	if err != nil {
		log.Printf("Error reading users: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Error fetching user",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    user,
	})
}
