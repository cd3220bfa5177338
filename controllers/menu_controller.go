package controllers

import (
	"errors"
	"strconv"

	"little-lemon/models"
	"little-lemon/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menuSvc *services.MenuService
}

func NewMenuController(menuSvc *services.MenuService) *MenuController {
	return &MenuController{menuSvc: menuSvc}
}

// GetCategories godoc
// @Summary Get all categories
// @Description Get list of all menu categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	categories, err := ctrl.menuSvc.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve categories"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// CreateCategory godoc
// @Summary Create category
// @Description Create a new menu category (Manager)
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CategoryRequest true "Category"
// @Success 201 {object} models.Response
// @Router /categories [post]
func (ctrl *MenuController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	cat, err := ctrl.menuSvc.CreateCategory(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create category"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Category created successfully", "data": cat})
}

// GetMenuItems godoc
// @Summary Get all menu items
// @Description Get the full menu
// @Tags Menu
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /menu-items/ [get]
func (ctrl *MenuController) GetMenuItems(c *gin.Context) {
	items, err := ctrl.menuSvc.List(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve menu items"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu items retrieved", "data": items})
}

// GetMenuItemByID godoc
// @Summary Get menu item
// @Description Get a single menu item by ID
// @Tags Menu
// @Security BearerAuth
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menu-items/{id} [get]
func (ctrl *MenuController) GetMenuItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid menu item ID"})
		return
	}

	item, err := ctrl.menuSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve menu item"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu item retrieved", "data": item})
}

// CreateMenuItem godoc
// @Summary Create menu item
// @Description Create a new menu item (Manager)
// @Tags Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.MenuItemRequest true "Menu item"
// @Success 201 {object} models.Response
// @Router /menu-items/ [post]
func (ctrl *MenuController) CreateMenuItem(c *gin.Context) {
	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	item, err := ctrl.menuSvc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create menu item"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Menu item created successfully", "data": item})
}

// UpdateMenuItem godoc
// @Summary Replace menu item
// @Description Fully update a menu item (Manager)
// @Tags Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param request body models.MenuItemRequest true "Menu item"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menu-items/{id} [put]
func (ctrl *MenuController) UpdateMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid menu item ID"})
		return
	}

	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	item, err := ctrl.menuSvc.Replace(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update menu item"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu item updated successfully", "data": item})
}

// PatchMenuItem godoc
// @Summary Update menu item
// @Description Partially update a menu item (Manager)
// @Tags Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param request body models.MenuItemPatchRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menu-items/{id} [patch]
func (ctrl *MenuController) PatchMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid menu item ID"})
		return
	}

	var req models.MenuItemPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	item, err := ctrl.menuSvc.Patch(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update menu item"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu item updated successfully", "data": item})
}

// DeleteMenuItem godoc
// @Summary Delete menu item
// @Description Delete a menu item (Manager)
// @Tags Menu
// @Security BearerAuth
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 204 "No Content"
// @Failure 404 {object} models.ErrorResponse
// @Router /menu-items/{id} [delete]
func (ctrl *MenuController) DeleteMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid menu item ID"})
		return
	}

	err := ctrl.menuSvc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete menu item"})
		return
	}

	c.Status(204)
}
