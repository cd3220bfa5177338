package controllers

import (
	"errors"
	"log"
	"strconv"

	"little-lemon/models"
	"little-lemon/repositories"
	"little-lemon/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderSvc *services.OrderService
	userRepo *repositories.UserRepository
	emailSvc *models.EmailService
}

// NewOrderController wires the order workflow; emailSvc may be nil when SMTP
// is not configured.
func NewOrderController(orderSvc *services.OrderService, userRepo *repositories.UserRepository, emailSvc *models.EmailService) *OrderController {
	return &OrderController{orderSvc: orderSvc, userRepo: userRepo, emailSvc: emailSvc}
}

// GetOwnOrders godoc
// @Summary Get own orders
// @Description List the caller's orders with nested line items
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetOwnOrders(c *gin.Context) {
	userID := c.GetInt("user_id")

	orders, err := ctrl.orderSvc.ListOwn(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// PlaceOrder godoc
// @Summary Place order
// @Description Convert the caller's cart into an order atomically
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	userID := c.GetInt("user_id")

	order, err := ctrl.orderSvc.Place(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrCartEmpty) {
			c.JSON(400, gin.H{"success": false, "message": "No items in the cart"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to place order"})
		return
	}

	if ctrl.emailSvc != nil {
		if user, err := ctrl.userRepo.FindByID(c.Request.Context(), userID); err == nil {
			go func(email string, o models.Order) {
				if err := ctrl.emailSvc.SendOrderConfirmation(email, &o); err != nil {
					log.Printf("Failed to send order confirmation for order %d: %v", o.ID, err)
				}
			}(user.Email, *order)
		}
	}

	c.JSON(201, gin.H{"success": true, "message": "Order created successfully", "data": order})
}

// GetOrder godoc
// @Summary Get order
// @Description Get one of the caller's orders by ID
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param order_id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{order_id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	userID := c.GetInt("user_id")
	orderID, _ := strconv.Atoi(c.Param("order_id"))
	if orderID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	order, err := ctrl.orderSvc.Get(c.Request.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// UpdateOrder godoc
// @Summary Update order
// @Description Reassign delivery crew and/or set status (Manager)
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param order_id path int true "Order ID"
// @Param request body models.OrderUpdateRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{order_id} [patch]
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("order_id"))
	if orderID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req models.OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	err := ctrl.orderSvc.ManagerUpdate(c.Request.Context(), orderID, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Order or delivery crew user not found"})
		case errors.Is(err, models.ErrInvalidStatus):
			c.JSON(400, gin.H{"success": false, "message": "Invalid order status"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to update order"})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order updated successfully"})
}

// DeleteOrder godoc
// @Summary Delete order
// @Description Delete an order and its line items (Manager)
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param order_id path int true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{order_id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("order_id"))
	if orderID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	err := ctrl.orderSvc.Delete(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete order"})
		return
	}

	c.Status(204)
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description List every order with owner, assignee, status, total and items (Manager)
// @Tags Manager - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /manager/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctrl.orderSvc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// GetAssignedOrders godoc
// @Summary Get assigned orders
// @Description List orders assigned to the calling delivery crew member
// @Tags Delivery - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /delivery-crew/orders [get]
func (ctrl *OrderController) GetAssignedOrders(c *gin.Context) {
	crewID := c.GetInt("user_id")

	orders, err := ctrl.orderSvc.ListAssigned(c.Request.Context(), crewID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// UpdateAssignedOrder godoc
// @Summary Update assigned order status
// @Description Advance the status of an order assigned to the caller
// @Tags Delivery - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param order_id path int true "Order ID"
// @Param request body models.CrewStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /delivery-crew/orders/{order_id} [patch]
func (ctrl *OrderController) UpdateAssignedOrder(c *gin.Context) {
	crewID := c.GetInt("user_id")
	orderID, _ := strconv.Atoi(c.Param("order_id"))
	if orderID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req models.CrewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == nil {
		c.JSON(400, gin.H{"success": false, "message": "status is required"})
		return
	}

	err := ctrl.orderSvc.CrewUpdate(c.Request.Context(), crewID, orderID, *req.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		case errors.Is(err, models.ErrInvalidStatus):
			c.JSON(400, gin.H{"success": false, "message": "Invalid order status"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to update order status"})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order status updated successfully"})
}
