package routes

import (
	"log"

	"little-lemon/config"
	"little-lemon/controllers"
	"little-lemon/middleware"
	"little-lemon/models"
	"little-lemon/repositories"
	"little-lemon/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository()
	menuRepo := repositories.NewMenuRepository()
	cartRepo := repositories.NewCartRepository()
	orderRepo := repositories.NewOrderRepository()

	menuSvc := services.NewMenuService(menuRepo, config.RedisClient)
	cartSvc := services.NewCartService(cartRepo, menuRepo)
	orderSvc := services.NewOrderService(orderRepo, cartRepo, userRepo)

	emailSvc, err := models.NewEmailService()
	if err != nil {
		log.Println("Email disabled:", err)
		emailSvc = nil
	}

	authCtrl := controllers.NewAuthController(userRepo)
	menuCtrl := controllers.NewMenuController(menuSvc)
	managerGroupCtrl := controllers.NewGroupController(userRepo, models.GroupManager)
	crewGroupCtrl := controllers.NewGroupController(userRepo, models.GroupDeliveryCrew)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, userRepo, emailSvc)

	requireManager := middleware.RequireGroup(userRepo.IsMember, models.GroupManager)
	requireCrew := middleware.RequireGroup(userRepo.IsMember, models.GroupDeliveryCrew)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/categories", menuCtrl.GetCategories)
		auth.POST("/categories", requireManager, menuCtrl.CreateCategory)

		auth.GET("/menu-items/", menuCtrl.GetMenuItems)
		auth.POST("/menu-items/", requireManager, menuCtrl.CreateMenuItem)
		auth.GET("/menu-items/:id", menuCtrl.GetMenuItemByID)
		auth.PUT("/menu-items/:id", requireManager, menuCtrl.UpdateMenuItem)
		auth.PATCH("/menu-items/:id", requireManager, menuCtrl.PatchMenuItem)
		auth.DELETE("/menu-items/:id", requireManager, menuCtrl.DeleteMenuItem)

		auth.GET("/groups/manager/users", requireManager, managerGroupCtrl.ListMembers)
		auth.POST("/groups/manager/users", requireManager, managerGroupCtrl.AddMember)
		auth.DELETE("/groups/manager/users/:user_id", requireManager, managerGroupCtrl.RemoveMember)

		auth.GET("/groups/delivery-crew/users", requireManager, crewGroupCtrl.ListMembers)
		auth.POST("/groups/delivery-crew/users", requireManager, crewGroupCtrl.AddMember)
		auth.DELETE("/groups/delivery-crew/users/:user_id", requireManager, crewGroupCtrl.RemoveMember)

		auth.GET("/cart/menu-items", cartCtrl.GetCart)
		auth.POST("/cart/menu-items", cartCtrl.AddToCart)
		auth.DELETE("/cart/menu-items", cartCtrl.ClearCart)

		auth.GET("/orders", orderCtrl.GetOwnOrders)
		auth.POST("/orders", orderCtrl.PlaceOrder)
		auth.GET("/orders/:order_id", orderCtrl.GetOrder)
		auth.PUT("/orders/:order_id", requireManager, orderCtrl.UpdateOrder)
		auth.PATCH("/orders/:order_id", requireManager, orderCtrl.UpdateOrder)
		auth.DELETE("/orders/:order_id", requireManager, orderCtrl.DeleteOrder)

		auth.GET("/manager/orders", requireManager, orderCtrl.GetAllOrders)

		auth.GET("/delivery-crew/orders", requireCrew, orderCtrl.GetAssignedOrders)
		auth.PATCH("/delivery-crew/orders/:order_id", requireCrew, orderCtrl.UpdateAssignedOrder)
	}
}
