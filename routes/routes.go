package routes

import (
	"net/http"

	"github.com/Nazmul-4/FoodChef-server/controllers"
	"github.com/Nazmul-4/FoodChef-server/middleware"
	"github.com/gin-gonic/gin"
)

// Register wires the full route table. The auth guard is applied uniformly to
// every protected route; public ones are meal browsing, registration and the
// liveness string.
func Register(
	r *gin.Engine,
	verifier middleware.TokenVerifier,
	meals *controllers.MealController,
	users *controllers.UserController,
	orders *controllers.OrderController,
	payments *controllers.PaymentController,
) {
	auth := middleware.RequireAuth(verifier)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "FoodChef Server is Sitting")
	})

	r.GET("/meals", meals.GetMeals)
	r.GET("/meals/top", meals.GetTopMeals)
	r.GET("/meals/:id", meals.GetMealByID)
	r.POST("/meals", auth, meals.CreateMeal)
	r.GET("/meals/chef/:email", auth, meals.GetMealsByChef)
	r.DELETE("/meals/:id", auth, meals.DeleteMeal)

	r.POST("/users", users.Register)
	r.GET("/users", auth, users.GetUsers)
	r.PATCH("/users/admin/:id", auth, users.SetRole)
	r.GET("/users/admin/:email", auth, users.CheckAdmin)
	r.GET("/users/chef/:email", auth, users.CheckChef)

	r.POST("/orders", auth, orders.CreateOrder)
	r.GET("/orders", auth, orders.GetOrders)
	r.GET("/orders/:id", auth, orders.GetOrderByID)
	r.DELETE("/orders/:id", auth, orders.DeleteOrder)
	r.GET("/orders/chef/:chefEmail", auth, orders.GetChefOrders)
	r.PATCH("/orders/status/:id", auth, orders.UpdateOrderStatus)

	r.POST("/create-payment-intent", auth, payments.CreatePaymentIntent)
	r.POST("/payments", auth, payments.RecordPayment)
	r.GET("/payments/:email", auth, payments.GetPaymentsByEmail)
	r.GET("/payments", auth, payments.GetPayments)
}
