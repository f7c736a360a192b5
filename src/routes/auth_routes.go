package routes

import (
	"survey-api/src/controllers"
	"survey-api/src/middleware"
	"survey-api/src/services/auth"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthRoutes กำหนดเส้นทาง login/refresh/logout ของ operator
func AuthRoutes(app *fiber.App, db *mongo.Database) {
	ctrl := controllers.NewAuthController(auth.NewAuthService(db))

	g := app.Group("/auth")
	g.Post("/login", ctrl.Login)
	g.Post("/refresh", ctrl.Refresh)
	g.Post("/logout", middleware.AuthJWT, ctrl.Logout)
}
