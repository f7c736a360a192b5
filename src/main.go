package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	_ "survey-api/docs"
	"survey-api/src/database"
	"survey-api/src/jobs"
	"survey-api/src/routes"
	"survey-api/src/services/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title        Survey API
// @version      1.0
// @description  Survey creation, invitation and response collection backend
// @BasePath     /
func main() {

	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	db := database.GetDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Error ensuring indexes: %v", err)
	}

	// Redis + Asynq สำหรับ refresh token และ reminder (ไม่มีก็รันได้)
	database.InitRedis()
	database.InitAsynq()
	jobs.StartWorker(db)

	// สร้าง admin ตั้งต้นจาก ENV รอบแรก
	if err := auth.NewAuthService(db).EnsureDefaultAdmin(ctx); err != nil {
		log.Println("⚠️ Failed to seed default admin:", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, db)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	log.Println("Server is running on port " + appURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI))); err != nil {
		log.Fatal(err)
	}
}
