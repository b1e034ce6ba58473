package routes

import (
	"Backend-LevelOneGym/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// DashboardRoutes กำหนดเส้นทางสำหรับ Dashboard API
func DashboardRoutes(app *fiber.App) {
	dashboardRoutes := app.Group("/dashboard")
	dashboardRoutes.Post("/upload", controllers.UploadDashboard) // อัปโหลด CSV แล้วคำนวณสถิติ
}
