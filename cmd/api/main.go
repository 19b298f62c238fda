package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	config "github.com/yogamaster/yoga_master/configs"
	"github.com/yogamaster/yoga_master/database"
	"github.com/yogamaster/yoga_master/handlers"
	"github.com/yogamaster/yoga_master/jobs"
	"github.com/yogamaster/yoga_master/notifications"
	"github.com/yogamaster/yoga_master/payments"
	"github.com/yogamaster/yoga_master/routes"
	"github.com/yogamaster/yoga_master/services"
	"github.com/yogamaster/yoga_master/stores"
)

func main() {
	ctx := context.Background()

	mongoURI := config.ConfigOr("MONGO_URI", "mongodb://localhost:27017")
	dbName := config.ConfigOr("DB_NAME", "yoga_master")

	db, err := database.Connect(ctx, mongoURI, dbName)
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}
	log.Println("✅ Database connected successfully")

	db.SeedAdmin(ctx)

	userStore := stores.NewUserStore(db.Collection(database.CollUsers))
	classStore := stores.NewClassStore(db.Collection(database.CollClasses))
	cartStore := stores.NewCartStore(db.Collection(database.CollCart))
	paymentStore := stores.NewPaymentStore(db.Collection(database.CollPayments))
	enrollmentStore := stores.NewEnrollmentStore(db.Collection(database.CollEnrollments))
	applicationStore := stores.NewApplicationStore(db.Collection(database.CollApplications))
	reportStore := stores.NewReportStore(
		db.Collection(database.CollClasses),
		db.Collection(database.CollUsers),
		db.Collection(database.CollEnrollments),
	)

	checkoutService := services.NewCheckoutService(classStore, cartStore, paymentStore, enrollmentStore, db)
	intentClient := payments.NewIntentClient()
	mailer := notifications.NewEmailService()

	cartTTL := time.Duration(config.ConfigInt("CART_TTL_DAYS", 14)) * 24 * time.Hour
	c := cron.New()
	c.AddFunc("30 3 * * *", jobs.PurgeStaleCartItems(cartStore, cartTTL))
	go c.Start()
	log.Println("✅ Cron job for cart cleanup scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Yoga Master",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Yoga Master API",
		})
	})

	routes.AuthRoutes(app, handlers.NewAuthHandler())
	routes.UserRoutes(app, handlers.NewUserHandler(userStore))
	routes.ClassRoutes(app, handlers.NewClassHandler(classStore))
	routes.CartRoutes(app, handlers.NewCartHandler(cartStore))
	routes.PaymentRoutes(app, handlers.NewCheckoutHandler(intentClient, checkoutService, paymentStore, mailer))
	routes.ReportRoutes(app, handlers.NewReportHandler(reportStore))
	routes.ApplicationRoutes(app, handlers.NewApplicationHandler(applicationStore))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "5000")
	go func() {
		log.Printf("✅ Server is running on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("🔥 Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	c.Stop()
	if err := app.Shutdown(); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Close(shutdownCtx); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
