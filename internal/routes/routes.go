package routes

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"leatherworking_backend/internal/config"
	"leatherworking_backend/internal/database"
	"leatherworking_backend/internal/handlers"
	"leatherworking_backend/internal/middleware"
	"leatherworking_backend/internal/services"
	"leatherworking_backend/internal/store/mongodb"
	"leatherworking_backend/internal/validation"
)

// Register wires the production stack: cross-cutting middleware, the MongoDB
// store and the optional MinIO/Elasticsearch collaborators.
func Register(r *gin.Engine) {
	if config.IsProduction() {
		r.Use(middleware.APIRateLimit())
		r.Use(middleware.SecurityHeaders())
		r.Use(cors.New(cors.Config{
			AllowOrigins:     config.AllowedOrigins(),
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
		}))
	} else {
		r.Use(cors.Default())
	}

	st := mongodb.New(database.Mongo)

	var storage services.ObjectStorage
	if database.MinIO != nil {
		storage = services.NewMinioStorage(database.MinIO, os.Getenv("MINIO_BUCKET"))
	}
	var index services.ProductIndex
	if database.Elastic != nil {
		index = services.NewElasticProductIndex(database.Elastic)
	}

	RegisterAPI(r,
		handlers.NewCustomerHandler(st.Customers),
		handlers.NewProductHandler(st.Products, storage, index),
		handlers.NewMaterialHandler(st.Materials),
		handlers.NewOrderHandler(st.Orders),
		handlers.NewProjectHandler(st.Projects),
	)
}

// RegisterAPI mounts the route sets under their path prefixes. Split from
// Register so tests can mount the same routes over an in-memory store.
func RegisterAPI(r *gin.Engine,
	customers *handlers.CustomerHandler,
	products *handlers.ProductHandler,
	materials *handlers.MaterialHandler,
	orders *handlers.OrderHandler,
	projects *handlers.ProjectHandler,
) {
	validation.Init()

	r.GET("/health", handlers.Health)

	api := r.Group("/api")

	c := api.Group("/customers")
	c.GET("", customers.List)
	c.POST("", customers.Create)
	c.GET("/:id", customers.Get)
	c.PUT("/:id", customers.Update)
	c.DELETE("/:id", customers.Delete)

	p := api.Group("/products")
	p.GET("", products.List)
	p.POST("", products.Create)
	p.GET("/search", products.Search)
	p.GET("/:id", products.Get)
	p.PUT("/:id", products.Update)
	p.DELETE("/:id", products.Delete)
	p.POST("/:id/images", products.UploadImage)

	m := api.Group("/materials")
	m.GET("", materials.List)
	m.POST("", materials.Create)
	m.GET("/:id", materials.Get)
	m.PUT("/:id", materials.Update)
	m.DELETE("/:id", materials.Delete)

	o := api.Group("/orders")
	o.GET("", orders.List)
	o.POST("", orders.Create)
	o.GET("/:id", orders.Get)
	o.PUT("/:id", orders.Update)
	o.PATCH("/:id/status", orders.UpdateStatus)
	o.DELETE("/:id", orders.Delete)

	pr := api.Group("/projects")
	pr.GET("", projects.List)
	pr.POST("", projects.Create)
	pr.GET("/:id", projects.Get)
	pr.PUT("/:id", projects.Update)
	pr.PATCH("/:id/status", projects.UpdateStatus)
	pr.DELETE("/:id", projects.Delete)
}
