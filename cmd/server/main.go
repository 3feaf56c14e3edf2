package main

import (
	"fmt"
	"log"
	"net/http"

	"steamviz/backend/internal/catalog"
	"steamviz/backend/internal/config"
	"steamviz/backend/internal/database"
	"steamviz/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "steamviz/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           SteamViz API
// @version         1.0
// @description     Data exploration API and dashboard over a static catalog of best-selling games.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	// Load the catalog and seed the in-memory database
	games, err := catalog.Load(config.AppConfig.CatalogCSV)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	database.Connect(database.InMemoryDSN)
	if err := database.Seed(games); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	log.Printf("Catalog seeded: %d games from %s", len(games), config.AppConfig.CatalogCSV)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Dashboard pages
	router.GET("/", handler.Dashboard)
	router.GET("/dashboard", handler.Dashboard)
	router.GET("/charts/icicle.svg", handler.GetIcicleSVG)

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/games", handler.ListGames)

		metaRoutes := apiV1.Group("/meta")
		{
			metaRoutes.GET("/filters", handler.GetFilterMeta)
		}

		chartRoutes := apiV1.Group("/charts")
		{
			chartRoutes.GET("/bar", handler.GetBarChart)
			chartRoutes.GET("/treemap", handler.GetTreemapChart)
			chartRoutes.GET("/parallel", handler.GetParallelChart)
			chartRoutes.GET("/bubble", handler.GetBubbleChart)
			chartRoutes.GET("/sunburst", handler.GetSunburstChart)
			chartRoutes.GET("/heatmap", handler.GetHeatmapChart)
			chartRoutes.GET("/line", handler.GetLineChart)
			chartRoutes.GET("/icicle", handler.GetIcicleChart)
			chartRoutes.GET("/scatter3d", handler.GetScatter3DChart)
		}

		exportRoutes := apiV1.Group("/export")
		{
			exportRoutes.GET("/bar.png", handler.ExportBarPNG)
			exportRoutes.GET("/line.png", handler.ExportLinePNG)
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ListenAddr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", config.AppConfig.ListenAddr)
	log.Fatal(router.Run(config.AppConfig.ListenAddr))
}
