package main

import (
	"log"
	"os"

	"imagestego-backend/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	config.ExposeHeaders = []string{"X-Stego-PSNR", "X-Stego-Capacity", "X-Stego-Used-Bits", "Content-Disposition"}
	config.AllowCredentials = true
	router.Use(cors.New(config))

	stegoHandler := handlers.NewStegoHandler()

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", stegoHandler.HealthCheck)

		stego := api.Group("/stego")
		{
			stego.POST("/capacity", stegoHandler.Capacity)
			stego.POST("/encode", stegoHandler.Encode)
			stego.POST("/decode", stegoHandler.Decode)
			stego.POST("/detect", stegoHandler.Detect)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API endpoints:")
	log.Printf("  POST /api/v1/stego/capacity - Report LSB capacity of an image")
	log.Printf("  POST /api/v1/stego/encode   - Embed a payload into an image (returns stego PNG)")
	log.Printf("  POST /api/v1/stego/decode   - Extract an embedded payload (returns payload file)")
	log.Printf("  POST /api/v1/stego/detect   - Score an image for likely LSB embedding")
	log.Printf("  GET  /api/v1/health         - Health check")
	log.Printf("")
	log.Printf("Features:")
	log.Printf("  • PNG/JPEG/GIF/BMP/TIFF input, PNG output (lossless, preserves LSBs)")
	log.Printf("  • LSB steganography, 1 bit per RGB channel")
	log.Printf("  • Heuristic LSB detector (balance + adjacent flip rate)")
	log.Printf("  • PSNR quality assessment (returned in X-Stego-PSNR header)")
	log.Printf("  • Direct streaming (no disk storage)")

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
