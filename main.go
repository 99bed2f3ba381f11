package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"farmbook/pkg/ocr"
	"farmbook/pkg/scan"
)

var (
	cfg       Config
	jwtSecret []byte
	scanner   *scan.Scanner
)

func main() {
	loadDotEnv(".env")
	cfg = loadConfig()
	jwtSecret = []byte(cfg.JWTSecret)
	if cfg.JWTSecret == devJWTSecret {
		log.Printf("WARN JWT_SECRET not set, using development secret")
	}
	if cfg.APIKeyHash == "" {
		log.Printf("WARN API_KEY_HASH not set, /token will reject every key")
	}

	ocrCfg := ocr.DefaultConfig()
	ocrCfg.Languages = cfg.OCRLangs
	ocrCfg.TessdataPrefix = cfg.TessdataPrefix
	ocrCfg.Adaptive = cfg.OCRAdaptive
	scanner = scan.New(ocr.New(ocrCfg))

	r := gin.Default()
	setupRoutes(r)

	log.Printf("farmbook listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
