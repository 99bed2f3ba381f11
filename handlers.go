package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"farmbook/models"
	"farmbook/pkg/scan"
)

const requestIDHeader = "X-Request-ID"

func setupRoutes(r *gin.Engine) {
	r.Use(requestIDMiddleware())
	r.GET("/healthz", healthHandler)
	r.POST("/token", tokenHandler)
	authGroup := r.Group("")
	authGroup.Use(jwtAuthMiddleware())
	authGroup.GET("/categories", categoriesHandler)
	authGroup.POST("/extract", extractHandler)
	authGroup.POST("/scan", scanHandler)
}

// requestIDMiddleware tags every request with an id, reusing the caller's if sent.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		start := time.Now()
		c.Next()
		log.Printf("REQ id=%s %s %s status=%d latency=%s", id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func tokenHandler(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := checkAPIKey(req.APIKey); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	token, exp, err := issueToken(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{Token: token, ExpiresAt: exp.Unix()})
}

func categoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories()})
}

// extractHandler runs field extraction over text the client already recognized.
func extractHandler(c *gin.Context) {
	var req models.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := scanner.ScanText(req.Text, "")
	c.JSON(http.StatusOK, models.NewExtractResponse(out))
}

// scanHandler stores the uploaded bill under a unique name just long enough to
// OCR it; nothing is kept once the outcome is returned.
func scanHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file missing"})
		return
	}
	if file.Size > int64(cfg.MaxUploadMB)*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("file too large (max %dMB)", cfg.MaxUploadMB)})
		return
	}
	if !scan.IsImage(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		return
	}

	if err := os.MkdirAll(cfg.UploadBase, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mkdir failed"})
		return
	}
	name := filepath.Base(file.Filename)
	fullPath := filepath.Join(cfg.UploadBase, uuid.NewString()+"-"+name)
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	defer os.Remove(fullPath)

	out := scanner.ScanFile(fullPath, name)
	log.Printf("SCAN id=%s file=%s status=%s fields=%v", c.GetString("request_id"), name, out.Status, out.Suggestion.Applied)
	c.JSON(http.StatusOK, out)
}
