// server/internal/api/handlers/scanner_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ecoconnect-api-server/internal/scanner"

	"github.com/gin-gonic/gin"
)

type ScannerHandler struct {
	Classifier *scanner.Classifier
}

// IdentifyWaste accepts a multipart image upload plus optional requester
// coordinates and returns one classification result.
func (h *ScannerHandler) IdentifyWaste(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded image"})
		return
	}
	defer file.Close()

	req := scanner.Request{
		Filename: fileHeader.Filename,
		Image:    file,
	}

	if latStr := c.PostForm("latitude"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
			return
		}
		req.Latitude = &lat
	}
	if lngStr := c.PostForm("longitude"); lngStr != "" {
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
			return
		}
		req.Longitude = &lng
	}

	result, err := h.Classifier.Classify(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, scanner.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Supported formats: PNG, JPG, JPEG, GIF, WebP"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to classify waste"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}
