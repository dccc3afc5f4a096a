// server/internal/api/handlers/center_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"ecoconnect-api-server/internal/centers"
	"ecoconnect-api-server/internal/models"

	"github.com/gin-gonic/gin"
)

type CenterHandler struct {
	Directory *centers.Directory
}

// GetCenters lists recycling centers, optionally filtered by accepted
// material and annotated with distance from the caller's coordinates.
func (h *CenterHandler) GetCenters(c *gin.Context) {
	material := models.MaterialAll
	if materialStr := c.Query("material"); materialStr != "" {
		parsed, err := models.ParseMaterialCategory(materialStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		material = parsed
	}

	var loc *centers.Location
	latStr := c.Query("latitude")
	lngStr := c.Query("longitude")
	if latStr != "" && lngStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
			return
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
			return
		}
		loc = &centers.Location{Latitude: lat, Longitude: lng}
	}

	result := h.Directory.List(material, loc)
	c.JSON(http.StatusOK, gin.H{"data": result, "total": len(result)})
}
