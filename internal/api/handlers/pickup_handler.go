// server/internal/api/handlers/pickup_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ecoconnect-api-server/internal/models"
	"ecoconnect-api-server/internal/registry"

	"github.com/gin-gonic/gin"
)

type PickupHandler struct {
	Registry *registry.Registry
}

type CreatePickupRequest struct {
	PickupAddress       string  `json:"pickup_address" binding:"required"`
	PickupLatitude      float64 `json:"pickup_latitude" binding:"required,min=-90,max=90"`
	PickupLongitude     float64 `json:"pickup_longitude" binding:"required,min=-180,max=180"`
	WasteCategory       string  `json:"waste_category" binding:"required"`
	WasteDescription    string  `json:"waste_description"`
	EstimatedWeight     float64 `json:"estimated_weight" binding:"min=0"`
	PaymentAmount       float64 `json:"payment_amount" binding:"min=0"`
	SpecialInstructions string  `json:"special_instructions"`
	RequesterFirstName  string  `json:"requester_first_name" binding:"required"`
	RequesterLastName   string  `json:"requester_last_name"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreatePickup posts a new pending job into the available collection.
func (h *PickupHandler) CreatePickup(c *gin.Context) {
	var req CreatePickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := models.ParseWasteCategory(req.WasteCategory)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := models.PickupJob{
		PickupAddress:       req.PickupAddress,
		PickupLatitude:      req.PickupLatitude,
		PickupLongitude:     req.PickupLongitude,
		WasteCategory:       category,
		WasteDescription:    req.WasteDescription,
		EstimatedWeight:     req.EstimatedWeight,
		PaymentAmount:       req.PaymentAmount,
		SpecialInstructions: req.SpecialInstructions,
		Requester: models.Requester{
			FirstName: req.RequesterFirstName,
			LastName:  req.RequesterLastName,
		},
	}

	created, err := h.Registry.Create(job)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Pickup request created successfully", "data": created})
}

// GetAvailable lists unclaimed jobs. With latitude/longitude each job is
// annotated with distance, filtered to the radius (default 25 km) and
// sorted nearest first.
func (h *PickupHandler) GetAvailable(c *gin.Context) {
	loc, radius, err := viewerLocation(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jobs := h.Registry.Available(loc, radius)
	c.JSON(http.StatusOK, gin.H{"data": jobs, "total": len(jobs)})
}

// GetActive lists the jobs claimed by the worker, completed ones included.
func (h *PickupHandler) GetActive(c *gin.Context) {
	jobs := h.Registry.Active()
	c.JSON(http.StatusOK, gin.H{"data": jobs, "total": len(jobs)})
}

// AcceptPickup claims an available job. The registry treats an unknown id
// as a no-op; here that reads as the job not being available anymore.
func (h *PickupHandler) AcceptPickup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pickup id"})
		return
	}

	job, ok := h.Registry.Accept(id)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Pickup request is not available for acceptance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pickup request accepted successfully", "data": job})
}

// UpdateStatus advances an active job to the requested status. Only the
// immediate successor status is accepted.
func (h *PickupHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pickup id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParsePickupStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.Registry.AdvanceStatus(id, status)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pickup request not found"})
		case errors.Is(err, registry.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pickup status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pickup request status updated to " + string(status), "data": job})
}

// CancelPickup cancels a job that has not reached a terminal state.
func (h *PickupHandler) CancelPickup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pickup id"})
		return
	}

	_, err = h.Registry.Cancel(id)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pickup request not found"})
		case errors.Is(err, registry.ErrNotCancellable):
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot cancel a completed or already cancelled request"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel pickup request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pickup request cancelled successfully"})
}

// GetStats reports the worker's pickup statistics.
func (h *PickupHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.Registry.Stats()})
}

func viewerLocation(c *gin.Context) (*registry.Location, float64, error) {
	latStr := c.Query("latitude")
	lngStr := c.Query("longitude")
	if latStr == "" || lngStr == "" {
		return nil, 0, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, 0, errors.New("invalid latitude")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, 0, errors.New("invalid longitude")
	}

	radius := 25.0
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return nil, 0, errors.New("invalid radius")
		}
	}

	return &registry.Location{Latitude: lat, Longitude: lng}, radius, nil
}
