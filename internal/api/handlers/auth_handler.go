// server/internal/api/handlers/auth_handler.go
package handlers

import (
	"errors"
	"net/http"

	"ecoconnect-api-server/internal/authgw"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Gateway *authgw.Gateway
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Login forwards credentials to the auth service. The service's error
// text passes through to the caller; transport failures get the generic
// fallback.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, message, err := h.Gateway.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var remote *authgw.RemoteError
		if errors.As(err, &remote) {
			c.JSON(remote.StatusCode, gin.H{"error": remote.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": authgw.GenericErrorMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "user": user})
}

// Register forwards the flat field set to the auth service and relays its
// message verbatim. The session is never touched.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.Gateway.Register(c.Request.Context(), authgw.RegisterRequest{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		var remote *authgw.RemoteError
		if errors.As(err, &remote) {
			c.JSON(remote.StatusCode, gin.H{"error": remote.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": authgw.GenericErrorMessage})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": message})
}

// Logout is best-effort against the remote service; the local session is
// cleared either way, so this never fails.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Gateway.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Session probes the auth service and reports the outcome. Probe failures
// read as logged out, never as errors.
func (h *AuthHandler) Session(c *gin.Context) {
	user, loggedIn := h.Gateway.ProbeSession(c.Request.Context())
	if !loggedIn {
		c.JSON(http.StatusOK, gin.H{"logged_in": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logged_in": true, "user": user})
}
