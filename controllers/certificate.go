package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"grantee-portal-api/config"
	"grantee-portal-api/models"
	"grantee-portal-api/services"
	"grantee-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// getActor resolves the identity the auth middleware stored in the context.
func getActor(c *gin.Context) (services.Actor, bool) {
	userIDVal, okUser := c.Get("userID")
	roleVal, okRole := c.Get("role")
	if !okUser || !okRole {
		return services.Actor{}, false
	}

	userID, okUser := userIDVal.(int)
	role, okRole := roleVal.(models.Role)
	if !okUser || !okRole {
		return services.Actor{}, false
	}

	return services.Actor{ID: userID, Role: role}, true
}

type createCertificateRequest struct {
	Title       string               `json:"title" binding:"required"`
	Semester    string               `json:"semester" binding:"required"`
	Description string               `json:"description"`
	Files       []services.FileInput `json:"files"`
}

// CreateCertificate accepts a new certificate submission from a grantee.
// Files must already be uploaded (POST /uploads); the request carries
// their descriptors, not the bytes.
func CreateCertificate(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	var req createCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	svc := services.NewCertificateService(config.DB)
	cert, err := svc.Create(actor, services.CreateCertificateInput{
		Title:       req.Title,
		Semester:    req.Semester,
		Description: utils.SanitizeInput(req.Description),
		Files:       req.Files,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTitle),
			errors.Is(err, services.ErrInvalidSemester),
			errors.Is(err, services.ErrNoFiles):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create certificate"})
		}
		return
	}

	certID := cert.CertificateID
	services.LogActivity(config.DB, actor.ID, "submit", "certificate", &certID, string(cert.Title), c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Certificate submitted successfully",
		"certificate": cert,
	})
}

// GetCertificates lists certificates visible to the caller. Admin sees all,
// personnel sees their grantees, grantees see their own.
func GetCertificates(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	var statusFilter *models.CertificateStatus
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseCertificateStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		statusFilter = &status
	}

	svc := services.NewCertificateService(config.DB)
	certs, err := svc.List(actor, statusFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list certificates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"certificates": certs,
	})
}

// GetCertificate returns one certificate with files and remarks.
func GetCertificate(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	certificateID, err := strconv.Atoi(c.Param("id"))
	if err != nil || certificateID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid certificate ID"})
		return
	}

	svc := services.NewCertificateService(config.DB)
	cert, err := svc.Get(actor, certificateID)
	if err != nil {
		if errors.Is(err, services.ErrCertificateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load certificate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"certificate": cert,
	})
}
