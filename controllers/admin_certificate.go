package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"grantee-portal-api/config"
	"grantee-portal-api/models"
	"grantee-portal-api/services"

	"github.com/gin-gonic/gin"
)

type updateCertificateRequest struct {
	Status   *string `json:"status"`
	IsActive *bool   `json:"is_active"`
	Remark   string  `json:"remark"`
}

// UpdateCertificate applies a reviewer's decision to a certificate: status
// and/or active flag, with an optional remark. The status change is
// committed first; the owner notification runs afterwards on its own error
// channel and can never fail the transition.
func UpdateCertificate(c *gin.Context) {
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

	var req updateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	svc := services.NewCertificateService(config.DB)
	cert, err := svc.Transition(actor, certificateID, services.TransitionInput{
		Status:   req.Status,
		IsActive: req.IsActive,
		Remark:   req.Remark,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrCertificateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		case errors.Is(err, services.ErrReviewerRequired):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		default:
			log.Printf("[UpdateCertificate] transition of %d failed: %v", certificateID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update certificate"})
		}
		return
	}

	// Decision reached: tell the owner. A repeated decision re-notifies on
	// purpose; reviewers use it to resend after updating the remark.
	if req.Status != nil && (cert.Status == models.StatusApproved || cert.Status == models.StatusRejected) {
		go notifyStatusChange(cert, actor.ID, req.Remark)
	}

	certID := cert.CertificateID
	services.LogActivity(config.DB, actor.ID, "review", "certificate", &certID,
		fmt.Sprintf("status=%s", cert.Status), c.ClientIP())

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Certificate updated successfully",
		"certificate": cert,
	})
}

// notifyStatusChange is the fire-and-forget side of a review decision.
// Failures end up in the log, never in the reviewer's response.
func notifyStatusChange(cert *models.Certificate, reviewerID int, remark string) {
	notifier := services.NewNotifier(config.DB)
	if err := notifier.CertificateStatusChanged(cert, reviewerID, remark); err != nil {
		log.Printf("certificate status notification failed (certificate=%d): %v", cert.CertificateID, err)
	}
}

// AdminGetCertificate returns any certificate with owner, files and remarks,
// without the ownership scoping applied to grantee reads.
func AdminGetCertificate(c *gin.Context) {
	certificateID, err := strconv.Atoi(c.Param("id"))
	if err != nil || certificateID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid certificate ID"})
		return
	}

	svc := services.NewCertificateService(config.DB)
	cert, err := svc.GetWithRelations(certificateID)
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
