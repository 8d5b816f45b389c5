package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"grantee-portal-api/utils"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB

var allowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// UploadCertificateFile stores one certificate attachment on disk and
// returns the descriptor the certificate creation request consumes.
// Uploading and creating are two separate steps; files stored here without a
// later certificate row are an accepted inconsistency window.
func UploadCertificateFile(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 10MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}

	userDir, err := utils.UserUploadDir(uploadPath, actor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload directory"})
		return
	}

	storedName := utils.StoredFilename(file.Filename)
	fullPath := filepath.Join(userDir, storedName)

	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"file": gin.H{
			"file_name": file.Filename,
			"file_url":  fullPath,
			"file_size": file.Size,
			"file_type": file.Header.Get("Content-Type"),
		},
	})
}
