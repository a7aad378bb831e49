package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gamepress-cms/helper"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	uploadDir string
	Helper    *helper.HTTPHelper
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir, Helper: &helper.HTTPHelper{}}
}

// UploadImage stores a cover or inline image under a date+uuid filename
// and returns its public URL.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		h.Helper.SendBadRequest(c, "No image in request", h.Helper.EmptyJsonMap())
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		h.Helper.SendBadRequest(c, "Only image files are allowed", h.Helper.EmptyJsonMap())
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0755); err != nil {
		h.Helper.SendInternalError(c, "Failed to create upload directory", h.Helper.EmptyJsonMap())
		return
	}

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	path := filepath.Join(h.uploadDir, filename)

	if err := c.SaveUploadedFile(file, path); err != nil {
		h.Helper.SendInternalError(c, "Failed to save file", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Upload complete", gin.H{
		"filename": filename,
		"url":      "/static/uploads/" + filename,
	})
}
