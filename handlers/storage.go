package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"servana/services/storage"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 8 << 20

// StorageHandler handles media uploads for avatars, service images and
// verification documents.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// uploadFolders maps the multipart field name to the destination folder.
var uploadFolders = map[string]string{
	"avatar":   "avatars",
	"image":    "services",
	"document": "documents",
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// UploadFileHandler handles POST /uploads/:kind. The path segment selects
// the destination folder; unknown kinds are rejected.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	kind := c.Param("kind")
	folder, ok := uploadFolders[kind]
	if !ok {
		utils.RespondError(c, utils.ValidationError("invalid upload kind", map[string]string{
			"kind": "must be one of avatar, image, document",
		}))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, utils.ValidationError("file not provided", map[string]string{
			"file": err.Error(),
		}))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		utils.RespondError(c, utils.ValidationError("file too large", map[string]string{
			"file": "must not exceed 8MB",
		}))
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		utils.RespondError(c, utils.ValidationError("unsupported file type", map[string]string{
			"file": "allowed extensions are jpg, jpeg, png, webp, pdf",
		}))
		return
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" && !allowedContentTypes[ct] {
		utils.RespondError(c, utils.ValidationError("unsupported file type", map[string]string{
			"file": "content type " + ct + " is not allowed",
		}))
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), uuid.New().String()+ext)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.RespondError(c, utils.UpstreamError("failed to save file", err))
		return
	}
	defer os.Remove(tempFilePath)

	result, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, folder)
	if err != nil {
		utils.RespondError(c, utils.UpstreamError("failed to upload file", err))
		return
	}

	utils.RespondOK(c, http.StatusCreated, result)
}

// DeleteFileHandler handles DELETE /admin/uploads/:publicId.
func (h *StorageHandler) DeleteFileHandler(c *gin.Context) {
	publicID := c.Param("publicId")
	if publicID == "" {
		utils.RespondError(c, utils.ValidationError("missing public id", nil))
		return
	}
	if err := h.StorageSvc.DeleteFile(c.Request.Context(), publicID); err != nil {
		utils.RespondError(c, utils.UpstreamError("failed to delete file", err))
		return
	}
	utils.RespondMessage(c, http.StatusOK, "file deleted")
}
