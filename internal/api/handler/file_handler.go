package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/internal/service"
)

const contentTypeMP4 = "video/mp4"

// FileHandler video file delivery
type FileHandler struct {
	mediaSvc service.MediaService
}

// NewFileHandler creates a FileHandler
func NewFileHandler(mediaSvc service.MediaService) *FileHandler {
	return &FileHandler{mediaSvc: mediaSvc}
}

// Download GET /api/files/download/:id; the temp copy is removed once sent
func (h *FileHandler) Download(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	file, err := h.mediaSvc.Download(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	defer func() {
		if err := file.Remove(); err != nil {
			_ = c.Error(err)
		}
	}()

	c.FileAttachment(file.Path, file.FileName)
}

// Stream GET /api/files/stream/:id
func (h *FileHandler) Stream(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	obj, err := h.mediaSvc.Stream(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	defer obj.Body.Close()

	size := obj.Size
	if size <= 0 {
		size = -1
	}
	c.DataFromReader(http.StatusOK, size, contentTypeMP4, obj.Body, nil)
}
