package handler

import (
	"errors"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

// VideoHandler video ingest and catalogue
type VideoHandler struct {
	videoSvc service.VideoService
}

// NewVideoHandler creates a VideoHandler
func NewVideoHandler(videoSvc service.VideoService) *VideoHandler {
	return &VideoHandler{videoSvc: videoSvc}
}

// UploadVideo POST /videos, multipart fields file and videoTitle
func (h *VideoHandler) UploadVideo(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeUploadError(c, err)
		return
	}

	title := strings.TrimSpace(c.PostForm("videoTitle"))
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(fh.Filename), filepath.Ext(fh.Filename))
	}

	f, err := fh.Open()
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Error uploading video")
		return
	}
	defer f.Close()

	result, err := h.videoSvc.Upload(c.Request.Context(), &service.UploadInput{
		Title:    title,
		FileName: fh.Filename,
		Body:     f,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListVideos GET /videos
func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.videoSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, videos)
}

// GetVideo GET /videos/:id
func (h *VideoHandler) GetVideo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	video, err := h.videoSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, video)
}

// DeleteVideo DELETE /videos/:id
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	caller, ok := mustGetCaller(c)
	if !ok {
		return
	}
	if err := h.videoSvc.Delete(c.Request.Context(), id, caller); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "Video deleted successfully")
}

// writeUploadError tells a missing file part apart from a body that could not be read
func writeUploadError(c *gin.Context, err error) {
	var netErr net.Error
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
		response.BadRequest(c, "No video file uploaded")
	case isTooLarge(err):
		response.Error(c, http.StatusRequestEntityTooLarge, msgTooLarge)
	case errors.As(err, &netErr) && netErr.Timeout():
		response.Error(c, http.StatusRequestTimeout, "Upload timed out")
	case errors.Is(err, io.ErrUnexpectedEOF):
		response.BadRequest(c, "Upload body incomplete")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Error reading uploaded video")
	}
}
