package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler spreadsheet and calendar exports
type ExportHandler struct {
	exportSvc   service.ExportService
	calendarSvc service.CalendarService
}

// NewExportHandler creates an ExportHandler
func NewExportHandler(exportSvc service.ExportService, calendarSvc service.CalendarService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, calendarSvc: calendarSvc}
}

// ExportFeedback GET /feedbacks/export?assignmentId=N
func (h *ExportHandler) ExportFeedback(c *gin.Context) {
	var q dto.FeedbackExportQuery
	if err := c.ShouldBindQuery(&q); err != nil || q.AssignmentID <= 0 {
		response.BadRequest(c, "assignmentId is required")
		return
	}

	buf, filename, err := h.exportSvc.ExportFeedback(c.Request.Context(), q.AssignmentID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// ModuleCalendar GET /assignments/module/:ModuleID/calendar
func (h *ExportHandler) ModuleCalendar(c *gin.Context) {
	moduleID, ok := parseID(c, "ModuleID")
	if !ok {
		return
	}

	cal, err := h.calendarSvc.ModuleCalendar(c.Request.Context(), moduleID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=module.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal))
}
