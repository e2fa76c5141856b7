package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

// CourseHandler courses
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler creates a CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// CreateCourse POST /courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(c, &req) {
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, "Course created successfully", course.CourseID)
}

// ListCourses GET /courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, courses)
}

// GetCourse GET /courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	course, err := h.courseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, course)
}

// UpdateCourse PUT /courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCourseRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.courseSvc.Update(c.Request.Context(), id, &req); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "Course updated successfully")
}

// DeleteCourse DELETE /courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.courseSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "Course deleted successfully")
}
