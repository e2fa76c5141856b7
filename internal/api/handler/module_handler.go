package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

// ModuleHandler modules
type ModuleHandler struct {
	moduleSvc service.ModuleService
}

// NewModuleHandler creates a ModuleHandler
func NewModuleHandler(moduleSvc service.ModuleService) *ModuleHandler {
	return &ModuleHandler{moduleSvc: moduleSvc}
}

// CreateModule POST /modules
func (h *ModuleHandler) CreateModule(c *gin.Context) {
	var req dto.CreateModuleRequest
	if !bindJSON(c, &req) {
		return
	}
	module, err := h.moduleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, "Module created successfully", module.ModuleID)
}

// ListModules GET /modules
func (h *ModuleHandler) ListModules(c *gin.Context) {
	modules, err := h.moduleSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, modules)
}

// GetModule GET /modules/:id
func (h *ModuleHandler) GetModule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	module, err := h.moduleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, module)
}

// UpdateModule PUT /modules/:id
func (h *ModuleHandler) UpdateModule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateModuleRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.moduleSvc.Update(c.Request.Context(), id, &req); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "Module updated successfully")
}

// DeleteModule DELETE /modules/:id
func (h *ModuleHandler) DeleteModule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.moduleSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "Module deleted successfully")
}

// ── module on course ──

// ModuleOnCourseHandler module placement on courses
type ModuleOnCourseHandler struct {
	linkSvc service.ModuleOnCourseService
}

// NewModuleOnCourseHandler creates a ModuleOnCourseHandler
func NewModuleOnCourseHandler(linkSvc service.ModuleOnCourseService) *ModuleOnCourseHandler {
	return &ModuleOnCourseHandler{linkSvc: linkSvc}
}

// AddModule POST /module-on-course
func (h *ModuleOnCourseHandler) AddModule(c *gin.Context) {
	var req dto.ModuleOnCourseRequest
	if !bindJSON(c, &req) {
		return
	}
	link, err := h.linkSvc.Add(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, "Module added to course successfully", link.ID)
}

// ListLinks GET /module-on-course
func (h *ModuleOnCourseHandler) ListLinks(c *gin.Context) {
	links, err := h.linkSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, links)
}

// RemoveModule DELETE /module-on-course/:id
func (h *ModuleOnCourseHandler) RemoveModule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.linkSvc.Remove(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "Module removed from course successfully")
}
