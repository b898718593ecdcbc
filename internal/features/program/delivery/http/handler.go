package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "luckydraw-backend/internal/common/errors"
	"luckydraw-backend/internal/common/middleware"
	"luckydraw-backend/internal/features/program/catalog"
)

// ProgramHandler serves the static program catalog.
type ProgramHandler struct{}

func NewProgramHandler() *ProgramHandler {
	return &ProgramHandler{}
}

func (h *ProgramHandler) RegisterRoutes(router *gin.RouterGroup) {
	programs := router.Group("/programs")
	{
		programs.GET("", h.list)
		programs.GET("/:id", h.getByID)
	}
}

func (h *ProgramHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Programs)
}

func (h *ProgramHandler) getByID(c *gin.Context) {
	program, ok := catalog.Lookup(c.Param("id"))
	if !ok {
		middleware.SendError(c, apperrors.New(apperrors.ErrCodeProgramNotFound, "program not found").
			WithDetail("program_id", c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, program)
}
