package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "luckydraw-backend/internal/common/errors"
	"luckydraw-backend/internal/common/middleware"
	"luckydraw-backend/internal/features/draw/models"
	"luckydraw-backend/internal/features/draw/models/dto"
	"luckydraw-backend/internal/features/draw/store"
	"luckydraw-backend/internal/features/program/catalog"
	"luckydraw-backend/internal/utils/numbers"
)

// DrawHandler exposes the draw store's operations to the control surface.
// The routes exist on every replica; only the operator's control process is
// expected to call the mutating ones.
type DrawHandler struct {
	store *store.Store
}

func NewDrawHandler(st *store.Store) *DrawHandler {
	return &DrawHandler{store: st}
}

func (h *DrawHandler) RegisterRoutes(router *gin.RouterGroup) {
	draw := router.Group("/draw")
	{
		draw.GET("/state", h.getState)
		draw.PUT("/program", h.selectProgram)
		draw.POST("/prizes", h.addPrize)
		draw.DELETE("/prizes/:id", h.removePrize)
		draw.POST("/participants", h.addParticipant)
		draw.POST("/random", h.drawByRandom)
		draw.POST("/wheel-stop", h.wheelStop)
		draw.POST("/running", h.setRunning)
		draw.POST("/winners/reset", h.resetWinners)
		draw.POST("/cage/show", h.showCage)
		draw.POST("/cage/reset", h.resetCage)
	}
}

func (h *DrawHandler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

func (h *DrawHandler) selectProgram(c *gin.Context) {
	var input dto.ProgramSelectRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		middleware.SendError(c, apperrors.NewValidationError("program_id", err.Error()))
		return
	}
	if _, ok := catalog.Lookup(input.ProgramID); !ok {
		middleware.SendError(c, apperrors.New(apperrors.ErrCodeProgramNotFound, "program not found").
			WithDetail("program_id", input.ProgramID))
		return
	}
	h.store.SetProgramID(input.ProgramID)
	c.JSON(http.StatusOK, gin.H{"program_id": input.ProgramID})
}

func (h *DrawHandler) addPrize(c *gin.Context) {
	var input dto.PrizeCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		middleware.SendError(c, apperrors.NewValidationError("prize", err.Error()))
		return
	}
	prize := h.store.AddPrize(models.Prize{
		Label: input.Label,
		Count: input.Count,
		Image: input.Image,
		Tier:  models.PrizeTier(input.Tier),
	})
	if prize == nil {
		middleware.SendError(c, apperrors.NewValidationError("prize", "rejected by store"))
		return
	}
	c.JSON(http.StatusCreated, prize)
}

func (h *DrawHandler) removePrize(c *gin.Context) {
	if !h.store.RemovePrize(c.Param("id")) {
		middleware.SendError(c, apperrors.NewNotFoundError("prize", c.Param("id")))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DrawHandler) addParticipant(c *gin.Context) {
	var input dto.ParticipantCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		middleware.SendError(c, apperrors.NewValidationError("participant", err.Error()))
		return
	}
	participant := h.store.AddParticipant(models.Participant{
		Name:  input.Name,
		Phone: input.Phone,
		Count: input.Count,
	})
	if participant == nil {
		middleware.SendError(c, apperrors.NewValidationError("phone", "no digits after normalization"))
		return
	}
	c.JSON(http.StatusCreated, participant)
}

func (h *DrawHandler) drawByRandom(c *gin.Context) {
	winner, err := h.store.DrawByRandom()
	if err != nil {
		middleware.SendError(c, drawError(err))
		return
	}
	c.JSON(http.StatusOK, dto.WinnerResponse{Winner: winner})
}

func (h *DrawHandler) wheelStop(c *gin.Context) {
	var input dto.WheelStopRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		middleware.SendError(c, apperrors.NewValidationError("index", err.Error()))
		return
	}
	winner, err := h.store.WheelStopAt(*input.Index)
	if err != nil {
		middleware.SendError(c, drawError(err))
		return
	}
	c.JSON(http.StatusOK, dto.WinnerResponse{Winner: winner})
}

func (h *DrawHandler) setRunning(c *gin.Context) {
	var input dto.RunningRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		middleware.SendError(c, apperrors.NewValidationError("running", err.Error()))
		return
	}
	h.store.SetRunning(*input.Running)
	c.JSON(http.StatusOK, gin.H{"running": *input.Running})
}

func (h *DrawHandler) resetWinners(c *gin.Context) {
	h.store.ResetWinners()
	c.Status(http.StatusNoContent)
}

func (h *DrawHandler) showCage(c *gin.Context) {
	var input dto.CageShowRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		middleware.SendError(c, apperrors.NewValidationError("number", err.Error()))
		return
	}
	display := numbers.NormalizeDigits(input.Number)
	if display == "" {
		middleware.SendError(c, apperrors.NewValidationError("number", "no digits after normalization"))
		return
	}
	h.store.ShowCage(display)
	c.JSON(http.StatusOK, dto.CageShowResponse{
		Display: display,
		Special: numbers.IsSpecial(display),
	})
}

func (h *DrawHandler) resetCage(c *gin.Context) {
	h.store.ResetCage()
	c.Status(http.StatusNoContent)
}

// drawError maps store sentinels to application error codes.
func drawError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, store.ErrDrawRunning):
		return apperrors.New(apperrors.ErrCodeDrawRunning, "a draw is already in progress")
	case errors.Is(err, store.ErrNoPrizes):
		return apperrors.New(apperrors.ErrCodeNoPrizes, "no prizes remain")
	case errors.Is(err, store.ErrNoEligible):
		return apperrors.New(apperrors.ErrCodeNoEligible, "no eligible participants")
	case errors.Is(err, store.ErrPrizeIndex):
		return apperrors.New(apperrors.ErrCodePrizeIndex, "no prize at wheel index")
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "draw failed")
	}
}
