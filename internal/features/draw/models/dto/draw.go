package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"luckydraw-backend/internal/features/draw/models"
)

// PrizeCreateRequest adds one prize line to the pool.
type PrizeCreateRequest struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Image string `json:"image,omitempty"`
	Tier  string `json:"tier,omitempty"`
}

func (req *PrizeCreateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Label, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Count, validation.Required, validation.Min(1)),
		validation.Field(&req.Tier, validation.In("S", "A", "B", "C")),
	)
}

// ParticipantCreateRequest adds one roster entry. The phone may arrive with
// formatting characters; the store normalizes it to digits.
type ParticipantCreateRequest struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone"`
	Count int    `json:"count,omitempty"`
}

func (req *ParticipantCreateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Phone, validation.Required, validation.Length(1, 32)),
		validation.Field(&req.Name, validation.Length(0, 100)),
		validation.Field(&req.Count, validation.Min(0)),
	)
}

// ProgramSelectRequest switches the active program.
type ProgramSelectRequest struct {
	ProgramID string `json:"program_id"`
}

func (req *ProgramSelectRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ProgramID, validation.Required),
	)
}

// WheelStopRequest commits a wheel draw at the landing segment.
type WheelStopRequest struct {
	Index *int `json:"index"`
}

func (req *WheelStopRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Index, validation.NotNil, validation.Min(0)),
	)
}

// RunningRequest toggles the in-flight draw guard around the animation
// window.
type RunningRequest struct {
	Running *bool `json:"running"`
}

func (req *RunningRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Running, validation.NotNil),
	)
}

// CageShowRequest reveals a cage number.
type CageShowRequest struct {
	Number string `json:"number"`
}

func (req *CageShowRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Number, validation.Required, validation.Length(1, 16)),
	)
}

// WinnerResponse wraps a committed draw result.
type WinnerResponse struct {
	Winner *models.Winner `json:"winner"`
}

// CageShowResponse echoes the normalized reveal with its highlight flag.
type CageShowResponse struct {
	Display string `json:"display"`
	Special bool   `json:"special"`
}
