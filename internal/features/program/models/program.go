package models

// ProgramType selects the draw modality that is legal for a program.
type ProgramType string

const (
	ProgramTypeCage   ProgramType = "cage"
	ProgramTypeOnline ProgramType = "online"
)

// ProgramStatus is informational only and does not gate store operations.
type ProgramStatus string

const (
	ProgramStatusOpen     ProgramStatus = "open"
	ProgramStatusUpcoming ProgramStatus = "upcoming"
	ProgramStatusClosed   ProgramStatus = "closed"
)

// Program describes one configured event program.
type Program struct {
	ID          string        `json:"id"`
	Code        string        `json:"code"`
	Title       string        `json:"title"`
	Type        ProgramType   `json:"type"`
	Status      ProgramStatus `json:"status"`
	Banner      string        `json:"banner,omitempty"`
	Description string        `json:"description,omitempty"`
	Rules       []string      `json:"rules,omitempty"`
	Theme       string        `json:"theme,omitempty"`
}
