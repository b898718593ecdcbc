package models

// PrizeTier represents the cosmetic ranking of a prize.
type PrizeTier string

const (
	PrizeTierS PrizeTier = "S"
	PrizeTierA PrizeTier = "A"
	PrizeTierB PrizeTier = "B"
	PrizeTierC PrizeTier = "C"
)

// Prize represents one prize line in the active pool.
type Prize struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Count int       `json:"count"`
	Image string    `json:"image,omitempty"`
	Tier  PrizeTier `json:"tier,omitempty"`
}

// Participant represents one entry in the roster. Phone is the canonical
// digits-only string and the de-duplication key for the already-won check.
type Participant struct {
	ID      string   `json:"id"`
	Name    string   `json:"name,omitempty"`
	Phone   string   `json:"phone"`
	Count   int      `json:"count"`
	Luckies []string `json:"luckies,omitempty"`
}

// Winner is an immutable award record. Prize fields are snapshotted at win
// time so later prize removal does not rewrite history.
type Winner struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone"`
	PrizeID    string `json:"prize_id"`
	PrizeLabel string `json:"prize_label"`
	Time       string `json:"time"`
	Image      string `json:"image,omitempty"`
}

// CageState is the manual cage-draw display: the currently revealed number
// and a bounded most-recent-first history.
type CageState struct {
	Display string   `json:"display"`
	History []string `json:"history"`
}

// Snapshot is a full copy of one replica's draw state.
type Snapshot struct {
	ProgramID    string        `json:"program_id"`
	Prizes       []Prize       `json:"prizes"`
	Participants []Participant `json:"participants"`
	Winners      []Winner      `json:"winners"`
	Running      bool          `json:"running"`
	Cage         CageState     `json:"cage"`
}
