// Package store holds the canonical in-memory draw state for one program run
// and the mutation operations that drive both draw modalities. One replica
// owns one Store; cross-replica consistency is replication, never locking.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"luckydraw-backend/internal/common/logger"
	"luckydraw-backend/internal/features/draw/models"
	"luckydraw-backend/internal/utils/numbers"
	"luckydraw-backend/internal/utils/random"
)

// Slice names one independently replicated portion of the state.
type Slice string

const (
	SliceWinners      Slice = "winners"
	SlicePrizes       Slice = "prizes"
	SliceParticipants Slice = "participants"
	SliceCage         Slice = "cage"
)

// CageHistoryCap bounds the cage reveal history; oldest entries drop off.
const CageHistoryCap = 10

// Listener is notified after a local mutation with the slices it changed.
// Replica-applied updates (ApplySlice) do not notify.
type Listener func(changed ...Slice)

// Store is the draw state container. All operations are synchronous and
// race-free; draw failures are reported as a nil winner plus a sentinel
// error, never a panic.
type Store struct {
	mu sync.RWMutex

	programID    string
	prizes       []models.Prize
	participants []models.Participant
	winners      []models.Winner
	running      bool
	cage         models.CageState

	rng       random.Source
	now       func() time.Time
	listeners []Listener
}

// Option configures a Store.
type Option func(*Store)

// WithSource injects the randomness source used for participant selection.
func WithSource(src random.Source) Option {
	return func(s *Store) { s.rng = src }
}

// WithClock injects the timestamp source for winner records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty store for the given program.
func New(programID string, opts ...Option) *Store {
	s := &Store{
		programID: programID,
		rng:       random.NewCryptoSource(),
		now:       time.Now,
		cage:      models.CageState{History: []string{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers a change listener. Listeners run synchronously inside
// the mutating call, after the lock is released.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

func (s *Store) notify(changed ...Slice) {
	s.mu.RLock()
	ls := make([]Listener, len(s.listeners))
	copy(ls, s.listeners)
	s.mu.RUnlock()
	for _, l := range ls {
		l(changed...)
	}
}

// SetProgramID switches the active program. Prizes, participants and winners
// are intentionally left untouched; operators reset explicitly.
func (s *Store) SetProgramID(id string) {
	s.mu.Lock()
	s.programID = id
	s.mu.Unlock()
}

// ProgramID returns the active program id.
func (s *Store) ProgramID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.programID
}

// SetRunning toggles the in-flight draw guard. The control surface sets it
// around its animation window so re-entrant draw requests no-op.
func (s *Store) SetRunning(running bool) {
	s.mu.Lock()
	s.running = running
	s.mu.Unlock()
}

// Running reports the draw guard.
func (s *Store) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// AddPrize appends a new prize with a fresh id. Empty labels and
// non-positive counts are rejected as a silent no-op.
func (s *Store) AddPrize(p models.Prize) *models.Prize {
	if p.Label == "" || p.Count <= 0 {
		return nil
	}
	p.ID = uuid.NewString()
	s.mu.Lock()
	s.prizes = append(s.prizes, p)
	s.mu.Unlock()
	s.notify(SlicePrizes)
	return &p
}

// RemovePrize deletes the prize with the given id; unknown ids no-op.
func (s *Store) RemovePrize(id string) bool {
	s.mu.Lock()
	removed := false
	for i, p := range s.prizes {
		if p.ID == id {
			s.prizes = append(s.prizes[:i], s.prizes[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.notify(SlicePrizes)
	}
	return removed
}

// AddParticipant appends a roster entry. The phone is normalized to digits
// only; an empty result rejects the entry as a silent no-op.
func (s *Store) AddParticipant(p models.Participant) *models.Participant {
	p.Phone = numbers.NormalizeDigits(p.Phone)
	if p.Phone == "" {
		return nil
	}
	if p.Count <= 0 {
		p.Count = 1
	}
	p.ID = uuid.NewString()
	s.mu.Lock()
	s.participants = append(s.participants, p)
	s.mu.Unlock()
	s.notify(SliceParticipants)
	return &p
}

// DrawByRandom picks a uniformly random eligible participant and awards the
// prize at the head of the list. Eligible means the phone has not already
// won. Returns the created winner, or nil with a sentinel error and no state
// change.
func (s *Store) DrawByRandom() (*models.Winner, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, ErrDrawRunning
	}
	if len(s.prizes) == 0 {
		s.mu.Unlock()
		return nil, ErrNoPrizes
	}
	pool := s.eligibleLocked()
	if len(pool) == 0 {
		s.mu.Unlock()
		return nil, ErrNoEligible
	}
	pick := pool[s.rng.Intn(len(pool))]
	w := s.commitLocked(pick, 0)
	s.mu.Unlock()

	s.notify(SliceWinners, SlicePrizes)
	logger.Info().
		Str("phone", w.Phone).
		Str("prize", w.PrizeLabel).
		Msg("random draw committed")
	return w, nil
}

// WheelStopAt awards the prize at the wheel's landing index to a random
// eligible participant. An out-of-range index or empty pool is a no-op.
func (s *Store) WheelStopAt(index int) (*models.Winner, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.prizes) {
		s.mu.Unlock()
		return nil, ErrPrizeIndex
	}
	pool := s.eligibleLocked()
	if len(pool) == 0 {
		s.mu.Unlock()
		return nil, ErrNoEligible
	}
	pick := pool[s.rng.Intn(len(pool))]
	w := s.commitLocked(pick, index)
	s.mu.Unlock()

	s.notify(SliceWinners, SlicePrizes)
	logger.Info().
		Str("phone", w.Phone).
		Str("prize", w.PrizeLabel).
		Int("segment", index).
		Msg("wheel draw committed")
	return w, nil
}

// eligibleLocked returns participants whose phone has not already won.
func (s *Store) eligibleLocked() []models.Participant {
	won := make(map[string]struct{}, len(s.winners))
	for _, w := range s.winners {
		won[w.Phone] = struct{}{}
	}
	var pool []models.Participant
	for _, p := range s.participants {
		if _, ok := won[p.Phone]; !ok {
			pool = append(pool, p)
		}
	}
	return pool
}

// commitLocked builds the winner record, prepends it, and consumes one unit
// of the prize at index. A prize reaching count zero leaves the pool.
func (s *Store) commitLocked(pick models.Participant, index int) *models.Winner {
	prize := s.prizes[index]
	w := models.Winner{
		ID:         uuid.NewString(),
		Name:       pick.Name,
		Phone:      pick.Phone,
		PrizeID:    prize.ID,
		PrizeLabel: prize.Label,
		Time:       s.now().Format(time.RFC3339),
		Image:      prize.Image,
	}
	s.winners = append([]models.Winner{w}, s.winners...)
	if prize.Count > 1 {
		s.prizes[index].Count--
	} else {
		s.prizes = append(s.prizes[:index], s.prizes[index+1:]...)
	}
	return &w
}

// ResetWinners clears the winner ledger, re-opening every phone for draws.
func (s *Store) ResetWinners() {
	s.mu.Lock()
	s.winners = nil
	s.mu.Unlock()
	s.notify(SliceWinners)
}

// ShowCage reveals a number on the cage display and records it in history,
// truncated to the cap.
func (s *Store) ShowCage(n string) {
	s.mu.Lock()
	s.cage.Display = n
	s.cage.History = append([]string{n}, s.cage.History...)
	if len(s.cage.History) > CageHistoryCap {
		s.cage.History = s.cage.History[:CageHistoryCap]
	}
	s.mu.Unlock()
	s.notify(SliceCage)
}

// ResetCage clears the cage display and history.
func (s *Store) ResetCage() {
	s.mu.Lock()
	s.cage = models.CageState{History: []string{}}
	s.mu.Unlock()
	s.notify(SliceCage)
}

// Prizes returns a copy of the prize pool.
func (s *Store) Prizes() []models.Prize {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Prize, len(s.prizes))
	copy(out, s.prizes)
	return out
}

// Participants returns a copy of the roster.
func (s *Store) Participants() []models.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Participant, len(s.participants))
	copy(out, s.participants)
	return out
}

// Winners returns a copy of the winner ledger, most recent first.
func (s *Store) Winners() []models.Winner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Winner, len(s.winners))
	copy(out, s.winners)
	return out
}

// Cage returns a copy of the cage display state.
func (s *Store) Cage() models.CageState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CageState{
		Display: s.cage.Display,
		History: append([]string{}, s.cage.History...),
	}
}

// Snapshot copies the full replica state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Snapshot{
		ProgramID:    s.programID,
		Prizes:       append([]models.Prize{}, s.prizes...),
		Participants: append([]models.Participant{}, s.participants...),
		Winners:      append([]models.Winner{}, s.winners...),
		Running:      s.running,
		Cage: models.CageState{
			Display: s.cage.Display,
			History: append([]string{}, s.cage.History...),
		},
	}
}

// Seed loads initial prize and participant data, replacing whatever is
// present. Used for the demo catalog; winners and cage state are untouched.
func (s *Store) Seed(prizes []models.Prize, participants []models.Participant) {
	s.mu.Lock()
	s.prizes = append([]models.Prize{}, prizes...)
	s.participants = append([]models.Participant{}, participants...)
	s.mu.Unlock()
	s.notify(SlicePrizes, SliceParticipants)
}

// ApplyPrizes replaces the prize slice wholesale with a replicated value.
func (s *Store) ApplyPrizes(prizes []models.Prize) {
	s.mu.Lock()
	s.prizes = prizes
	s.mu.Unlock()
}

// ApplyParticipants replaces the roster wholesale with a replicated value.
func (s *Store) ApplyParticipants(participants []models.Participant) {
	s.mu.Lock()
	s.participants = participants
	s.mu.Unlock()
}

// ApplyWinners replaces the winner ledger wholesale with a replicated value.
func (s *Store) ApplyWinners(winners []models.Winner) {
	s.mu.Lock()
	s.winners = winners
	s.mu.Unlock()
}

// ApplyCage replaces the cage state wholesale with a replicated value.
func (s *Store) ApplyCage(cage models.CageState) {
	s.mu.Lock()
	s.cage = cage
	s.mu.Unlock()
}
