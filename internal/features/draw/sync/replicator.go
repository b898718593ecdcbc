package sync

import (
	"context"
	"encoding/json"
	stdsync "sync"

	"github.com/google/uuid"

	"luckydraw-backend/internal/common/logger"
	"luckydraw-backend/internal/features/draw/models"
	"luckydraw-backend/internal/features/draw/store"
)

// Role decides whether a replica publishes its local mutations.
type Role string

const (
	RoleControl  Role = "control"
	RoleAudience Role = "audience"
)

// Tap observes every message the replicator publishes or applies. Used by
// the audience websocket hub to mirror replication traffic to displays.
type Tap func(Message)

// Replicator binds one store to the broadcast transport. A control replica
// publishes the entire new value of each changed slice; every replica
// applies foreign messages wholesale to its local store. Applied updates do
// not re-publish, so replication cannot loop.
type Replicator struct {
	st        *store.Store
	transport Transport
	role      Role
	origin    string
	ctx       context.Context

	mu   stdsync.RWMutex
	taps []Tap
}

func NewReplicator(st *store.Store, transport Transport, role Role) *Replicator {
	return &Replicator{
		st:        st,
		transport: transport,
		role:      role,
		origin:    uuid.NewString(),
		ctx:       context.Background(),
	}
}

// Origin returns this replica's id, carried on every published message.
func (r *Replicator) Origin() string { return r.origin }

// Tap registers a message observer.
func (r *Replicator) Tap(t Tap) {
	r.mu.Lock()
	r.taps = append(r.taps, t)
	r.mu.Unlock()
}

func (r *Replicator) emit(msg Message) {
	r.mu.RLock()
	ts := make([]Tap, len(r.taps))
	copy(ts, r.taps)
	r.mu.RUnlock()
	for _, t := range ts {
		t(msg)
	}
}

// Start subscribes to the transport and to local store changes. Delivery
// stops when ctx is cancelled.
func (r *Replicator) Start(ctx context.Context) error {
	r.ctx = ctx
	if err := r.transport.Subscribe(ctx, r.onMessage); err != nil {
		return err
	}
	r.st.Subscribe(r.onLocalChange)
	logger.Info().
		Str("role", string(r.role)).
		Str("origin", r.origin).
		Msg("replicator started")
	return nil
}

// onLocalChange broadcasts the full new value of each changed slice.
// Audience replicas never publish; their stores are read-only by convention.
func (r *Replicator) onLocalChange(changed ...store.Slice) {
	if r.role != RoleControl {
		return
	}
	for _, sl := range changed {
		msg, err := r.sliceMessage(sl)
		if err != nil {
			logger.Error().Err(err).Str("slice", string(sl)).Msg("encode sync message")
			continue
		}
		if err := r.transport.Publish(r.ctx, msg); err != nil {
			// Loss is silent at the protocol level; the next mutation
			// re-broadcasts the slice.
			logger.Warn().Err(err).Str("slice", string(sl)).Msg("publish sync message")
			continue
		}
		r.emit(msg)
	}
}

// onMessage applies a received slice wholesale, discarding our own echo.
func (r *Replicator) onMessage(msg Message) {
	if msg.Origin == r.origin {
		return
	}
	switch msg.Type {
	case MessageWinners:
		var winners []models.Winner
		if err := json.Unmarshal(msg.Payload, &winners); err != nil {
			logger.Warn().Err(err).Msg("dropping winners update")
			return
		}
		r.st.ApplyWinners(winners)
	case MessagePrizes:
		var prizes []models.Prize
		if err := json.Unmarshal(msg.Payload, &prizes); err != nil {
			logger.Warn().Err(err).Msg("dropping prizes update")
			return
		}
		r.st.ApplyPrizes(prizes)
	case MessageParticipants:
		var participants []models.Participant
		if err := json.Unmarshal(msg.Payload, &participants); err != nil {
			logger.Warn().Err(err).Msg("dropping participants update")
			return
		}
		r.st.ApplyParticipants(participants)
	case MessageCage:
		var cage CagePayload
		if err := json.Unmarshal(msg.Payload, &cage); err != nil {
			logger.Warn().Err(err).Msg("dropping cage update")
			return
		}
		r.st.ApplyCage(models.CageState{Display: cage.Display, History: cage.History})
	default:
		logger.Warn().Str("type", string(msg.Type)).Msg("unknown sync message type")
		return
	}
	r.emit(msg)
}

// sliceMessage snapshots one slice into its wire message.
func (r *Replicator) sliceMessage(sl store.Slice) (Message, error) {
	var (
		payload interface{}
		mt      MessageType
	)
	switch sl {
	case store.SliceWinners:
		mt, payload = MessageWinners, r.st.Winners()
	case store.SlicePrizes:
		mt, payload = MessagePrizes, r.st.Prizes()
	case store.SliceParticipants:
		mt, payload = MessageParticipants, r.st.Participants()
	case store.SliceCage:
		cage := r.st.Cage()
		mt, payload = MessageCage, CagePayload{Display: cage.Display, History: cage.History}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: mt, Origin: r.origin, Payload: raw}, nil
}

// SnapshotMessages renders the current store state as one message per slice,
// in a stable order. The websocket hub sends these to a display that
// connects after earlier broadcasts have already fired.
func (r *Replicator) SnapshotMessages() ([]Message, error) {
	slices := []store.Slice{
		store.SlicePrizes,
		store.SliceParticipants,
		store.SliceWinners,
		store.SliceCage,
	}
	msgs := make([]Message, 0, len(slices))
	for _, sl := range slices {
		msg, err := r.sliceMessage(sl)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
