package sync

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luckydraw-backend/internal/features/draw/models"
	"luckydraw-backend/internal/features/draw/store"
	"luckydraw-backend/internal/utils/random"
)

func newPair(t *testing.T) (*store.Store, *store.Store, *Replicator, *Replicator) {
	t.Helper()
	bus := NewMemoryBus()
	control := store.New("p1", store.WithSource(random.NewSequenceSource(0)))
	audience := store.New("p1", store.WithSource(random.NewSequenceSource(0)))

	rc := NewReplicator(control, bus, RoleControl)
	ra := NewReplicator(audience, bus, RoleAudience)
	require.NoError(t, rc.Start(context.Background()))
	require.NoError(t, ra.Start(context.Background()))
	return control, audience, rc, ra
}

func TestReplication_PrizeMutationReachesAudience(t *testing.T) {
	control, audience, _, _ := newPair(t)

	p := control.AddPrize(models.Prize{Label: "iPhone 16 Pro Max", Count: 2})
	require.NotNil(t, p)

	require.Len(t, audience.Prizes(), 1)
	assert.Equal(t, *p, audience.Prizes()[0])
}

func TestReplication_DrawUpdatesWinnersAndPrizes(t *testing.T) {
	control, audience, _, _ := newPair(t)

	control.AddPrize(models.Prize{Label: "X", Count: 1})
	control.AddParticipant(models.Participant{Phone: "0900000001"})

	winner, err := control.DrawByRandom()
	require.NoError(t, err)

	require.Len(t, audience.Winners(), 1)
	assert.Equal(t, winner.ID, audience.Winners()[0].ID)
	assert.Empty(t, audience.Prizes())
	assert.Equal(t, control.Winners(), audience.Winners())
}

func TestReplication_CageWholeValue(t *testing.T) {
	control, audience, _, _ := newPair(t)

	for _, n := range []string{"11111", "22222", "33333"} {
		control.ShowCage(n)
	}

	cage := audience.Cage()
	assert.Equal(t, "33333", cage.Display)
	assert.Equal(t, []string{"33333", "22222", "11111"}, cage.History)

	control.ResetCage()
	cage = audience.Cage()
	assert.Empty(t, cage.Display)
	assert.Empty(t, cage.History)
}

func TestReplication_AudienceDoesNotPublish(t *testing.T) {
	control, audience, _, _ := newPair(t)

	// Discipline says audience stores are read-only, but a local mutation on
	// one must never leak to the control replica.
	audience.AddPrize(models.Prize{Label: "leak", Count: 1})

	assert.Empty(t, control.Prizes())
	assert.Len(t, audience.Prizes(), 1)
}

func TestReplication_OwnOriginDiscarded(t *testing.T) {
	control, _, rc, _ := newPair(t)

	var tapped []Message
	rc.Tap(func(m Message) { tapped = append(tapped, m) })

	control.AddPrize(models.Prize{Label: "X", Count: 3})

	// One publish, no re-apply echo: the tap sees the outgoing message once.
	require.Len(t, tapped, 1)
	assert.Equal(t, MessagePrizes, tapped[0].Type)
	assert.Equal(t, rc.Origin(), tapped[0].Origin)
	assert.Len(t, control.Prizes(), 1)
}

func TestReplication_ReceivedSliceReplacesWholesale(t *testing.T) {
	bus := NewMemoryBus()
	fresh := store.New("p1")
	ra := NewReplicator(fresh, bus, RoleAudience)
	require.NoError(t, ra.Start(context.Background()))

	prizes := []models.Prize{
		{ID: "a", Label: "TV Samsung 65\"", Count: 2, Tier: models.PrizeTierA},
		{ID: "b", Label: "AirPods 4", Count: 5, Tier: models.PrizeTierB},
	}
	payload, err := json.Marshal(prizes)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), Message{
		Type:    MessagePrizes,
		Origin:  "remote-control",
		Payload: payload,
	}))

	assert.Equal(t, prizes, fresh.Prizes())
}

func TestReplication_MalformedPayloadDropped(t *testing.T) {
	bus := NewMemoryBus()
	st := store.New("p1")
	st.ApplyPrizes([]models.Prize{{ID: "keep", Label: "X", Count: 1}})
	ra := NewReplicator(st, bus, RoleAudience)
	require.NoError(t, ra.Start(context.Background()))

	require.NoError(t, bus.Publish(context.Background(), Message{
		Type:    MessagePrizes,
		Origin:  "remote-control",
		Payload: json.RawMessage(`{"not":"an array"}`),
	}))

	assert.Equal(t, "keep", st.Prizes()[0].ID, "bad update leaves state intact")
}

func TestReplication_SnapshotMessages(t *testing.T) {
	control, _, rc, _ := newPair(t)
	control.AddPrize(models.Prize{Label: "X", Count: 1})
	control.ShowCage("7777")

	msgs, err := rc.SnapshotMessages()
	require.NoError(t, err)
	require.Len(t, msgs, 4)

	types := []MessageType{MessagePrizes, MessageParticipants, MessageWinners, MessageCage}
	for i, mt := range types {
		assert.Equal(t, mt, msgs[i].Type)
		assert.Equal(t, rc.Origin(), msgs[i].Origin)
	}

	var cage CagePayload
	require.NoError(t, json.Unmarshal(msgs[3].Payload, &cage))
	assert.Equal(t, "7777", cage.Display)
	assert.Equal(t, []string{"7777"}, cage.History)
}
