package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrizeCreateRequest_Validate(t *testing.T) {
	valid := PrizeCreateRequest{Label: "AirPods 4", Count: 5, Tier: "B"}
	assert.NoError(t, valid.Validate())

	noTier := PrizeCreateRequest{Label: "Voucher", Count: 1}
	assert.NoError(t, noTier.Validate(), "tier is optional")

	assert.Error(t, (&PrizeCreateRequest{Label: "", Count: 1}).Validate())
	assert.Error(t, (&PrizeCreateRequest{Label: "X", Count: 0}).Validate())
	assert.Error(t, (&PrizeCreateRequest{Label: "X", Count: 1, Tier: "D"}).Validate())
}

func TestParticipantCreateRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ParticipantCreateRequest{Phone: "0900000001"}).Validate())
	assert.NoError(t, (&ParticipantCreateRequest{Name: "An", Phone: "09-00", Count: 2}).Validate())
	assert.Error(t, (&ParticipantCreateRequest{Phone: ""}).Validate())
}

func TestWheelStopRequest_Validate(t *testing.T) {
	zero := 0
	three := 3
	neg := -1

	assert.NoError(t, (&WheelStopRequest{Index: &zero}).Validate(), "index 0 is the head prize")
	assert.NoError(t, (&WheelStopRequest{Index: &three}).Validate())
	assert.Error(t, (&WheelStopRequest{Index: nil}).Validate())
	assert.Error(t, (&WheelStopRequest{Index: &neg}).Validate())
}

func TestRunningRequest_Validate(t *testing.T) {
	off := false
	assert.NoError(t, (&RunningRequest{Running: &off}).Validate(), "explicit false is valid")
	assert.Error(t, (&RunningRequest{Running: nil}).Validate())
}

func TestCageShowRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CageShowRequest{Number: "12345"}).Validate())
	assert.Error(t, (&CageShowRequest{Number: ""}).Validate())
}
