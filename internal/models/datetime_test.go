package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateTimeMarshal(t *testing.T) {
	dt := NewDateTime(time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC))

	data, err := json.Marshal(dt)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-09-01T10:30:00"`, string(data))

	// Zero value marshals as null
	data, err = json.Marshal(DateTime{})
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDateTimeUnmarshal(t *testing.T) {
	var dt DateTime

	assert.NoError(t, json.Unmarshal([]byte(`"2026-09-01T10:30:00"`), &dt))
	assert.Equal(t, time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC), dt.Time)

	// Fractional seconds are tolerated
	assert.NoError(t, json.Unmarshal([]byte(`"2026-09-01T10:30:00.123456"`), &dt))
	assert.Equal(t, 10, dt.Hour())

	// null resets to the zero value
	assert.NoError(t, json.Unmarshal([]byte(`null`), &dt))
	assert.True(t, dt.IsZero())

	// Anything else is an error
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &dt))
}

func TestValidState(t *testing.T) {
	for _, s := range []string{StateAll, StateWaiting, StateRejected, StatePast, StateCurrent, StateFuture} {
		assert.True(t, ValidState(s), s)
	}
	assert.False(t, ValidState("SOMETIME"))
	assert.False(t, ValidState(""))
	assert.False(t, ValidState("all"))
}
