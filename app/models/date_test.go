package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalBareDay(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-06-01"`), &d))
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 1, d.Day())
}

func TestDateUnmarshalRFC3339(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-06-01T10:30:00Z"`), &d))
	assert.Equal(t, 10, d.Hour())
	assert.Equal(t, 30, d.Minute())
}

func TestDateUnmarshalNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"01-06-2023"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
}

func TestDateMarshalRoundTrip(t *testing.T) {
	d := NewDate(time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-06-01T00:00:00Z"`, string(out))

	var back Date
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateScan(t *testing.T) {
	now := time.Now()

	var d Date
	require.NoError(t, d.Scan(now))
	assert.True(t, d.Equal(now))

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan("2023-06-01"))
}
