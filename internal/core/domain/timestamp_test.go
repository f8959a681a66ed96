package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_MarshalJSON_Milliseconds(t *testing.T) {
	ts := Timestamp{Time: time.Date(2017, 8, 1, 12, 0, 0, 0, time.UTC)}

	data, err := json.Marshal(ts)

	require.NoError(t, err)
	assert.Equal(t, `"2017-08-01T12:00:00.000Z"`, string(data))
}

func TestTimestamp_MarshalJSON_ConvertsToUTCAndTruncates(t *testing.T) {
	zone := time.FixedZone("CEST", 2*60*60)
	ts := Timestamp{Time: time.Date(2017, 8, 1, 14, 0, 0, 123456789, zone)}

	data, err := json.Marshal(ts)

	require.NoError(t, err)
	assert.Equal(t, `"2017-08-01T12:00:00.123Z"`, string(data))
}

func TestTimestamp_RoundTrip(t *testing.T) {
	created := time.Date(2020, 1, 2, 3, 4, 5, 6000000, time.UTC)
	bot := Bot{Name: "PressoBot", CreatedDate: TimestampOf(&created)}

	data, err := json.Marshal(bot)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"createdDate":"2020-01-02T03:04:05.006Z"`)

	var decoded Bot
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.CreatedDate)
	assert.True(t, created.Equal(decoded.CreatedDate.Time))
}

func TestTimestampOf_Nil(t *testing.T) {
	assert.Nil(t, TimestampOf(nil))
}

func TestTimestamp_UnmarshalJSON_Invalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`42`), &ts))
}
