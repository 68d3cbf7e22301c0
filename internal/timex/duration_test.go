package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"15s"`), &d))
	require.Equal(t, 15*time.Second, d.Duration)

	require.NoError(t, json.Unmarshal([]byte(`"2m30s"`), &d))
	require.Equal(t, 2*time.Minute+30*time.Second, d.Duration)
}

func TestDuration_UnmarshalNanoseconds(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1500000000`), &d))
	require.Equal(t, 1500*time.Millisecond, d.Duration)
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"not a duration"`), &d))
	require.Error(t, json.Unmarshal([]byte(`true`), &d))
	require.Error(t, json.Unmarshal([]byte(`{"x":1}`), &d))
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	in := Duration{Duration: 90 * time.Second}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, `"1m30s"`, string(data))

	var out Duration
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in.Duration, out.Duration)
}
