package table

import (
	"encoding/json"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
)

func TestDumpRoundTrip(t *testing.T) {
	tab, err := New([]float64{0, 0.5, 1.5, 4}, []float64{1, -2, 0.25, 8})
	require.NoError(t, err)

	restored, err := FromDump(tab.Dump())
	require.NoError(t, err)

	if diff := pretty.Compare(restored.Dump(), tab.Dump()); diff != "" {
		t.Fatalf("dump round trip mismatch (-got +want):\n%s", diff)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tab, err := New([]float64{-1, 0, 2}, []float64{3, 1, -0.5})
	require.NoError(t, err)

	data, err := json.Marshal(tab)
	require.NoError(t, err)

	var restored Table
	require.NoError(t, json.Unmarshal(data, &restored))

	if diff := pretty.Compare(restored.Dump(), tab.Dump()); diff != "" {
		t.Fatalf("JSON round trip mismatch (-got +want):\n%s", diff)
	}
}

func TestUnmarshalRejectsUnsorted(t *testing.T) {
	var tab Table
	err := json.Unmarshal([]byte(`{"t":[2,1],"x":[0,0]}`), &tab)
	require.ErrorIs(t, err, ErrUnsorted)
}

func TestUnmarshalRejectsMismatch(t *testing.T) {
	var tab Table
	err := json.Unmarshal([]byte(`{"t":[1,2],"x":[0]}`), &tab)
	require.ErrorIs(t, err, ErrLengthMismatch)
}
