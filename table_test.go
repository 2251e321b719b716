package huffman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadFrequencyTable(t *testing.T) {
	raw := make([]byte, DefaultAlphabetSize)
	raw['A'], raw['B'] = 5, 2

	table, err := ReadFrequencyTable(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, table, DefaultAlphabetSize)
	require.Equal(t, 2, table.NumSymbols())

	_, err = ReadFrequencyTable(bytes.NewReader(make([]byte, MaxAlphabetSize+1)))
	require.ErrorIs(t, err, ErrQueueOverflow)
}

func TestFrequencyTable_Dump(t *testing.T) {
	table := makeTable(map[byte]uint8{'A': 5, 'B': 2, '\n': 7})

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tFreq(10) = 7\n",
		"\tFreq('A') = 5\n",
		"\tFreq('B') = 2\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestFrequencyTable_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(FrequencyTable{0, 5, 255})
	require.NoError(t, err)
	require.Equal(t, "[0,5,255]", string(raw))
}

func TestFrequencyTable_UnmarshalJSON(t *testing.T) {
	var table FrequencyTable
	require.NoError(t, json.Unmarshal([]byte("[0,5,255]"), &table))
	require.Equal(t, FrequencyTable{0, 5, 255}, table)

	require.Error(t, json.Unmarshal([]byte("[256]"), &table))
	require.Error(t, json.Unmarshal([]byte("[-1]"), &table))
	require.Error(t, json.Unmarshal([]byte(`"AAAA"`), &table))
}
