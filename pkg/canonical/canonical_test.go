package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_SortsKeysAtEveryDepth(t *testing.T) {
	input := map[string]interface{}{
		"zebra": 1,
		"alpha": map[string]interface{}{
			"nested_z": "z",
			"nested_a": "a",
		},
		"mid": []interface{}{
			map[string]interface{}{"b": 2, "a": 1},
		},
	}

	out, err := Marshal(input)
	require.NoError(t, err)
	assert.Equal(t,
		`{"alpha":{"nested_a":"a","nested_z":"z"},"mid":[{"a":1,"b":2}],"zebra":1}`,
		string(out))
}

func TestMarshal_NoInsignificantWhitespace(t *testing.T) {
	out, err := Marshal(map[string]interface{}{"a": []interface{}{1, 2}, "b": "x"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2],"b":"x"}`, string(out))
}

func TestMarshal_IntegersVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"small int", map[string]interface{}{"n": 42}, `{"n":42}`},
		{"large int64 survives without float coercion", map[string]interface{}{"n": int64(9007199254740993)}, `{"n":9007199254740993}`},
		{"negative", map[string]interface{}{"n": -7}, `{"n":-7}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Marshal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestMarshal_FloatsRoundedToFixedPrecision(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"short float unchanged", 1.5, `{"f":1.5}`},
		{"rounded to 10 places", 0.12345678901234, `{"f":0.123456789}`},
		{"trailing zeros trimmed", 2.5000000000, `{"f":2.5}`},
		{"platform drift collapses", 0.1 + 0.2, `{"f":0.3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Marshal(map[string]interface{}{"f": tt.input})
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestMarshal_ByteIdenticalForSemanticallyIdenticalInput(t *testing.T) {
	a := map[string]interface{}{"x": 1.0000000000004, "y": []interface{}{"t", "u"}}
	b := map[string]interface{}{"y": []interface{}{"t", "u"}, "x": 1.0000000000004}

	outA, err := Marshal(a)
	require.NoError(t, err)
	outB, err := Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, outA, outB)
}

func TestMarshal_StructsUseJSONTags(t *testing.T) {
	type snapshot struct {
		Lens  string `json:"lens"`
		Count int    `json:"count"`
	}
	out, err := Marshal(snapshot{Lens: "rel", Count: 3})
	require.NoError(t, err)
	assert.Equal(t, `{"count":3,"lens":"rel"}`, string(out))
}

func TestHash_StableAndHexEncoded(t *testing.T) {
	h1, err := Hash(map[string]interface{}{"id": "n1", "title": "T"})
	require.NoError(t, err)
	h2, err := Hash(map[string]interface{}{"title": "T", "id": "n1"})
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}

func TestHashBytes_EmptyContent(t *testing.T) {
	// SHA-256 of the empty string — used for deleted EMO history rows.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashBytes(nil))
}
