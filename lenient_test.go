package rdapkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorStringishAcceptsArrayOrScalar(t *testing.T) {
	var arr VectorStringish
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &arr))
	assert.Equal(t, []string{"a", "b"}, arr.Vec())
	assert.False(t, arr.IsString())

	var scalar VectorStringish
	require.NoError(t, json.Unmarshal([]byte(`"solo"`), &scalar))
	assert.Equal(t, []string{"solo"}, scalar.Vec())
	assert.True(t, scalar.IsString())

	out, err := json.Marshal(scalar)
	require.NoError(t, err)
	assert.JSONEq(t, `["solo"]`, string(out))
}

func TestBoolishStringTruthTable(t *testing.T) {
	cases := map[string]bool{
		`"true"`: true, `"True"`: true, `"T"`: true, `" yes "`: true, `"y"`: true,
		`"false"`: false, `"no"`: false, `"n"`: false, `"garbage"`: false,
	}
	for raw, want := range cases {
		var b Boolish
		require.NoError(t, json.Unmarshal([]byte(raw), &b))
		assert.Equal(t, want, b.Bool(), raw)
		assert.True(t, b.IsString())
	}

	var native Boolish
	require.NoError(t, json.Unmarshal([]byte(`true`), &native))
	assert.True(t, native.Bool())
	assert.False(t, native.IsString())
}

func TestNumberishAcceptsStringOrNumber(t *testing.T) {
	var fromNum Numberish[uint32]
	require.NoError(t, json.Unmarshal([]byte(`710`), &fromNum))
	v, ok := fromNum.Value()
	require.True(t, ok)
	assert.Equal(t, uint32(710), v)
	assert.False(t, fromNum.IsString())

	var fromStr Numberish[uint32]
	require.NoError(t, json.Unmarshal([]byte(`"710"`), &fromStr))
	v2, ok := fromStr.Value()
	require.True(t, ok)
	assert.Equal(t, uint32(710), v2)
	assert.True(t, fromStr.IsString())
}

func TestNumberishOutOfRangeYieldsNoValue(t *testing.T) {
	var n Numberish[uint8]
	require.NoError(t, json.Unmarshal([]byte(`99999`), &n))
	_, ok := n.Value()
	assert.False(t, ok)
}

func TestDomainRoundTripPreservesUnknownKeys(t *testing.T) {
	raw := []byte(`{
		"objectClassName":"domain",
		"ldhName":"example.com",
		"links":[{"rel":"self","href":"https://rdap.example/domain/example.com"}],
		"rdapConformance":["rdap_level_0"],
		"futureExtensionField":{"nested":true}
	}`)
	var d Domain
	require.NoError(t, json.Unmarshal(raw, &d))
	assert.Equal(t, "example.com", d.LDHName)
	require.Contains(t, d.Unknown, "futureExtensionField")

	out, err := json.Marshal(&d)
	require.NoError(t, err)

	var roundTripped Domain
	require.NoError(t, json.Unmarshal(out, &roundTripped))
	assert.Equal(t, d.LDHName, roundTripped.LDHName)
	assert.Contains(t, roundTripped.Unknown, "futureExtensionField")
}

func TestParseObjectUnknownClassNameIsError(t *testing.T) {
	_, err := ParseObject(map[string]any{"objectClassName": "spaceship"})
	require.Error(t, err)
	var unk ErrUnknownObjectClass
	require.ErrorAs(t, err, &unk)
}

func TestParseResponseDiscriminatesErrorResponse(t *testing.T) {
	resp, err := ParseResponse(map[string]any{"errorCode": float64(404), "title": "Not Found"})
	require.NoError(t, err)
	e, ok := resp.(*ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, 404, e.ErrorCode)
}

func TestParseResponseDiscriminatesSearchResults(t *testing.T) {
	resp, err := ParseResponse(map[string]any{
		"domainSearchResults": []any{
			map[string]any{"objectClassName": "domain", "ldhName": "example.com"},
		},
	})
	require.NoError(t, err)
	r, ok := resp.(*DomainSearchResults)
	require.True(t, ok)
	require.Len(t, r.DomainSearchResults, 1)
	assert.Equal(t, "example.com", r.DomainSearchResults[0].LDHName)
}
