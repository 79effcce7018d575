package availability

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEncode_ZeroBasedMonths(t *testing.T) {
	ix := mustBook(t, New(), Date(2024, time.June, 10), Date(2024, time.June, 10))

	s, err := Encode(ix)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2024":{"5":{"10":true}}}`, s)

	empty, err := Encode(New())
	require.NoError(t, err)
	assert.Equal(t, "{}", empty)
}

func TestDecode_ClientBlob(t *testing.T) {
	ix, err := Decode(`{"2019":{"11":{"31":true}},"2020":{"0":{"1":true,"2":false}}}`)
	require.NoError(t, err)

	assert.True(t, ix.IsBooked(Date(2019, time.December, 31)))
	assert.True(t, ix.IsBooked(Date(2020, time.January, 1)))
	assert.False(t, ix.IsBooked(Date(2020, time.January, 2)))
	assert.Equal(t, 2, ix.Len())
}

func TestDecode_BlankInput(t *testing.T) {
	for _, in := range []string{"", "  ", "null", "{}"} {
		ix, err := Decode(in)
		require.NoError(t, err, in)
		assert.Equal(t, 0, ix.Len(), in)
	}
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"2024":`,
		"year not number": `{"abc":{"0":{"1":true}}}`,
		"month too large": `{"2024":{"12":{"1":true}}}`,
		"negative month":  `{"2024":{"-1":{"1":true}}}`,
		"day zero":        `{"2024":{"0":{"0":true}}}`,
		"feb 30":          `{"2024":{"1":{"30":true}}}`,
		"feb 29 non leap": `{"2023":{"1":{"29":true}}}`,
		"padded month":    `{"2024":{"05":{"10":true}}}`,
		"signed day":      `{"2024":{"5":{"+5":true}}}`,
		"padded day":      `{"2024":{"5":{"010":true}}}`,
		"padded year":     `{"02024":{"5":{"10":true}}}`,
		"spaced month":    `{"2024":{" 5":{"10":true}}}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(in)
			assert.ErrorIs(t, err, ErrMalformedIndex)
		})
	}
}

func TestIndex_JSONField(t *testing.T) {
	type doc struct {
		Index *Index `json:"bookingsIndex"`
	}
	in := doc{Index: mustBook(t, New(), Date(2024, time.July, 1), Date(2024, time.July, 2))}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bookingsIndex":{"2024":{"6":{"1":true,"2":true}}}}`, string(b))

	var out doc
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in.Index.Days(), out.Index.Days())
}

func TestIndex_BSONSubdocument(t *testing.T) {
	type doc struct {
		Index *Index `bson:"bookingsIndex"`
	}
	in := doc{Index: mustBook(t, New(), Date(2024, time.February, 28), Date(2024, time.March, 1))}

	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	months, err := bson.Raw(raw).LookupErr("bookingsIndex", "2024")
	require.NoError(t, err)
	_, err = months.Document().LookupErr("1", "29")
	assert.NoError(t, err, "february is stored under month key 1")

	var out doc
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, in.Index.Days(), out.Index.Days())
}

func TestDecode_EncodeRoundTripIsStable(t *testing.T) {
	in := `{"2019":{"11":{"31":true}},"2020":{"0":{"1":true,"15":true}}}`
	ix, err := Decode(in)
	require.NoError(t, err)

	out, err := Encode(ix)
	require.NoError(t, err)
	assert.JSONEq(t, in, out)
}
