package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyEncode(t *testing.T) {
	assert.Equal(t, "PRODUCT#p1", ProductKey("p1").Encode())
	assert.Equal(t, "CART#c1", CartKey("c1").Encode())
	assert.Equal(t, "ORDER#o1", OrderKey("o1").Encode())
	assert.Equal(t, "USER#u1", UserKey("u1").Encode())
	assert.Equal(t, "BLOG#rakhi-ideas", BlogKey("rakhi-ideas").Encode())
}

func TestParseKeyRoundTrip(t *testing.T) {
	for _, k := range []Key{
		ProductKey("abc-123"),
		CartKey("c1"),
		OrderKey("o1"),
		UserKey("user|sub"),
	} {
		parsed, err := ParseKey(k.Encode())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}

func TestParseKeyPreservesDelimiterInID(t *testing.T) {
	// Only the first delimiter separates kind from id.
	parsed, err := ParseKey("USER#tenant#42")
	require.NoError(t, err)
	assert.Equal(t, Key{Kind: KindUser, ID: "tenant#42"}, parsed)
}

func TestParseKeyRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "PRODUCT", "PRODUCT#", "#id", "WIDGET#id"} {
		_, err := ParseKey(s)
		assert.Error(t, err, "input %q", s)
	}
}
