package rdapkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryDetectsIPAndCIDR(t *testing.T) {
	q, err := ParseQuery("10.1.2.3")
	require.NoError(t, err)
	assert.Equal(t, QueryIPv4Addr, q.Kind)

	q, err = ParseQuery("10.0.0.0/8")
	require.NoError(t, err)
	assert.Equal(t, QueryIPv4Cidr, q.Kind)

	q, err = ParseQuery("2001:db8::1")
	require.NoError(t, err)
	assert.Equal(t, QueryIPv6Addr, q.Kind)
}

func TestParseQueryDetectsASN(t *testing.T) {
	q, err := ParseQuery("AS710")
	require.NoError(t, err)
	assert.Equal(t, QueryAutNum, q.Kind)
	assert.Equal(t, uint32(710), q.Autnum)

	q, err = ParseQuery("as710")
	require.NoError(t, err)
	assert.Equal(t, uint32(710), q.Autnum)

	_, err = ParseQuery("AS99999999999999999999")
	require.Error(t, err)
}

func TestParseQueryDetectsDomain(t *testing.T) {
	q, err := ParseQuery("Example.COM")
	require.NoError(t, err)
	assert.Equal(t, QueryDomain, q.Kind)
	assert.Equal(t, "example.com", q.LDH)
}

func TestParseQueryRejectsEmpty(t *testing.T) {
	_, err := ParseQuery("   ")
	require.Error(t, err)
}

func TestQueryTypeURLPathMatchesGrammar(t *testing.T) {
	cases := []struct {
		q    QueryType
		want string
	}{
		{QueryType{Kind: QueryDomain, LDH: "example.com"}, "domain/example.com"},
		{QueryType{Kind: QueryNameserver, LDH: "ns1.example.com"}, "nameserver/ns1.example.com"},
		{QueryType{Kind: QueryEntity, Handle: "ORG-EX1"}, "entity/ORG-EX1"},
		{QueryType{Kind: QueryAutNum, Autnum: 710}, "autnum/710"},
		{QueryType{Kind: QueryHelp}, "help"},
		{QueryType{Kind: QueryDomainNameSearch, SearchTerm: "ex ample"}, "domains?name=ex+ample"},
		{QueryType{Kind: QueryEntityHandleSearch, SearchTerm: "ORG-EX1"}, "entities?handle=ORG-EX1"},
	}
	for _, c := range cases {
		got, err := c.q.URLPath()
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestNormalizeDomainNameRejectsOverlongLabel(t *testing.T) {
	label := ""
	for i := 0; i < 64; i++ {
		label += "a"
	}
	_, _, err := NormalizeDomainName(label + ".example.com")
	require.Error(t, err)
}

func TestNormalizeDomainNameLowercases(t *testing.T) {
	ldh, _, err := NormalizeDomainName("EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, "example.com", ldh)
}
