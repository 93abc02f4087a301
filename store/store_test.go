package store

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datum-labs/rdapkit"
)

// Scenarios reproduced from spec section 8 ("Scenarios"), grounded on the
// worked GIVEN/WHEN/THEN cases in
// _examples/original_source/icann-rdap-srv/tests/integration/srv/bootstrap.rs.

func TestDomainBootstrapRedirect(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddDomainErr(DomainId{LDHName: "example"}, Redirect("https://example.net/"))
	tx.Commit()

	res := s.GetDomain("foo.example")
	require.Equal(t, ResultRedirect, res.Kind)
	assert.Equal(t, "https://example.net/", res.URL)
}

func TestDomainNoLessSpecificMatch(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddDomainErr(DomainId{LDHName: "no_example"}, Redirect("https://wrong.example/"))
	tx.Commit()

	res := s.GetDomain("foo.example")
	require.Equal(t, ResultNotFound, res.Kind)
	assert.Equal(t, 404, res.ErrorCode)
}

func TestNetworkMostSpecificCIDR(t *testing.T) {
	s := New()
	tx := s.NewTx()
	wide := netip.MustParsePrefix("10.0.0.0/8")
	narrow := netip.MustParsePrefix("10.1.0.0/16")
	require.NoError(t, tx.AddNetworkErr(NetworkId{Kind: NetworkIdCidr, Cidr: wide}, Redirect("https://a.net/")))
	require.NoError(t, tx.AddNetworkErr(NetworkId{Kind: NetworkIdCidr, Cidr: narrow}, Redirect("https://b.net/")))
	tx.Commit()

	res := s.GetNetwork(netip.MustParseAddr("10.1.2.3"))
	require.Equal(t, ResultRedirect, res.Kind)
	assert.Equal(t, "https://b.net/", res.URL)
}

func TestNetworkByCIDRPrefersNarrowerCoveringPrefix(t *testing.T) {
	s := New()
	tx := s.NewTx()
	require.NoError(t, tx.AddNetworkErr(NetworkId{Kind: NetworkIdCidr, Cidr: netip.MustParsePrefix("10.0.0.0/8")}, Redirect("https://a.net/")))
	require.NoError(t, tx.AddNetworkErr(NetworkId{Kind: NetworkIdCidr, Cidr: netip.MustParsePrefix("10.1.0.0/16")}, Redirect("https://b.net/")))
	tx.Commit()

	res := s.GetNetworkByCidr(netip.MustParsePrefix("10.1.2.0/24"))
	require.Equal(t, ResultRedirect, res.Kind)
	assert.Equal(t, "https://b.net/", res.URL)
}

func TestAutnumRangeAndMiss(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddAutnumErr(AutnumId{StartAutnum: 700, EndAutnum: 800}, Redirect("https://c.net/"))
	tx.Commit()

	found := s.GetAutnum(710)
	require.Equal(t, ResultRedirect, found.Kind)
	assert.Equal(t, "https://c.net/", found.URL)

	miss := s.GetAutnum(1000)
	require.Equal(t, ResultNotFound, miss.Kind)
	assert.Equal(t, 404, miss.ErrorCode)
}

func TestAutnumNarrowestRangeWins(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddAutnumErr(AutnumId{StartAutnum: 0, EndAutnum: 1000}, Redirect("https://wide.net/"))
	tx.AddAutnumErr(AutnumId{StartAutnum: 700, EndAutnum: 800}, Redirect("https://narrow.net/"))
	tx.Commit()

	res := s.GetAutnum(750)
	require.Equal(t, ResultRedirect, res.Kind)
	assert.Equal(t, "https://narrow.net/", res.URL)
}

func TestAutnumTieBreakPrefersMostRecentInsertion(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddAutnumErr(AutnumId{StartAutnum: 100, EndAutnum: 200}, Redirect("https://first.net/"))
	tx.AddAutnumErr(AutnumId{StartAutnum: 100, EndAutnum: 200}, Redirect("https://second.net/"))
	tx.Commit()

	res := s.GetAutnum(150)
	require.Equal(t, ResultRedirect, res.Kind)
	assert.Equal(t, "https://second.net/", res.URL)
}

func TestEntityTagCaseInsensitive(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddEntityErr(EntityId{Handle: "-ARIN"}, Redirect("https://d.net/"))
	tx.Commit()

	upper := s.GetEntity("foo-ARIN")
	require.Equal(t, ResultRedirect, upper.Kind)
	assert.Equal(t, "https://d.net/", upper.URL)

	lower := s.GetEntity("foo-arin")
	require.Equal(t, ResultRedirect, lower.Kind)
	assert.Equal(t, "https://d.net/", lower.URL)
}

func TestEntityExactHandleBeatsTag(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddEntityErr(EntityId{Handle: "-ARIN"}, Redirect("https://tag.net/"))
	tx.AddEntity(EntityId{Handle: "foo-ARIN"}, &rdapkit.Entity{Common: rdapkit.Common{Handle: "foo-ARIN"}})
	tx.Commit()

	res := s.GetEntity("foo-ARIN")
	require.Equal(t, ResultFound, res.Kind)
}

func TestEntityTaglessHandleFallsBackOnlyToExact(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddEntityErr(EntityId{Handle: "-ARIN"}, Redirect("https://tag.net/"))
	tx.Commit()

	res := s.GetEntity("noTagHandle")
	assert.Equal(t, ResultNotFound, res.Kind)
}

func TestTransactionIsolationUntilCommit(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddDomainErr(DomainId{LDHName: "example"}, Redirect("https://example.net/"))

	// A reader through the store (not the transaction) must not observe the
	// uncommitted write.
	miss := s.GetDomain("example")
	assert.Equal(t, ResultNotFound, miss.Kind)

	tx.Commit()
	hit := s.GetDomain("example")
	assert.Equal(t, ResultRedirect, hit.Kind)
}

func TestRollbackDiscardsOverlay(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddDomainErr(DomainId{LDHName: "example"}, Redirect("https://example.net/"))
	tx.Rollback()

	res := s.GetDomain("example")
	assert.Equal(t, ResultNotFound, res.Kind)
}

func TestNameserverSuffixLookup(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddNameserverErr(NameserverId{LDHName: "example"}, Redirect("https://ns.example.net/"))
	tx.Commit()

	res := s.GetNameserver("ns1.example")
	require.Equal(t, ResultRedirect, res.Kind)
	assert.Equal(t, "https://ns.example.net/", res.URL)
}

func TestDomainFoundRecordBeatsLessSpecificError(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddDomainErr(DomainId{LDHName: "example"}, Redirect("https://registry.example/"))
	tx.AddDomain(DomainId{LDHName: "foo.example"}, &rdapkit.Domain{LDHName: "foo.example"})
	tx.Commit()

	res := s.GetDomain("foo.example")
	require.Equal(t, ResultFound, res.Kind)
	d, ok := res.Object.(*rdapkit.Domain)
	require.True(t, ok)
	assert.Equal(t, "foo.example", d.LDHName)
}

func TestRemoveDomainDeletesRecord(t *testing.T) {
	s := New()
	tx := s.NewTx()
	tx.AddDomainErr(DomainId{LDHName: "example"}, Redirect("https://example.net/"))
	tx.Commit()

	tx2 := s.NewTx()
	tx2.RemoveDomain(DomainId{LDHName: "example"})
	tx2.Commit()

	res := s.GetDomain("foo.example")
	assert.Equal(t, ResultNotFound, res.Kind)
}
