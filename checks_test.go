package rdapkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksFlagsLenientBoolean(t *testing.T) {
	var b Boolish
	require.NoError(t, json.Unmarshal([]byte(`"yes"`), &b))
	assert.True(t, b.Bool())
	assert.True(t, b.IsString())

	d := Domain{
		Common:    Common{ObjectClassName: ClassDomain},
		LDHName:   "example.com",
		SecureDNS: &SecureDNS{ZoneSigned: b},
	}
	checks := RunChecks(CheckParams{Root: &d})
	assertHasCode(t, checks, SpecificationNote, "domain.secureDNS.zoneSigned.lenient")
}

func TestChecksFlagsMissingSelfLinkAndConformance(t *testing.T) {
	d := Domain{Common: Common{ObjectClassName: ClassDomain}, LDHName: "example.com"}
	checks := RunChecks(CheckParams{Root: &d})
	assertHasCode(t, checks, StdErrorWarning, "domain.links.self.missing")
	assertHasCode(t, checks, StdErrorWarning, "domain.rdapConformance.missing")
}

func TestChecksFlagsMissingConformanceLevel0(t *testing.T) {
	d := Domain{
		Common: Common{
			ObjectClassName: ClassDomain,
			Links:           []Link{{Rel: "self"}},
			RDAPConformance: []string{"icann_rdap_response_profile_0"},
		},
		LDHName: "example.com",
	}
	checks := RunChecks(CheckParams{Root: &d})
	assertHasCode(t, checks, StdErrorWarning, "domain.rdapConformance.level0.missing")
}

func TestChecksFlagsEmptyLDHName(t *testing.T) {
	d := Domain{Common: Common{ObjectClassName: ClassDomain}}
	checks := RunChecks(CheckParams{Root: &d})
	assertHasCode(t, checks, StdErrorViolation, "domain.ldhName.empty")
}

func TestChecksFlagsInvertedAutnumRange(t *testing.T) {
	a := Autnum{
		Common:      Common{ObjectClassName: ClassAutnum},
		StartAutnum: NewNumberish[uint32](800),
		EndAutnum:   NewNumberish[uint32](700),
	}
	checks := RunChecks(CheckParams{Root: &a})
	assertHasCode(t, checks, StdErrorViolation, "autnum.range.inverted")
}

func TestChecksFlagsInvertedNetworkRange(t *testing.T) {
	n := Network{
		Common:       Common{ObjectClassName: ClassNetwork},
		StartAddress: "10.1.0.1",
		EndAddress:   "10.0.0.1",
	}
	checks := RunChecks(CheckParams{Root: &n})
	assertHasCode(t, checks, StdErrorViolation, "network.range.inverted")
}

func TestChecksRecurseIntoEntitiesAndNameservers(t *testing.T) {
	d := Domain{
		Common: Common{
			ObjectClassName: ClassDomain,
			Links:           []Link{{Rel: "self"}},
			RDAPConformance: []string{"rdap_level_0"},
			Entities: []Entity{{
				Common: Common{ObjectClassName: ClassEntity},
			}},
		},
		LDHName: "example.com",
		Nameservers: []Nameserver{{
			Common: Common{ObjectClassName: ClassNameserver},
		}},
	}
	checks := RunChecks(CheckParams{Root: &d, DoSubchecks: true})
	assertHasCode(t, checks, StdErrorWarning, "nameserver.links.self.missing")
	assertHasCode(t, checks, StdErrorWarning, "entity.links.self.missing")
}

func TestChecksFlagsUnknownKeysInformational(t *testing.T) {
	raw := []byte(`{"objectClassName":"domain","ldhName":"example.com","links":[{"rel":"self"}],"rdapConformance":["rdap_level_0"],"madeUpKey":true}`)
	var d Domain
	require.NoError(t, json.Unmarshal(raw, &d))
	checks := RunChecks(CheckParams{Root: &d})
	assertHasCode(t, checks, Informational, "domain.unknown_keys")
}

func assertHasCode(t *testing.T, checks *Checks, class CheckClass, code string) {
	t.Helper()
	for _, item := range checks.Items {
		if item.Code == code && item.Class == class {
			return
		}
	}
	t.Fatalf("expected a %s/%s finding, got %+v", class, code, checks.Items)
}
