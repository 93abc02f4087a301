package rdapkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVCardRoundTripFullContact(t *testing.T) {
	pref := uint64(1)
	c := Contact{
		FullName: "Jane Doe",
		Kind:     "individual",
		NameParts: &NameParts{
			Surnames:   []string{"Doe"},
			GivenNames: []string{"Jane"},
		},
		NickNames: []string{"JD"},
		Titles:    []string{"Registrant"},
		Roles:     []string{"registrant"},
		OrganizationNames: []string{
			"Example Org",
		},
		PostalAddresses: []PostalAddress{{
			Preference:  &pref,
			Contexts:    []string{"work"},
			StreetParts: []string{"123 Main St"},
			Locality:    "Springfield",
			RegionName:  "IL",
			PostalCode:  "62701",
			CountryName: "US",
		}},
		Emails: []Email{{Email: "jane@example.com", Contexts: []string{"work"}}},
		Phones: []Phone{{Phone: "tel:+1-555-555-0100", Contexts: []string{"work"}, Features: []string{"voice"}}},
		URLs:   []string{"https://example.com/jane"},
	}

	arr := ToVCard(c)
	got := FromVCard(arr)

	assert.Equal(t, c.FullName, got.FullName)
	assert.Equal(t, c.Kind, got.Kind)
	assert.Equal(t, c.NameParts.Surnames, got.NameParts.Surnames)
	assert.Equal(t, c.NameParts.GivenNames, got.NameParts.GivenNames)
	assert.Equal(t, c.NickNames, got.NickNames)
	assert.Equal(t, c.Titles, got.Titles)
	assert.Equal(t, c.Roles, got.Roles)
	assert.Equal(t, c.OrganizationNames, got.OrganizationNames)
	assert.Equal(t, c.Emails, got.Emails)
	assert.Equal(t, c.URLs, got.URLs)
	assert.Len(t, got.Phones, 1)
	assert.Equal(t, []string{"voice"}, got.Phones[0].Features)
	assert.Equal(t, []string{"work"}, got.Phones[0].Contexts)

	assert.Len(t, got.PostalAddresses, 1)
	assert.Equal(t, c.PostalAddresses[0].Locality, got.PostalAddresses[0].Locality)
	assert.Equal(t, c.PostalAddresses[0].StreetParts, got.PostalAddresses[0].StreetParts)
}

func TestVCardOmitsEmptyOptionalFields(t *testing.T) {
	c := Contact{FullName: "Only Name"}
	arr := ToVCard(c)
	props, ok := arr[1].([]any)
	assert.True(t, ok)
	for _, raw := range props {
		p := raw.([]any)
		name := p[0].(string)
		assert.NotEqual(t, "adr", name)
		assert.NotEqual(t, "tel", name)
		assert.NotEqual(t, "email", name)
		assert.NotEqual(t, "org", name)
	}
}

func TestVCardFullAddressVariant(t *testing.T) {
	c := Contact{
		PostalAddresses: []PostalAddress{{FullAddress: "123 Main St, Springfield, IL"}},
	}
	arr := ToVCard(c)
	got := FromVCard(arr)
	assert.Len(t, got.PostalAddresses, 1)
	assert.Equal(t, "123 Main St, Springfield, IL", got.PostalAddresses[0].FullAddress)
}

func TestVCardPhoneTypeArraySplitsContextsAndFeatures(t *testing.T) {
	jcard := []any{"vcard", []any{
		[]any{"tel", map[string]any{"type": []any{"work", "voice", "fax"}}, "uri", "tel:+1-555-0100"},
	}}
	c := FromVCard(jcard)
	assert.Len(t, c.Phones, 1)
	assert.ElementsMatch(t, []string{"work"}, c.Phones[0].Contexts)
	assert.ElementsMatch(t, []string{"voice", "fax"}, c.Phones[0].Features)
}

func TestVCardIgnoresUnknownProperties(t *testing.T) {
	jcard := []any{"vcard", []any{
		[]any{"x-unknown-prop", map[string]any{}, "text", "whatever"},
		[]any{"fn", map[string]any{}, "text", "Known Name"},
	}}
	c := FromVCard(jcard)
	assert.Equal(t, "Known Name", c.FullName)
}
