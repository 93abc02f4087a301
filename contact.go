package rdapkit

import (
	"strconv"
	"strings"
)

// Contact represents contact information found in an Entity, bridged from
// (and to) vCard/jCard. It more closely resembles an EPP contact than a raw
// vCard, with some fields borrowed from JSContact.
type Contact struct {
	Langs             []Lang
	Kind              string
	FullName          string
	NameParts         *NameParts
	NickNames         []string
	Titles            []string
	Roles             []string
	OrganizationNames []string
	PostalAddresses   []PostalAddress
	Emails            []Email
	Phones            []Phone
	ContactURIs       []string
	URLs              []string
}

// IsNonEmpty reports whether the Contact carries any data.
func (c Contact) IsNonEmpty() bool {
	return len(c.Langs) != 0 || c.Kind != "" || c.FullName != "" || c.NameParts != nil ||
		len(c.NickNames) != 0 || len(c.Titles) != 0 || len(c.Roles) != 0 ||
		len(c.OrganizationNames) != 0 || len(c.PostalAddresses) != 0 ||
		len(c.Emails) != 0 || len(c.Phones) != 0 || len(c.ContactURIs) != 0 || len(c.URLs) != 0
}

// WithKind sets the contact kind (individual, company, etc).
func (c Contact) WithKind(kind string) Contact { c.Kind = kind; return c }

// WithFullName sets the full display name.
func (c Contact) WithFullName(name string) Contact { c.FullName = name; return c }

// WithNameParts sets the structured name parts.
func (c Contact) WithNameParts(np NameParts) Contact { c.NameParts = &np; return c }

// SetEmails replaces the set of emails with plain addresses (no preference/contexts).
func (c Contact) SetEmails(addrs ...string) Contact {
	emails := make([]Email, 0, len(addrs))
	for _, a := range addrs {
		emails = append(emails, Email{Email: a})
	}
	c.Emails = emails
	return c
}

// AddVoicePhones prepends voice-context phones to the phone set.
func (c Contact) AddVoicePhones(nums ...string) Contact {
	added := make([]Phone, 0, len(nums))
	for _, n := range nums {
		added = append(added, Phone{Contexts: []string{"voice"}, Phone: n})
	}
	c.Phones = append(added, c.Phones...)
	return c
}

// AddFaxPhones prepends fax-context phones to the phone set.
func (c Contact) AddFaxPhones(nums ...string) Contact {
	added := make([]Phone, 0, len(nums))
	for _, n := range nums {
		added = append(added, Phone{Contexts: []string{"fax"}, Phone: n})
	}
	c.Phones = append(added, c.Phones...)
	return c
}

// SetPostalAddress replaces the postal address set with a single address.
func (c Contact) SetPostalAddress(addr PostalAddress) Contact {
	c.PostalAddresses = []PostalAddress{addr}
	return c
}

// Lang is a preferred language of the contact.
type Lang struct {
	Preference *uint64
	Tag        string // RFC 5646 language tag
}

func (l Lang) String() string {
	if l.Preference != nil {
		return l.Tag + " (pref: " + strconv.FormatUint(*l.Preference, 10) + ")"
	}
	return l.Tag
}

// NameParts are the structured components of a personal name.
type NameParts struct {
	Prefixes    []string
	Surnames    []string
	MiddleNames []string
	GivenNames  []string
	Suffixes    []string
}

// PostalAddress is a structured or unstructured postal address.
type PostalAddress struct {
	Preference  *uint64
	Contexts    []string
	FullAddress string
	StreetParts []string
	Locality    string
	RegionName  string
	RegionCode  string
	CountryName string
	CountryCode string
	PostalCode  string
}

// Email is a single email address with optional preference/contexts.
type Email struct {
	Preference *uint64
	Contexts   []string
	Email      string
}

func (e Email) String() string {
	var qualifiers []string
	if e.Preference != nil {
		qualifiers = append(qualifiers, "(pref: "+strconv.FormatUint(*e.Preference, 10)+")")
	}
	if len(e.Contexts) > 0 {
		qualifiers = append(qualifiers, "("+strings.Join(e.Contexts, ",")+")")
	}
	if len(qualifiers) == 0 {
		return e.Email
	}
	return e.Email + " " + strings.Join(qualifiers, " ")
}

// Phone is a single phone number with optional preference/contexts/features.
type Phone struct {
	Preference *uint64
	Contexts   []string
	Phone      string
	Features   []string
}

func (p Phone) String() string {
	var qualifiers []string
	if p.Preference != nil {
		qualifiers = append(qualifiers, "(pref: "+strconv.FormatUint(*p.Preference, 10)+")")
	}
	if len(p.Contexts) > 0 {
		qualifiers = append(qualifiers, "("+strings.Join(p.Contexts, ",")+")")
	}
	if len(p.Features) > 0 {
		qualifiers = append(qualifiers, "("+strings.Join(p.Features, ",")+")")
	}
	if len(qualifiers) == 0 {
		return p.Phone
	}
	return p.Phone + " " + strings.Join(qualifiers, " ")
}
