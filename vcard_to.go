package rdapkit

import "strconv"

// ToVCard renders a Contact as a jCard array: ["vcard", [ property, ... ]]
// ready for encoding/json marshaling, per spec section 4.B.
func ToVCard(c Contact) []any {
	props := []any{vcardProp("version", nil, "text", "4.0")}

	if c.FullName != "" {
		props = append(props, vcardProp("fn", nil, "text", c.FullName))
	}
	if c.NameParts != nil {
		props = append(props, vcardProp("n", nil, "text", nameToVCard(*c.NameParts)))
	}
	if c.Kind != "" {
		props = append(props, vcardProp("kind", nil, "text", c.Kind))
	}
	for _, n := range c.NickNames {
		props = append(props, vcardProp("nickname", nil, "text", n))
	}
	for _, t := range c.Titles {
		props = append(props, vcardProp("title", nil, "text", t))
	}
	for _, r := range c.Roles {
		props = append(props, vcardProp("role", nil, "text", r))
	}
	for _, o := range c.OrganizationNames {
		props = append(props, vcardProp("org", nil, "text", o))
	}
	for _, a := range c.PostalAddresses {
		props = append(props, adrToVCard(a))
	}
	for _, p := range c.Phones {
		props = append(props, phoneToVCard(p))
	}
	for _, e := range c.Emails {
		props = append(props, emailToVCard(e))
	}
	for _, u := range c.URLs {
		props = append(props, vcardProp("url", nil, "text", u))
	}
	for _, u := range c.ContactURIs {
		props = append(props, vcardProp("contact-uri", nil, "uri", u))
	}
	for _, l := range c.Langs {
		params := map[string]any{}
		if l.Preference != nil {
			params["pref"] = formatPreference(*l.Preference)
		}
		props = append(props, vcardProp("lang", params, "language-tag", l.Tag))
	}

	return []any{"vcard", props}
}

func vcardProp(name string, params map[string]any, valueType string, value any) []any {
	if params == nil {
		params = map[string]any{}
	}
	return []any{name, params, valueType, value}
}

func nameToVCard(n NameParts) []any {
	return []any{
		joinOrEmpty(n.Surnames),
		joinOrEmpty(n.GivenNames),
		joinOrEmpty(n.MiddleNames),
		joinOrEmpty(n.Prefixes),
		joinOrEmpty(n.Suffixes),
	}
}

func joinOrEmpty(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}

func adrToVCard(a PostalAddress) []any {
	params := map[string]any{}
	if len(a.Contexts) > 0 {
		params["type"] = contextsToVCardType(a.Contexts)
	}
	if a.Preference != nil {
		params["pref"] = formatPreference(*a.Preference)
	}
	if a.FullAddress != "" && len(a.StreetParts) == 0 {
		return vcardProp("adr", params, "text", a.FullAddress)
	}
	street := joinOrEmpty(a.StreetParts)
	region := a.RegionName
	if region == "" {
		region = a.RegionCode
	}
	country := a.CountryName
	if country == "" {
		country = a.CountryCode
	}
	value := []any{"", "", street, a.Locality, region, a.PostalCode, country}
	return vcardProp("adr", params, "text", value)
}

func phoneToVCard(p Phone) []any {
	params := map[string]any{}
	labels := append(append([]string{}, p.Contexts...), p.Features...)
	if len(labels) == 1 {
		params["type"] = labels[0]
	} else if len(labels) > 1 {
		params["type"] = labels
	}
	if p.Preference != nil {
		params["pref"] = formatPreference(*p.Preference)
	}
	return vcardProp("tel", params, "uri", p.Phone)
}

func emailToVCard(e Email) []any {
	params := map[string]any{}
	if len(e.Contexts) > 0 {
		params["type"] = contextsToVCardType(e.Contexts)
	}
	if e.Preference != nil {
		params["pref"] = formatPreference(*e.Preference)
	}
	return vcardProp("email", params, "text", e.Email)
}

func contextsToVCardType(contexts []string) any {
	if len(contexts) == 1 {
		return contexts[0]
	}
	return contexts
}

func formatPreference(v uint64) string {
	return strconv.FormatUint(v, 10)
}
