package rdapkit

import "strconv"

// FromVCard parses a jCard array (["vcard", [property, ...]]) into a
// Contact. It is total over well-formed vCard arrays and silently ignores
// properties it does not recognize, per spec section 4.B.
func FromVCard(arr []any) Contact {
	var c Contact
	if len(arr) != 2 {
		return c
	}
	props, ok := arr[1].([]any)
	if !ok {
		return c
	}
	for _, raw := range props {
		p, ok := raw.([]any)
		if !ok || len(p) != 4 {
			continue
		}
		name, _ := p[0].(string)
		params, _ := p[1].(map[string]any)
		value := p[3]
		switch name {
		case "fn":
			if s, ok := value.(string); ok {
				c.FullName = s
			}
		case "n":
			if parts, ok := value.([]any); ok && len(parts) >= 5 {
				np := NameParts{
					Surnames:    splitWords(parts[0]),
					GivenNames:  splitWords(parts[1]),
					MiddleNames: splitWords(parts[2]),
					Prefixes:    splitWords(parts[3]),
					Suffixes:    splitWords(parts[4]),
				}
				c.NameParts = &np
			}
		case "kind":
			if s, ok := value.(string); ok {
				c.Kind = s
			}
		case "nickname":
			if s, ok := value.(string); ok {
				c.NickNames = append(c.NickNames, s)
			}
		case "title":
			if s, ok := value.(string); ok {
				c.Titles = append(c.Titles, s)
			}
		case "role":
			if s, ok := value.(string); ok {
				c.Roles = append(c.Roles, s)
			}
		case "org":
			if s, ok := value.(string); ok {
				c.OrganizationNames = append(c.OrganizationNames, s)
			}
		case "adr":
			c.PostalAddresses = append(c.PostalAddresses, adrFromVCard(params, value))
		case "tel":
			c.Phones = append(c.Phones, phoneFromVCard(params, value))
		case "email":
			if s, ok := value.(string); ok {
				c.Emails = append(c.Emails, Email{
					Email:      s,
					Contexts:   typeParamToContexts(params),
					Preference: prefParam(params),
				})
			}
		case "url":
			if s, ok := value.(string); ok {
				c.URLs = append(c.URLs, s)
			}
		case "contact-uri":
			if s, ok := value.(string); ok {
				c.ContactURIs = append(c.ContactURIs, s)
			}
		case "lang":
			if s, ok := value.(string); ok {
				c.Langs = append(c.Langs, Lang{Tag: s, Preference: prefParam(params)})
			}
		}
	}
	return c
}

func splitWords(v any) []string {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func adrFromVCard(params map[string]any, value any) PostalAddress {
	a := PostalAddress{
		Contexts:   typeParamToContexts(params),
		Preference: prefParam(params),
	}
	if s, ok := value.(string); ok {
		a.FullAddress = s
		return a
	}
	parts, ok := value.([]any)
	if !ok {
		return a
	}
	get := func(i int) string {
		if i >= len(parts) {
			return ""
		}
		s, _ := parts[i].(string)
		return s
	}
	if street := get(2); street != "" {
		a.StreetParts = []string{street}
	}
	a.Locality = get(3)
	a.RegionName = get(4)
	a.PostalCode = get(5)
	a.CountryName = get(6)
	return a
}

func phoneFromVCard(params map[string]any, value any) Phone {
	phone := Phone{}
	if s, ok := value.(string); ok {
		phone.Phone = s
	}
	phone.Preference = prefParam(params)
	labels := typeParamToContexts(params)
	phoneFeatures := map[string]bool{
		"voice": true, "fax": true, "text": true, "video": true,
		"cell": true, "textphone": true, "pager": true,
	}
	for _, l := range labels {
		if phoneFeatures[l] {
			phone.Features = append(phone.Features, l)
		} else {
			phone.Contexts = append(phone.Contexts, l)
		}
	}
	return phone
}

func typeParamToContexts(params map[string]any) []string {
	if params == nil {
		return nil
	}
	v, ok := params["type"]
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		return []string{t}
	case []string:
		return append([]string(nil), t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, x := range t {
			if s, ok := x.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func prefParam(params map[string]any) *uint64 {
	if params == nil {
		return nil
	}
	v, ok := params["pref"]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
