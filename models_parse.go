package rdapkit

import (
	"encoding/json"
	"errors"
)

// Object is satisfied by every concrete RDAP response object class.
type Object interface {
	GetObjectClassName() string
}

var knownKeysCommon = []string{
	"objectClassName", "handle", "status", "entities", "links", "remarks",
	"events", "port43", "lang", "rdapConformance", "notices",
}

func keySet(sets ...[]string) map[string]bool {
	m := make(map[string]bool)
	for _, s := range sets {
		for _, k := range s {
			m[k] = true
		}
	}
	return m
}

// extractUnknown decodes raw into a generic map and returns whichever keys
// are not in known, or nil if there are none. Used to populate the Unknown
// overflow field on every Common-embedding type so a decode/encode round
// trip never silently drops server-supplied data.
func extractUnknown(raw []byte, known map[string]bool) (map[string]any, error) {
	var all map[string]any
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}
	var unknown map[string]any
	for k, v := range all {
		if known[k] {
			continue
		}
		if unknown == nil {
			unknown = make(map[string]any)
		}
		unknown[k] = v
	}
	return unknown, nil
}

// mergeUnknown re-inserts previously extracted unknown keys into an
// already-marshaled object so MarshalJSON round-trips them back out.
func mergeUnknown(raw []byte, unknown map[string]any) ([]byte, error) {
	if len(unknown) == 0 {
		return raw, nil
	}
	var base map[string]any
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, err
	}
	for k, v := range unknown {
		base[k] = v
	}
	return json.Marshal(base)
}

var knownKeysEntity = append(append([]string{}, knownKeysCommon...),
	"vcardArray", "roles", "publicIds", "asEventActor", "networks", "autnums")

type entityAlias Entity

// UnmarshalJSON decodes an entity and captures unrecognized members in Unknown.
func (e *Entity) UnmarshalJSON(raw []byte) error {
	var a entityAlias
	if err := json.Unmarshal(raw, &a); err != nil {
		return err
	}
	*e = Entity(a)
	unknown, err := extractUnknown(raw, keySet(knownKeysEntity))
	if err != nil {
		return err
	}
	e.Unknown = unknown
	return nil
}

// MarshalJSON encodes the entity and re-merges any captured unknown members.
func (e Entity) MarshalJSON() ([]byte, error) {
	a := entityAlias(e)
	a.Unknown = nil
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return mergeUnknown(raw, e.Unknown)
}

var knownKeysNameserver = append(append([]string{}, knownKeysCommon...),
	"ldhName", "unicodeName", "ipAddresses")

type nameserverAlias Nameserver

func (n *Nameserver) UnmarshalJSON(raw []byte) error {
	var a nameserverAlias
	if err := json.Unmarshal(raw, &a); err != nil {
		return err
	}
	*n = Nameserver(a)
	unknown, err := extractUnknown(raw, keySet(knownKeysNameserver))
	if err != nil {
		return err
	}
	n.Unknown = unknown
	return nil
}

func (n Nameserver) MarshalJSON() ([]byte, error) {
	a := nameserverAlias(n)
	a.Unknown = nil
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return mergeUnknown(raw, n.Unknown)
}

var knownKeysDomain = append(append([]string{}, knownKeysCommon...),
	"ldhName", "unicodeName", "variants", "nameservers", "secureDNS", "publicIds", "network")

type domainAlias Domain

func (d *Domain) UnmarshalJSON(raw []byte) error {
	var a domainAlias
	if err := json.Unmarshal(raw, &a); err != nil {
		return err
	}
	*d = Domain(a)
	unknown, err := extractUnknown(raw, keySet(knownKeysDomain))
	if err != nil {
		return err
	}
	d.Unknown = unknown
	return nil
}

func (d Domain) MarshalJSON() ([]byte, error) {
	a := domainAlias(d)
	a.Unknown = nil
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return mergeUnknown(raw, d.Unknown)
}

var knownKeysNetwork = append(append([]string{}, knownKeysCommon...),
	"startAddress", "endAddress", "ipVersion", "name", "type", "country",
	"parentHandle", "cidr0_cidrs")

type networkAlias Network

func (i *Network) UnmarshalJSON(raw []byte) error {
	var a networkAlias
	if err := json.Unmarshal(raw, &a); err != nil {
		return err
	}
	*i = Network(a)
	unknown, err := extractUnknown(raw, keySet(knownKeysNetwork))
	if err != nil {
		return err
	}
	i.Unknown = unknown
	return nil
}

func (i Network) MarshalJSON() ([]byte, error) {
	a := networkAlias(i)
	a.Unknown = nil
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return mergeUnknown(raw, i.Unknown)
}

var knownKeysAutnum = append(append([]string{}, knownKeysCommon...),
	"startAutnum", "endAutnum", "name", "type", "country")

type autnumAlias Autnum

func (a *Autnum) UnmarshalJSON(raw []byte) error {
	var al autnumAlias
	if err := json.Unmarshal(raw, &al); err != nil {
		return err
	}
	*a = Autnum(al)
	unknown, err := extractUnknown(raw, keySet(knownKeysAutnum))
	if err != nil {
		return err
	}
	a.Unknown = unknown
	return nil
}

func (a Autnum) MarshalJSON() ([]byte, error) {
	al := autnumAlias(a)
	al.Unknown = nil
	raw, err := json.Marshal(al)
	if err != nil {
		return nil, err
	}
	return mergeUnknown(raw, a.Unknown)
}

var knownKeysErrorResponse = []string{
	"errorCode", "title", "description", "rdapConformance", "notices", "lang",
}

type errorResponseAlias ErrorResponse

func (e *ErrorResponse) UnmarshalJSON(raw []byte) error {
	var a errorResponseAlias
	if err := json.Unmarshal(raw, &a); err != nil {
		return err
	}
	*e = ErrorResponse(a)
	unknown, err := extractUnknown(raw, keySet(knownKeysErrorResponse))
	if err != nil {
		return err
	}
	e.Unknown = unknown
	return nil
}

func (e ErrorResponse) MarshalJSON() ([]byte, error) {
	a := errorResponseAlias(e)
	a.Unknown = nil
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return mergeUnknown(raw, e.Unknown)
}

var knownKeysHelp = []string{"rdapConformance", "notices", "lang"}

type helpAlias Help

func (h *Help) UnmarshalJSON(raw []byte) error {
	var a helpAlias
	if err := json.Unmarshal(raw, &a); err != nil {
		return err
	}
	*h = Help(a)
	unknown, err := extractUnknown(raw, keySet(knownKeysHelp))
	if err != nil {
		return err
	}
	h.Unknown = unknown
	return nil
}

func (h Help) MarshalJSON() ([]byte, error) {
	a := helpAlias(h)
	a.Unknown = nil
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return mergeUnknown(raw, h.Unknown)
}

var knownKeysDomainSearch = []string{"rdapConformance", "notices", "domainSearchResults"}

type domainSearchAlias DomainSearchResults

func (r *DomainSearchResults) UnmarshalJSON(raw []byte) error {
	var a domainSearchAlias
	if err := json.Unmarshal(raw, &a); err != nil {
		return err
	}
	*r = DomainSearchResults(a)
	unknown, err := extractUnknown(raw, keySet(knownKeysDomainSearch))
	if err != nil {
		return err
	}
	r.Unknown = unknown
	return nil
}

func (r DomainSearchResults) MarshalJSON() ([]byte, error) {
	a := domainSearchAlias(r)
	a.Unknown = nil
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return mergeUnknown(raw, r.Unknown)
}

var knownKeysEntitySearch = []string{"rdapConformance", "notices", "entitySearchResults"}

type entitySearchAlias EntitySearchResults

func (r *EntitySearchResults) UnmarshalJSON(raw []byte) error {
	var a entitySearchAlias
	if err := json.Unmarshal(raw, &a); err != nil {
		return err
	}
	*r = EntitySearchResults(a)
	unknown, err := extractUnknown(raw, keySet(knownKeysEntitySearch))
	if err != nil {
		return err
	}
	r.Unknown = unknown
	return nil
}

func (r EntitySearchResults) MarshalJSON() ([]byte, error) {
	a := entitySearchAlias(r)
	a.Unknown = nil
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return mergeUnknown(raw, r.Unknown)
}

var knownKeysNameserverSearch = []string{"rdapConformance", "notices", "nameserverSearchResults"}

type nameserverSearchAlias NameserverSearchResults

func (r *NameserverSearchResults) UnmarshalJSON(raw []byte) error {
	var a nameserverSearchAlias
	if err := json.Unmarshal(raw, &a); err != nil {
		return err
	}
	*r = NameserverSearchResults(a)
	unknown, err := extractUnknown(raw, keySet(knownKeysNameserverSearch))
	if err != nil {
		return err
	}
	r.Unknown = unknown
	return nil
}

func (r NameserverSearchResults) MarshalJSON() ([]byte, error) {
	a := nameserverSearchAlias(r)
	a.Unknown = nil
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return mergeUnknown(raw, r.Unknown)
}

func decodeInto(m map[string]any, out any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// ParseObject discriminates a decoded RDAP object body into its concrete Go
// type using objectClassName, per spec section 4.A.
func ParseObject(m map[string]any) (Object, error) {
	if m == nil {
		return nil, errors.New("nil RDAP object")
	}
	ocnRaw, _ := m["objectClassName"].(string)
	switch lower(ocnRaw) {
	case ClassEntity:
		var e Entity
		if err := decodeInto(m, &e); err != nil {
			return nil, err
		}
		return &e, nil
	case ClassDomain:
		var d Domain
		if err := decodeInto(m, &d); err != nil {
			return nil, err
		}
		return &d, nil
	case ClassNameserver:
		var n Nameserver
		if err := decodeInto(m, &n); err != nil {
			return nil, err
		}
		return &n, nil
	case ClassNetwork:
		var i Network
		if err := decodeInto(m, &i); err != nil {
			return nil, err
		}
		return &i, nil
	case ClassAutnum:
		var a Autnum
		if err := decodeInto(m, &a); err != nil {
			return nil, err
		}
		return &a, nil
	}
	return nil, ErrUnknownObjectClass(ocnRaw)
}

// ParseResponse discriminates a full top-level RDAP response body. When
// objectClassName is present, it defers to ParseObject. When it is absent,
// it falls back to a structural signature: errorCode present means an
// error response; one of the three *SearchResults arrays present means a
// search response; otherwise a help response.
func ParseResponse(m map[string]any) (any, error) {
	if ocn, ok := m["objectClassName"]; ok {
		if s, ok := ocn.(string); ok && s != "" {
			return ParseObject(m)
		}
	}
	if _, ok := m["errorCode"]; ok {
		var e ErrorResponse
		if err := decodeInto(m, &e); err != nil {
			return nil, err
		}
		return &e, nil
	}
	if _, ok := m["domainSearchResults"]; ok {
		var r DomainSearchResults
		if err := decodeInto(m, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	if _, ok := m["entitySearchResults"]; ok {
		var r EntitySearchResults
		if err := decodeInto(m, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	if _, ok := m["nameserverSearchResults"]; ok {
		var r NameserverSearchResults
		if err := decodeInto(m, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	var h Help
	if err := decodeInto(m, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
