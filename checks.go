package rdapkit

import (
	"net/netip"
	"strings"
)

// CheckClass classifies a single conformance finding.
type CheckClass int

const (
	Informational CheckClass = iota
	SpecificationNote
	StdErrorWarning
	StdErrorViolation
	Cidr0Error
	IcannError
)

func (c CheckClass) String() string {
	switch c {
	case Informational:
		return "informational"
	case SpecificationNote:
		return "specification_note"
	case StdErrorWarning:
		return "std_error_warning"
	case StdErrorViolation:
		return "std_error_violation"
	case Cidr0Error:
		return "cidr0_error"
	case IcannError:
		return "icann_error"
	default:
		return "unknown"
	}
}

// CheckItem is a single conformance finding.
type CheckItem struct {
	Class   CheckClass
	Code    string
	Message string
}

// Checks is an ordered list of findings produced by walking a response.
type Checks struct {
	Items []CheckItem
}

func (c *Checks) add(class CheckClass, code, msg string) {
	c.Items = append(c.Items, CheckItem{Class: class, Code: code, Message: msg})
}

// CheckParams controls recursion and extension tolerance during a check pass.
type CheckParams struct {
	Root                       any
	ParentType                 string
	DoSubchecks                bool
	AllowUnregisteredExtensions bool
}

// RunChecks walks an RDAP response and returns an ordered Checks record. It
// allocates no I/O and never mutates the input.
func RunChecks(p CheckParams) *Checks {
	c := &Checks{}
	checkAny(c, p.Root, p)
	return c
}

func checkAny(c *Checks, v any, p CheckParams) {
	switch obj := v.(type) {
	case *Entity:
		checkCommon(c, "entity", obj.Common)
		for _, e := range obj.Entities {
			checkAny(c, &e, p)
		}
		if p.DoSubchecks {
			for _, n := range obj.Networks {
				checkAny(c, &n, p)
			}
			for _, a := range obj.Autnums {
				checkAny(c, &a, p)
			}
		}
	case *Domain:
		checkCommon(c, "domain", obj.Common)
		if strings.TrimSpace(obj.LDHName) == "" {
			c.add(StdErrorViolation, "domain.ldhName.empty", "domain ldhName must be non-empty")
		} else if !isLDH(obj.LDHName) {
			c.add(StdErrorViolation, "domain.ldhName.non_ldh", "domain ldhName is not a valid LDH string")
		}
		if obj.SecureDNS != nil && obj.SecureDNS.ZoneSigned.IsString() {
			c.add(SpecificationNote, "domain.secureDNS.zoneSigned.lenient", "zoneSigned was decoded from a string")
		}
		for _, e := range obj.Entities {
			checkAny(c, &e, p)
		}
		if p.DoSubchecks {
			for _, ns := range obj.Nameservers {
				checkAny(c, &ns, p)
			}
		}
	case *Nameserver:
		checkCommon(c, "nameserver", obj.Common)
		if strings.TrimSpace(obj.LDHName) == "" {
			c.add(StdErrorViolation, "nameserver.ldhName.empty", "nameserver ldhName must be non-empty")
		}
		for _, e := range obj.Entities {
			checkAny(c, &e, p)
		}
	case *Network:
		checkCommon(c, "ip network", obj.Common)
		if obj.StartAddress != "" && obj.EndAddress != "" {
			if !addressesOrdered(obj.StartAddress, obj.EndAddress) {
				c.add(StdErrorViolation, "network.range.inverted", "network startAddress must be <= endAddress")
			}
		}
		for _, e := range obj.Entities {
			checkAny(c, &e, p)
		}
	case *Autnum:
		checkCommon(c, "autnum", obj.Common)
		start, okS := obj.StartAutnum.Value()
		end, okE := obj.EndAutnum.Value()
		if okS && okE && start > end {
			c.add(StdErrorViolation, "autnum.range.inverted", "autnum startAutnum must be <= endAutnum")
		}
		if obj.StartAutnum.IsString() || obj.EndAutnum.IsString() {
			c.add(SpecificationNote, "autnum.range.lenient", "autnum range was decoded from a string")
		}
		for _, e := range obj.Entities {
			checkAny(c, &e, p)
		}
	case *ErrorResponse:
		if obj.ErrorCode == 0 {
			c.add(StdErrorViolation, "error.errorCode.missing", "error response must carry a non-zero errorCode")
		}
	}
}

func checkCommon(c *Checks, class string, co Common) {
	if co.ObjectClassName == "" {
		c.add(StdErrorWarning, class+".objectClassName.missing", "missing objectClassName")
	}
	hasSelf := false
	for _, l := range co.Links {
		if l.Rel == "self" {
			hasSelf = true
			break
		}
	}
	if !hasSelf {
		c.add(StdErrorWarning, class+".links.self.missing", "missing self link")
	}
	if len(co.RDAPConformance) == 0 {
		c.add(StdErrorWarning, class+".rdapConformance.missing", "missing rdapConformance")
	} else {
		hasLevel0 := false
		for _, s := range co.RDAPConformance {
			if s == "rdap_level_0" {
				hasLevel0 = true
				break
			}
		}
		if !hasLevel0 {
			c.add(StdErrorWarning, class+".rdapConformance.level0.missing", "rdapConformance missing rdap_level_0")
		}
	}
	if len(co.Unknown) > 0 {
		c.add(Informational, class+".unknown_keys", "object carries unrecognized keys")
	}
}

func isLDH(s string) bool {
	for _, label := range strings.Split(strings.TrimSuffix(s, "."), ".") {
		if label == "" || len(label) > 63 {
			return false
		}
		for _, r := range label {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			default:
				return false
			}
		}
	}
	return len(s) <= 253
}

func addressesOrdered(start, end string) bool {
	a, errA := netip.ParseAddr(start)
	b, errB := netip.ParseAddr(end)
	if errA != nil || errB != nil {
		return true
	}
	return a.Compare(b) <= 0
}
