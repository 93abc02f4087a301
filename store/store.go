package store

import (
	"errors"
	"net/netip"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/datum-labs/rdapkit"
)

type domainEntry struct {
	obj    *rdapkit.Domain
	errRec *StoredError
	seq    uint64
}

type nameserverEntry struct {
	obj    *rdapkit.Nameserver
	errRec *StoredError
	seq    uint64
}

type entityEntry struct {
	obj    *rdapkit.Entity
	errRec *StoredError
	seq    uint64
}

type autnumEntry struct {
	start, end uint32
	obj        *rdapkit.Autnum
	errRec     *StoredError
	seq        uint64
}

type networkEntry struct {
	prefix netip.Prefix
	obj    *rdapkit.Network
	errRec *StoredError
	seq    uint64
}

// indices is an immutable-once-published snapshot of every lookup table.
// Readers hold a pointer to one indices value and never observe a partial
// write; writers build a new indices value and swap the pointer on commit.
type indices struct {
	domains       map[string]domainEntry
	nameservers   map[string]nameserverEntry
	entitiesExact map[string]entityEntry
	entitiesTag   map[string]entityEntry
	autnums       []autnumEntry
	networksV4    []networkEntry
	networksV6    []networkEntry
	seq           uint64
}

func newIndices() *indices {
	return &indices{
		domains:       make(map[string]domainEntry),
		nameservers:   make(map[string]nameserverEntry),
		entitiesExact: make(map[string]entityEntry),
		entitiesTag:   make(map[string]entityEntry),
	}
}

func (ix *indices) clone() *indices {
	out := &indices{
		domains:       make(map[string]domainEntry, len(ix.domains)),
		nameservers:   make(map[string]nameserverEntry, len(ix.nameservers)),
		entitiesExact: make(map[string]entityEntry, len(ix.entitiesExact)),
		entitiesTag:   make(map[string]entityEntry, len(ix.entitiesTag)),
		autnums:       append([]autnumEntry(nil), ix.autnums...),
		networksV4:    append([]networkEntry(nil), ix.networksV4...),
		networksV6:    append([]networkEntry(nil), ix.networksV6...),
		seq:           ix.seq,
	}
	for k, v := range ix.domains {
		out.domains[k] = v
	}
	for k, v := range ix.nameservers {
		out.nameservers[k] = v
	}
	for k, v := range ix.entitiesExact {
		out.entitiesExact[k] = v
	}
	for k, v := range ix.entitiesTag {
		out.entitiesTag[k] = v
	}
	return out
}

// Store holds one mutex guarding index-pointer swaps; index contents behind
// the pointer are immutable after publication, so reads never block on a
// concurrent commit.
type Store struct {
	mu  sync.RWMutex
	idx *indices
}

// New returns an empty Store.
func New() *Store {
	return &Store{idx: newIndices()}
}

func (s *Store) snapshot() *indices {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx
}

// Tx buffers writes in a private overlay copied from the store's current
// snapshot at creation time. Commit swaps the overlay into the store
// wholesale under the store's mutex; Rollback simply discards it.
type Tx struct {
	ID    uuid.UUID
	store *Store
	idx   *indices
	done  bool
}

// NewTx starts an isolated transaction over a copy of the current snapshot.
// Its writes are not visible through the Store until Commit, and Tx has no
// lookup methods of its own, so a transaction cannot read back its writes.
func (s *Store) NewTx() *Tx {
	return &Tx{ID: uuid.New(), store: s, idx: s.snapshot().clone()}
}

func (tx *Tx) nextSeq() uint64 {
	tx.idx.seq++
	return tx.idx.seq
}

// Commit publishes the transaction's overlay as the store's new snapshot.
// Two concurrent commits are serialized by the store's mutex; there is no
// conflict detection beyond last-writer-wins at the id level.
func (tx *Tx) Commit() {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	tx.store.idx = tx.idx
	tx.done = true
}

// Rollback discards the transaction's overlay without publishing it.
func (tx *Tx) Rollback() { tx.done = true }

func domainKey(ldh string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(ldh), "."))
}

// AddDomain registers a resolved domain object at id.
func (tx *Tx) AddDomain(id DomainId, d *rdapkit.Domain) {
	tx.idx.domains[domainKey(id.LDHName)] = domainEntry{obj: d, seq: tx.nextSeq()}
}

// AddDomainErr registers a redirect or terminal error at id.
func (tx *Tx) AddDomainErr(id DomainId, e StoredError) {
	tx.idx.domains[domainKey(id.LDHName)] = domainEntry{errRec: &e, seq: tx.nextSeq()}
}

// RemoveDomain deletes any record at id.
func (tx *Tx) RemoveDomain(id DomainId) { delete(tx.idx.domains, domainKey(id.LDHName)) }

// AddNameserver registers a resolved nameserver object at id.
func (tx *Tx) AddNameserver(id NameserverId, n *rdapkit.Nameserver) {
	tx.idx.nameservers[domainKey(id.LDHName)] = nameserverEntry{obj: n, seq: tx.nextSeq()}
}

// AddNameserverErr registers a redirect or terminal error at id.
func (tx *Tx) AddNameserverErr(id NameserverId, e StoredError) {
	tx.idx.nameservers[domainKey(id.LDHName)] = nameserverEntry{errRec: &e, seq: tx.nextSeq()}
}

// RemoveNameserver deletes any record at id.
func (tx *Tx) RemoveNameserver(id NameserverId) {
	delete(tx.idx.nameservers, domainKey(id.LDHName))
}

func isTagHandle(handle string) bool { return strings.HasPrefix(handle, "-") }

// AddEntity registers a resolved entity object at id. A handle beginning
// with "-" is stored in the registry-tag index instead of the exact index.
func (tx *Tx) AddEntity(id EntityId, e *rdapkit.Entity) {
	entry := entityEntry{obj: e, seq: tx.nextSeq()}
	if isTagHandle(id.Handle) {
		tx.idx.entitiesTag[strings.ToLower(id.Handle)] = entry
		return
	}
	tx.idx.entitiesExact[id.Handle] = entry
}

// AddEntityErr registers a redirect or terminal error at id.
func (tx *Tx) AddEntityErr(id EntityId, e StoredError) {
	entry := entityEntry{errRec: &e, seq: tx.nextSeq()}
	if isTagHandle(id.Handle) {
		tx.idx.entitiesTag[strings.ToLower(id.Handle)] = entry
		return
	}
	tx.idx.entitiesExact[id.Handle] = entry
}

// RemoveEntity deletes any record at id.
func (tx *Tx) RemoveEntity(id EntityId) {
	if isTagHandle(id.Handle) {
		delete(tx.idx.entitiesTag, strings.ToLower(id.Handle))
		return
	}
	delete(tx.idx.entitiesExact, id.Handle)
}

// AddAutnum registers a resolved autnum object over [id.StartAutnum, id.EndAutnum].
func (tx *Tx) AddAutnum(id AutnumId, a *rdapkit.Autnum) {
	tx.idx.autnums = append(tx.idx.autnums, autnumEntry{
		start: id.StartAutnum, end: id.EndAutnum, obj: a, seq: tx.nextSeq(),
	})
}

// AddAutnumErr registers a redirect or terminal error over id's range.
func (tx *Tx) AddAutnumErr(id AutnumId, e StoredError) {
	tx.idx.autnums = append(tx.idx.autnums, autnumEntry{
		start: id.StartAutnum, end: id.EndAutnum, errRec: &e, seq: tx.nextSeq(),
	})
}

func networkIdToPrefix(id NetworkId) (netip.Prefix, error) {
	if id.Kind == NetworkIdCidr {
		return id.Cidr, nil
	}
	return coverPrefix(id.StartAddr, id.EndAddr)
}

// coverPrefix returns the smallest CIDR whose range covers [start, end].
func coverPrefix(start, end netip.Addr) (netip.Prefix, error) {
	if start.Is4() != end.Is4() {
		return netip.Prefix{}, errors.New("store: mismatched address families in network range")
	}
	for length := start.BitLen(); length >= 0; length-- {
		p := netip.PrefixFrom(start, length).Masked()
		if p.Contains(end) {
			return p, nil
		}
	}
	return netip.Prefix{}, errors.New("store: no covering prefix found")
}

func familyBucket(ix *indices, v4 bool) *[]networkEntry {
	if v4 {
		return &ix.networksV4
	}
	return &ix.networksV6
}

// AddNetwork registers a resolved network object at id.
func (tx *Tx) AddNetwork(id NetworkId, n *rdapkit.Network) error {
	p, err := networkIdToPrefix(id)
	if err != nil {
		return err
	}
	bucket := familyBucket(tx.idx, p.Addr().Is4())
	*bucket = append(*bucket, networkEntry{prefix: p, obj: n, seq: tx.nextSeq()})
	return nil
}

// AddNetworkErr registers a redirect or terminal error at id.
func (tx *Tx) AddNetworkErr(id NetworkId, e StoredError) error {
	p, err := networkIdToPrefix(id)
	if err != nil {
		return err
	}
	bucket := familyBucket(tx.idx, p.Addr().Is4())
	*bucket = append(*bucket, networkEntry{prefix: p, errRec: &e, seq: tx.nextSeq()})
	return nil
}

// GetDomain performs most-specific suffix lookup for ldh, per spec section 4.E.
func (s *Store) GetDomain(ldh string) Result {
	idx := s.snapshot()
	for _, suf := range domainSuffixes(ldh) {
		e, ok := idx.domains[suf]
		if !ok {
			continue
		}
		if e.errRec != nil {
			return errResult(*e.errRec)
		}
		if e.obj != nil {
			return Result{Kind: ResultFound, Object: e.obj}
		}
	}
	return Result{Kind: ResultNotFound, ErrorCode: 404}
}

// GetNameserver performs most-specific suffix lookup for ldh.
func (s *Store) GetNameserver(ldh string) Result {
	idx := s.snapshot()
	for _, suf := range domainSuffixes(ldh) {
		e, ok := idx.nameservers[suf]
		if !ok {
			continue
		}
		if e.errRec != nil {
			return errResult(*e.errRec)
		}
		if e.obj != nil {
			return Result{Kind: ResultFound, Object: e.obj}
		}
	}
	return Result{Kind: ResultNotFound, ErrorCode: 404}
}

// domainSuffixes returns the fall-through suffix chain for ldh, from most to
// least specific, ending in the empty string (root).
func domainSuffixes(ldh string) []string {
	key := domainKey(ldh)
	if key == "" {
		return []string{""}
	}
	labels := strings.Split(key, ".")
	out := make([]string, 0, len(labels)+1)
	for i := range labels {
		out = append(out, strings.Join(labels[i:], "."))
	}
	out = append(out, "")
	return out
}

// entityTag extracts the lowercase registry tag (the substring after the
// final "-") from handle, or "" if handle carries none.
func entityTag(handle string) string {
	i := strings.LastIndex(handle, "-")
	if i < 0 || i == len(handle)-1 {
		return ""
	}
	return strings.ToLower(handle[i+1:])
}

// GetEntity tests the exact handle first, then the tag-suffix index.
func (s *Store) GetEntity(handle string) Result {
	idx := s.snapshot()
	if e, ok := idx.entitiesExact[handle]; ok {
		if e.errRec != nil {
			return errResult(*e.errRec)
		}
		if e.obj != nil {
			return Result{Kind: ResultFound, Object: e.obj}
		}
	}
	if tag := entityTag(handle); tag != "" {
		if e, ok := idx.entitiesTag["-"+tag]; ok {
			if e.errRec != nil {
				return errResult(*e.errRec)
			}
			if e.obj != nil {
				return Result{Kind: ResultFound, Object: e.obj}
			}
		}
	}
	return Result{Kind: ResultNotFound, ErrorCode: 404}
}

// GetAutnum returns the narrowest range containing n, breaking ties by
// most-recent insertion.
func (s *Store) GetAutnum(n uint32) Result {
	idx := s.snapshot()
	var best *autnumEntry
	for i := range idx.autnums {
		e := &idx.autnums[i]
		if n < e.start || n > e.end {
			continue
		}
		if best == nil || isNarrowerOrNewer(e.start, e.end, e.seq, best.start, best.end, best.seq) {
			best = e
		}
	}
	return autnumEntryResult(best)
}

func isNarrowerOrNewer(start, end uint32, seq uint64, bestStart, bestEnd uint32, bestSeq uint64) bool {
	width, bestWidth := end-start, bestEnd-bestStart
	if width != bestWidth {
		return width < bestWidth
	}
	return seq > bestSeq
}

func autnumEntryResult(e *autnumEntry) Result {
	if e == nil {
		return Result{Kind: ResultNotFound, ErrorCode: 404}
	}
	if e.errRec != nil {
		return errResult(*e.errRec)
	}
	if e.obj != nil {
		return Result{Kind: ResultFound, Object: e.obj}
	}
	return Result{Kind: ResultNotFound, ErrorCode: 404}
}

// GetNetwork returns the longest-prefix entry covering ip, breaking ties by
// most-recent insertion.
func (s *Store) GetNetwork(ip netip.Addr) Result {
	idx := s.snapshot()
	list := *familyBucket(idx, ip.Is4())
	var best *networkEntry
	for i := range list {
		e := &list[i]
		if !e.prefix.Contains(ip) {
			continue
		}
		if best == nil || isLongerOrNewer(e.prefix.Bits(), e.seq, best.prefix.Bits(), best.seq) {
			best = e
		}
	}
	return networkEntryResult(best)
}

// GetNetworkByCidr returns the longest-prefix entry P with P.Bits() <=
// cidr.Bits() that covers cidr's network address.
func (s *Store) GetNetworkByCidr(cidr netip.Prefix) Result {
	idx := s.snapshot()
	list := *familyBucket(idx, cidr.Addr().Is4())
	var best *networkEntry
	for i := range list {
		e := &list[i]
		if e.prefix.Bits() > cidr.Bits() {
			continue
		}
		if !e.prefix.Contains(cidr.Addr()) {
			continue
		}
		if best == nil || isLongerOrNewer(e.prefix.Bits(), e.seq, best.prefix.Bits(), best.seq) {
			best = e
		}
	}
	return networkEntryResult(best)
}

func isLongerOrNewer(bits int, seq uint64, bestBits int, bestSeq uint64) bool {
	if bits != bestBits {
		return bits > bestBits
	}
	return seq > bestSeq
}

func networkEntryResult(e *networkEntry) Result {
	if e == nil {
		return Result{Kind: ResultNotFound, ErrorCode: 404}
	}
	if e.errRec != nil {
		return errResult(*e.errRec)
	}
	if e.obj != nil {
		return Result{Kind: ResultFound, Object: e.obj}
	}
	return Result{Kind: ResultNotFound, ErrorCode: 404}
}
