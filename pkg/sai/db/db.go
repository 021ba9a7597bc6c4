// Package db implements the shadow database (§3.3): the in-memory
// record of every object a virtual switch has created, the global
// reference-count table that enforces the ref-before-remove rule, and
// the per-switch composite-key index that enforces KEY-attribute
// uniqueness. It mirrors the map-of-maps layout sairedis keeps in its
// in-process "SaiObjectCollection", adapted to hold typed attribute
// values instead of opaque strings.
//
// Database itself holds no lock; every exported method assumes the
// caller already holds the process-wide lock described in the
// concurrency model (§5). That lock is owned one level up, by the
// validator, so that a single entry-point call can make several DB
// calls under one critical section instead of one per call.
package db

import (
	"fmt"

	"github.com/tiglabs/sai-core/pkg/sai/codec"
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// AttrHash is the attribute-id-name → owned value map backing a single
// object (§3.3). Values are always stored as deep copies; callers must
// never mutate a value returned by GetAttrs or GetPrev in place.
type AttrHash map[metadata.AttrID]types.Value

type objectEntry struct {
	metaKey types.MetaKey
	attrs   AttrHash
}

// ObjectHash maps object type to serialized meta-key to the owning
// entry, scoped to a single switch.
type ObjectHash map[types.ObjectType]map[string]*objectEntry

// SwitchState is everything one switch instance owns: its object hash
// and its composite-key index. Destroying a switch drops this whole
// structure in one step (§3.5).
type SwitchState struct {
	// OID is the switch object's own handle.
	OID types.OID

	Objects ObjectHash

	// CompositeKeys enforces invariant 6: a KEY-attribute combination
	// is unique per object type *within a switch*, not process-wide.
	CompositeKeys map[types.ObjectType]map[string]string
}

func newSwitchState(oid types.OID) *SwitchState {
	return &SwitchState{
		OID:           oid,
		Objects:       make(ObjectHash),
		CompositeKeys: make(map[types.ObjectType]map[string]string),
	}
}

// Database is the process-wide shadow database: one SwitchState per
// live switch, plus the global reference-count table (§3.3).
type Database struct {
	switches  map[uint8]*SwitchState
	refCounts map[types.OID]int
}

// NewDatabase returns an empty database with no switches.
func NewDatabase() *Database {
	return &Database{
		switches:  make(map[uint8]*SwitchState),
		refCounts: make(map[types.OID]int),
	}
}

func (d *Database) switchIndexFor(mk types.MetaKey) uint8 {
	if types.IsNonObjectID(mk.ObjectType) {
		return types.SwitchIndexOf(mk.SwitchOf())
	}
	return types.SwitchIndexOf(mk.OID)
}

// CreateSwitch installs a new, empty SwitchState for oid and seeds the
// switch object's own entry in its object hash. It fails if the switch
// index packed into oid is already in use.
func (d *Database) CreateSwitch(oid types.OID) error {
	idx := types.SwitchIndexOf(oid)
	if _, ok := d.switches[idx]; ok {
		return fmt.Errorf("db: switch index %d is already in use", idx)
	}
	st := newSwitchState(oid)
	mk := types.MetaKeyForOID(types.ObjectTypeSwitch, oid)
	key, err := codec.SerializeObjectMetaKey(mk)
	if err != nil {
		return err
	}
	st.Objects[types.ObjectTypeSwitch] = map[string]*objectEntry{
		key: {metaKey: mk, attrs: make(AttrHash)},
	}
	d.switches[idx] = st
	d.refCounts[oid] = 0
	return nil
}

// RemoveSwitch drops the entire SwitchState for oid, along with every
// ref-count entry it owned. Composite-key indices go with it since they
// live on the SwitchState. A no-op if the switch is not present.
func (d *Database) RemoveSwitch(oid types.OID) {
	idx := types.SwitchIndexOf(oid)
	st, ok := d.switches[idx]
	if !ok {
		return
	}
	for t, byKey := range st.Objects {
		if types.IsNonObjectID(t) {
			continue
		}
		for _, e := range byKey {
			delete(d.refCounts, e.metaKey.OID)
		}
	}
	delete(d.switches, idx)
}

// SwitchExists reports whether oid names a live switch.
func (d *Database) SwitchExists(oid types.OID) bool {
	st, ok := d.switches[types.SwitchIndexOf(oid)]
	return ok && st.OID == oid
}

// SwitchState returns the state owned by oid's switch, if any.
func (d *Database) SwitchState(oid types.OID) (*SwitchState, bool) {
	st, ok := d.switches[types.SwitchIndexOf(oid)]
	return st, ok
}

func (d *Database) entry(mk types.MetaKey) (*objectEntry, bool) {
	st, ok := d.switches[d.switchIndexFor(mk)]
	if !ok {
		return nil, false
	}
	key, err := codec.SerializeObjectMetaKey(mk)
	if err != nil {
		return nil, false
	}
	byKey, ok := st.Objects[mk.ObjectType]
	if !ok {
		return nil, false
	}
	e, ok := byKey[key]
	return e, ok
}

// Exists reports whether mk names a live object.
func (d *Database) Exists(mk types.MetaKey) bool {
	_, ok := d.entry(mk)
	return ok
}

// Create inserts an empty entry for mk. Precondition: !Exists(mk).
func (d *Database) Create(mk types.MetaKey) error {
	st, ok := d.switches[d.switchIndexFor(mk)]
	if !ok {
		return fmt.Errorf("db: create %s: no such switch", mk.ObjectType)
	}
	key, err := codec.SerializeObjectMetaKey(mk)
	if err != nil {
		return err
	}
	byKey, ok := st.Objects[mk.ObjectType]
	if !ok {
		byKey = make(map[string]*objectEntry)
		st.Objects[mk.ObjectType] = byKey
	}
	if _, exists := byKey[key]; exists {
		return fmt.Errorf("db: create %s: %s already exists", mk.ObjectType, key)
	}
	byKey[key] = &objectEntry{metaKey: mk, attrs: make(AttrHash)}
	return nil
}

// Remove erases mk's entry. Precondition: Exists(mk).
func (d *Database) Remove(mk types.MetaKey) error {
	st, ok := d.switches[d.switchIndexFor(mk)]
	if !ok {
		return fmt.Errorf("db: remove %s: no such switch", mk.ObjectType)
	}
	key, err := codec.SerializeObjectMetaKey(mk)
	if err != nil {
		return err
	}
	byKey, ok := st.Objects[mk.ObjectType]
	if !ok {
		return fmt.Errorf("db: remove %s: %s not found", mk.ObjectType, key)
	}
	if _, exists := byKey[key]; !exists {
		return fmt.Errorf("db: remove %s: %s not found", mk.ObjectType, key)
	}
	delete(byKey, key)
	return nil
}

// Set stores a deep copy of v under id in mk's AttrHash. Precondition:
// Exists(mk).
func (d *Database) Set(mk types.MetaKey, id metadata.AttrID, v types.Value) error {
	e, ok := d.entry(mk)
	if !ok {
		return fmt.Errorf("db: set %s on %s: object not found", id, mk.ObjectType)
	}
	e.attrs[id] = v.Clone()
	return nil
}

// GetPrev returns the currently stored value for id on mk, if any.
func (d *Database) GetPrev(mk types.MetaKey, id metadata.AttrID) (types.Value, bool) {
	e, ok := d.entry(mk)
	if !ok {
		return nil, false
	}
	v, ok := e.attrs[id]
	return v, ok
}

// GetAttrs returns the live AttrHash for mk. Callers must treat it as
// read-only; mutate through Set instead.
func (d *Database) GetAttrs(mk types.MetaKey) (AttrHash, bool) {
	e, ok := d.entry(mk)
	if !ok {
		return nil, false
	}
	return e.attrs, true
}

// RefExists reports whether oid has a reference-count entry. The NULL
// OID is never tracked and always reports false.
func (d *Database) RefExists(oid types.OID) bool {
	if oid.IsNull() {
		return false
	}
	_, ok := d.refCounts[oid]
	return ok
}

// RefInsert creates a reference-count entry for oid at zero.
// Precondition: !RefExists(oid). A no-op for the NULL OID.
func (d *Database) RefInsert(oid types.OID) error {
	if oid.IsNull() {
		return nil
	}
	if _, ok := d.refCounts[oid]; ok {
		return fmt.Errorf("db: ref-count entry for %s already exists", oid)
	}
	d.refCounts[oid] = 0
	return nil
}

// RefRemove erases oid's reference-count entry. Precondition: count==0.
// A no-op for the NULL OID or an already-absent entry.
func (d *Database) RefRemove(oid types.OID) error {
	if oid.IsNull() {
		return nil
	}
	c, ok := d.refCounts[oid]
	if !ok {
		return nil
	}
	if c != 0 {
		return fmt.Errorf("db: cannot remove ref-count entry for %s: count is %d", oid, c)
	}
	delete(d.refCounts, oid)
	return nil
}

// RefInc increments oid's reference count. A no-op for the NULL OID.
// A missing entry for a non-null OID is an internal invariant
// violation (§7): the caller should have created it in post_create.
func (d *Database) RefInc(oid types.OID) {
	if oid.IsNull() {
		return
	}
	if _, ok := d.refCounts[oid]; !ok {
		panic(fmt.Sprintf("db: ref-inc on untracked oid %s", oid))
	}
	d.refCounts[oid]++
}

// RefDec decrements oid's reference count. A no-op for the NULL OID.
// Decrementing past zero or an untracked OID is an internal invariant
// violation and panics; callers above the database are expected to
// convert this into process-abort behavior per §7.
func (d *Database) RefDec(oid types.OID) {
	if oid.IsNull() {
		return
	}
	c, ok := d.refCounts[oid]
	if !ok {
		panic(fmt.Sprintf("db: ref-dec on untracked oid %s", oid))
	}
	if c == 0 {
		panic(fmt.Sprintf("db: ref-count for %s would go negative", oid))
	}
	d.refCounts[oid] = c - 1
}

// RefIncList increments every OID in oids, skipping NULLs.
func (d *Database) RefIncList(oids []types.OID) {
	for _, o := range oids {
		d.RefInc(o)
	}
}

// RefDecList decrements every OID in oids, skipping NULLs.
func (d *Database) RefDecList(oids []types.OID) {
	for _, o := range oids {
		d.RefDec(o)
	}
}

// RefCount returns oid's current reference count, or 0 for the NULL OID
// or an untracked OID.
func (d *Database) RefCount(oid types.OID) int32 {
	if oid.IsNull() {
		return 0
	}
	return int32(d.refCounts[oid])
}

// KeyExists reports whether compositeKey is already recorded for mk's
// object type within mk's switch.
func (d *Database) KeyExists(mk types.MetaKey, compositeKey string) bool {
	st, ok := d.switches[d.switchIndexFor(mk)]
	if !ok {
		return false
	}
	byType, ok := st.CompositeKeys[mk.ObjectType]
	if !ok {
		return false
	}
	_, ok = byType[compositeKey]
	return ok
}

// KeyInsert records compositeKey against mk's serialized meta-key.
func (d *Database) KeyInsert(mk types.MetaKey, compositeKey string) error {
	st, ok := d.switches[d.switchIndexFor(mk)]
	if !ok {
		return fmt.Errorf("db: key-insert %s: no such switch", mk.ObjectType)
	}
	serialized, err := codec.SerializeObjectMetaKey(mk)
	if err != nil {
		return err
	}
	byType, ok := st.CompositeKeys[mk.ObjectType]
	if !ok {
		byType = make(map[string]string)
		st.CompositeKeys[mk.ObjectType] = byType
	}
	byType[compositeKey] = serialized
	return nil
}

// KeyRemove erases compositeKey from mk's object-type index, if present.
func (d *Database) KeyRemove(mk types.MetaKey, compositeKey string) {
	st, ok := d.switches[d.switchIndexFor(mk)]
	if !ok {
		return
	}
	if byType, ok := st.CompositeKeys[mk.ObjectType]; ok {
		delete(byType, compositeKey)
	}
}
