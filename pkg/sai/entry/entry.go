// Package entry implements the per-object-family wrappers §4.5
// describes: build the meta-key, run the extra domain hooks, call the
// matching pre_* validator, invoke the driver, call the matching
// post_* validator on success, and return the composite status. This
// is the layer a client-facing API (or cmd/saivsd's scripted sequence)
// actually calls; it never writes the shadow DB directly, only
// through the validator and the driver, and GetAttributes reads stored
// values through the validator's DB handle.
package entry

import (
	"sync"
	"sync/atomic"

	"github.com/tiglabs/sai-core/pkg/logging"
	"github.com/tiglabs/sai-core/pkg/metrics"
	"github.com/tiglabs/sai-core/pkg/sai/driver"
	"github.com/tiglabs/sai-core/pkg/sai/hooks"
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
	"github.com/tiglabs/sai-core/pkg/sai/validator"
)

var log = logging.GetGlobalLogger().WithName("entry")

// timed runs one validator entry point, recording its latency and
// success/failure through the shared metrics registry.
func timed(entryPoint string, ot types.ObjectType, fn func() *validator.Error) *validator.Error {
	timer := metrics.NewTimer()
	err := fn()
	metrics.RecordValidatorCall(entryPoint, ot.String(), err == nil, timer.ObserveDuration())
	if err != nil {
		log.V(1).Info("entry point rejected", "entry_point", entryPoint, "object_type", ot.String(), "status", err.Status)
	}
	return err
}

// Wrapper sequences hooks, the generic validator, and a driver for
// every object family. OID instance numbers are handed out from a
// monotonic per-object-type counter and never reused, even across
// remove/create cycles on the same switch: SAI OIDs are opaque handles,
// not indices, and a reuse scheme buys nothing but the chance of a
// stale client handle silently referring to a different live object.
type Wrapper struct {
	V      *validator.Validator
	Driver driver.Driver

	mu        sync.Mutex
	instances map[types.ObjectType]uint64
	switches  uint32
}

// New builds a wrapper. The driver is expected to have been
// constructed against the same validator's database.
func New(v *validator.Validator, drv driver.Driver) *Wrapper {
	return &Wrapper{
		V:         v,
		Driver:    drv,
		instances: make(map[types.ObjectType]uint64),
	}
}

func (w *Wrapper) nextInstance(ot types.ObjectType) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.instances[ot]++
	return w.instances[ot]
}

func (w *Wrapper) nextSwitchIndex() uint8 {
	return uint8(atomic.AddUint32(&w.switches, 1) - 1)
}

// CreateSwitch allocates a fresh switch index, then runs the switch
// object itself through the generic pipeline before asking the driver
// to seed the default topology (§4.6).
func (w *Wrapper) CreateSwitch(attrs validator.AttrList) (types.OID, *validator.Error) {
	idx := w.nextSwitchIndex()
	oid := types.NewOID(idx, types.ObjectTypeSwitch, w.nextInstance(types.ObjectTypeSwitch))
	mk := types.MetaKeyForOID(types.ObjectTypeSwitch, oid)

	if err := timed(metrics.EntryPointPreCreate, types.ObjectTypeSwitch, func() *validator.Error {
		return w.V.PreCreate(mk, oid, attrs)
	}); err != nil {
		return types.NullOID, err
	}
	if err := w.Driver.CreateObject(mk, oid, attrs); err != nil {
		return types.NullOID, err
	}
	if err := timed(metrics.EntryPointPostCreate, types.ObjectTypeSwitch, func() *validator.Error {
		return w.V.PostCreate(mk, oid, attrs)
	}); err != nil {
		return types.NullOID, err
	}
	if err := w.Driver.CreateSwitch(oid, attrs); err != nil {
		return types.NullOID, err
	}
	log.Info("switch created", "switch", oid.String())
	return oid, nil
}

// CreateObject runs the full pipeline for an OID-keyed object family.
func (w *Wrapper) CreateObject(ot types.ObjectType, switchID types.OID, attrs validator.AttrList) (types.OID, *validator.Error) {
	if err := preCreateHook(ot, attrs); err != nil {
		return types.NullOID, err
	}
	oid := types.NewOID(types.SwitchIndexOf(switchID), ot, w.nextInstance(ot))
	mk := types.MetaKeyForOID(ot, oid)

	if err := timed(metrics.EntryPointPreCreate, ot, func() *validator.Error {
		return w.V.PreCreate(mk, switchID, attrs)
	}); err != nil {
		return types.NullOID, err
	}
	if err := w.Driver.CreateObject(mk, switchID, attrs); err != nil {
		return types.NullOID, err
	}
	if err := timed(metrics.EntryPointPostCreate, ot, func() *validator.Error {
		return w.V.PostCreate(mk, switchID, attrs)
	}); err != nil {
		return types.NullOID, err
	}
	return oid, nil
}

// CreateNOI runs the full pipeline for a struct-keyed object family
// (FDB entry, neighbor entry, route entry); mk must already carry the
// caller-supplied struct key.
func (w *Wrapper) CreateNOI(mk types.MetaKey, switchID types.OID, attrs validator.AttrList) *validator.Error {
	if err := preCreateHook(mk.ObjectType, attrs); err != nil {
		return err
	}
	if err := timed(metrics.EntryPointPreCreate, mk.ObjectType, func() *validator.Error {
		return w.V.PreCreate(mk, switchID, attrs)
	}); err != nil {
		return err
	}
	if err := w.Driver.CreateObject(mk, switchID, attrs); err != nil {
		return err
	}
	return timed(metrics.EntryPointPostCreate, mk.ObjectType, func() *validator.Error {
		return w.V.PostCreate(mk, switchID, attrs)
	})
}

// RemoveObject runs the full pipeline for either an OID or a
// struct-keyed meta-key.
func (w *Wrapper) RemoveObject(mk types.MetaKey) *validator.Error {
	if err := timed(metrics.EntryPointPreRemove, mk.ObjectType, func() *validator.Error {
		return w.V.PreRemove(mk)
	}); err != nil {
		return err
	}
	if err := w.Driver.RemoveObject(mk); err != nil {
		return err
	}
	return timed(metrics.EntryPointPostRemove, mk.ObjectType, func() *validator.Error {
		return w.V.PostRemove(mk)
	})
}

// SetAttribute runs the full pipeline for a single attribute set.
func (w *Wrapper) SetAttribute(mk types.MetaKey, switchID types.OID, id metadata.AttrID, val types.Value) *validator.Error {
	if err := preSetHook(mk.ObjectType, id, val); err != nil {
		return err
	}
	if err := timed(metrics.EntryPointPreSet, mk.ObjectType, func() *validator.Error {
		return w.V.PreSet(mk, switchID, id, val)
	}); err != nil {
		return err
	}
	if err := w.Driver.SetAttribute(mk, id, val); err != nil {
		return err
	}
	return timed(metrics.EntryPointPostSet, mk.ObjectType, func() *validator.Error {
		return w.V.PostSet(mk, id, val)
	})
}

// GetAttributes answers a batch get: READ_ONLY attributes are
// recalculated through the driver's refresher (§4.4.9); everything
// else is read straight from the shadow DB, defaulting to the
// registered CONST default when nothing has ever been stored.
func (w *Wrapper) GetAttributes(mk types.MetaKey, switchID types.OID, ids []metadata.AttrID) (validator.AttrList, *validator.Error) {
	if err := timed(metrics.EntryPointPreGet, mk.ObjectType, func() *validator.Error {
		return w.V.PreGet(mk, ids)
	}); err != nil {
		return nil, err
	}

	om, _ := w.V.Meta.Object(mk.ObjectType)
	results := make(validator.AttrList, len(ids))
	for _, id := range ids {
		m, _ := om.Attr(id)
		if m.Flags.Has(metadata.FlagReadOnly) {
			var val types.Value
			err := timed(metrics.EntryPointRefreshReadOnly, mk.ObjectType, func() *validator.Error {
				var refreshErr *validator.Error
				val, refreshErr = w.V.RefreshReadOnly(mk, switchID, id)
				return refreshErr
			})
			if err != nil {
				return nil, err
			}
			results[id] = val
			continue
		}
		if val, ok := w.V.DB.GetPrev(mk, id); ok {
			results[id] = val.Clone()
		} else if m.DefaultKind == metadata.DefaultConst {
			results[id] = m.Default.Clone()
		}
	}

	if err := timed(metrics.EntryPointPostGet, mk.ObjectType, func() *validator.Error {
		return w.V.PostGet(mk, switchID, results)
	}); err != nil {
		return nil, err
	}
	return results, nil
}

func preCreateHook(ot types.ObjectType, attrs validator.AttrList) *validator.Error {
	switch ot {
	case types.ObjectTypeScheduler:
		return hooks.PreCreateScheduler(attrs)
	case types.ObjectTypeWred:
		return hooks.PreCreateWred(attrs)
	case types.ObjectTypeTunnelMap:
		return hooks.PreCreateTunnelMap(attrs)
	default:
		return nil
	}
}

func preSetHook(ot types.ObjectType, id metadata.AttrID, val types.Value) *validator.Error {
	if ot == types.ObjectTypeScheduler {
		return hooks.PreSetScheduler(id, val)
	}
	return nil
}
