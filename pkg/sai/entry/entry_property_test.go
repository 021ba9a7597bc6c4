package entry

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/tiglabs/sai-core/pkg/sai/db"
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
	"github.com/tiglabs/sai-core/pkg/sai/validator"
)

// nullDriver is a driver.Driver that never rejects a call and tracks
// nothing, standing in for a real backend in tests that only care
// about the wrapper's own OID-allocation bookkeeping.
type nullDriver struct{}

func (nullDriver) CreateSwitch(types.OID, validator.AttrList) *validator.Error       { return nil }
func (nullDriver) CreateObject(types.MetaKey, types.OID, validator.AttrList) *validator.Error {
	return nil
}
func (nullDriver) RemoveObject(types.MetaKey) *validator.Error { return nil }
func (nullDriver) SetAttribute(types.MetaKey, metadata.AttrID, types.Value) *validator.Error {
	return nil
}
func (nullDriver) RefreshReadOnly(types.MetaKey, types.OID, metadata.AttrID) (types.Value, error) {
	return nil, nil
}

func newTestWrapper(t *testing.T) (*Wrapper, types.OID) {
	t.Helper()
	d := db.NewDatabase()
	v := validator.New(d)
	w := New(v, nullDriver{})
	swID, err := w.CreateSwitch(validator.AttrList{
		metadata.SwitchAttrInitSwitch: types.Bool(true),
	})
	if err != nil {
		t.Fatalf("create switch: %s", err)
	}
	return w, swID
}

// TestProperty_CreatedOIDsAreUnique verifies the monotonic-allocator
// decision in entry.go's Wrapper doc comment: any number of
// CreateObject calls for the same object type on the same switch
// produce pairwise-distinct OIDs, and removing some of them never
// frees an instance number for reuse by a later create.
func TestProperty_CreatedOIDsAreUnique(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("OIDs stay unique across create/remove churn", prop.ForAll(
		func(n int, removeEvery int) bool {
			w, swID := newTestWrapper(t)
			seen := make(map[types.OID]bool, n)

			for i := 0; i < n; i++ {
				oid, err := w.CreateObject(types.ObjectTypeBufferPool, swID, validator.AttrList{
					metadata.BufferPoolAttrType: types.S32(metadata.BufferPoolTypeIngress),
					metadata.BufferPoolAttrSize: types.U32(1024),
				})
				if err != nil {
					return false
				}
				if seen[oid] {
					return false // a freshly allocated OID collided with a prior one
				}
				seen[oid] = true

				if removeEvery > 0 && i%removeEvery == 0 {
					if rerr := w.RemoveObject(types.MetaKeyForOID(types.ObjectTypeBufferPool, oid)); rerr != nil {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 80),
		gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}

// TestProperty_SwitchIndicesAreUnique mirrors the same uniqueness
// property one level up: every CreateSwitch call in a process hands
// out a distinct switch index, so OIDs minted under different switches
// can never collide even if their per-type instance counters happen to
// match.
func TestProperty_SwitchIndicesAreUnique(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("switch OIDs are pairwise distinct", prop.ForAll(
		func(n int) bool {
			d := db.NewDatabase()
			v := validator.New(d)
			w := New(v, nullDriver{})

			seen := make(map[types.OID]bool, n)
			for i := 0; i < n && i < 255; i++ {
				oid, err := w.CreateSwitch(validator.AttrList{
					metadata.SwitchAttrInitSwitch: types.Bool(true),
				})
				if err != nil {
					return false
				}
				if seen[oid] {
					return false
				}
				seen[oid] = true
			}
			return true
		},
		gen.IntRange(1, 40),
	))

	properties.TestingRun(t)
}
