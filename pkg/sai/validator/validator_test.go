package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiglabs/sai-core/pkg/sai/db"
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// requireOK/requireErr exist because every validator entry point
// returns the concrete *Error type rather than the error interface:
// require.NoError/require.Error box a nil *Error into a non-nil error
// interface, so plain require.Nil/require.NotNil are used instead.
func requireOK(t *testing.T, err *Error, msgAndArgs ...any) {
	t.Helper()
	require.Nil(t, err, msgAndArgs...)
}

func requireErr(t *testing.T, err *Error, msgAndArgs ...any) *Error {
	t.Helper()
	require.NotNil(t, err, msgAndArgs...)
	return err
}

func newTestValidator(t *testing.T) (*Validator, types.OID) {
	t.Helper()
	d := db.NewDatabase()
	sw := types.NewOID(0, types.ObjectTypeSwitch, 1)
	require.NoError(t, d.CreateSwitch(sw))
	v := New(d)
	mk := types.MetaKeyForOID(types.ObjectTypeSwitch, sw)
	requireOK(t, v.PostCreate(mk, sw, AttrList{
		metadata.SwitchAttrInitSwitch: types.Bool(true),
	}))
	return v, sw
}

func mustCreate(t *testing.T, v *Validator, mk types.MetaKey, sw types.OID, attrs AttrList) {
	t.Helper()
	requireOK(t, v.PreCreate(mk, sw, attrs), "PreCreate(%s)", mk.ObjectType)
	requireOK(t, v.PostCreate(mk, sw, attrs), "PostCreate(%s)", mk.ObjectType)
}

// TestPortRefCountGuard is scenario 1 in §8.3: a bridge port pins its
// underlying port until the bridge port itself is removed.
func TestPortRefCountGuard(t *testing.T) {
	v, sw := newTestValidator(t)
	idx := types.SwitchIndexOf(sw)

	port := types.NewOID(idx, types.ObjectTypePort, 1)
	portMK := types.MetaKeyForOID(types.ObjectTypePort, port)
	mustCreate(t, v, portMK, sw, AttrList{
		metadata.PortAttrHwLaneList: types.U32List{Items: []uint32{1, 2, 3, 4}},
	})

	bridge := types.NewOID(idx, types.ObjectTypeBridge, 1)
	bridgeMK := types.MetaKeyForOID(types.ObjectTypeBridge, bridge)
	mustCreate(t, v, bridgeMK, sw, AttrList{
		metadata.BridgeAttrType: types.S32(metadata.BridgeTypeDot1Q),
	})

	bport := types.NewOID(idx, types.ObjectTypeBridgePort, 1)
	bportMK := types.MetaKeyForOID(types.ObjectTypeBridgePort, bport)
	mustCreate(t, v, bportMK, sw, AttrList{
		metadata.BridgePortAttrType:     types.S32(metadata.BridgePortTypePort),
		metadata.BridgePortAttrPortID:   types.OIDValue(port),
		metadata.BridgePortAttrBridgeID: types.OIDValue(bridge),
	})

	err := requireErr(t, v.PreRemove(portMK), "pre_remove(port) must fail while its bridge port is live")
	require.Equal(t, types.StatusInvalidParameter, err.Status)

	requireOK(t, v.PreRemove(bportMK))
	requireOK(t, v.PostRemove(bportMK))

	requireOK(t, v.PreRemove(portMK))
	requireOK(t, v.PostRemove(portMK))
}

// TestDuplicateFdbCreate is scenario 2 in §8.3.
func TestDuplicateFdbCreate(t *testing.T) {
	v, sw := newTestValidator(t)
	idx := types.SwitchIndexOf(sw)

	port := types.NewOID(idx, types.ObjectTypePort, 1)
	mustCreate(t, v, types.MetaKeyForOID(types.ObjectTypePort, port), sw, AttrList{
		metadata.PortAttrHwLaneList: types.U32List{Items: []uint32{1, 2, 3, 4}},
	})
	bridge := types.NewOID(idx, types.ObjectTypeBridge, 1)
	mustCreate(t, v, types.MetaKeyForOID(types.ObjectTypeBridge, bridge), sw, AttrList{
		metadata.BridgeAttrType: types.S32(metadata.BridgeTypeDot1Q),
	})
	bport := types.NewOID(idx, types.ObjectTypeBridgePort, 1)
	mustCreate(t, v, types.MetaKeyForOID(types.ObjectTypeBridgePort, bport), sw, AttrList{
		metadata.BridgePortAttrType:     types.S32(metadata.BridgePortTypePort),
		metadata.BridgePortAttrPortID:   types.OIDValue(port),
		metadata.BridgePortAttrBridgeID: types.OIDValue(bridge),
	})

	fdbKey := types.FdbEntryKey{
		SwitchID: sw,
		Mac:      types.Mac{0x11, 0x22, 0x33, 0x44, 0x55, 0x66},
		Vlan:     1,
		BridgeID: bridge,
	}
	fdbMK := types.MetaKey{ObjectType: types.ObjectTypeFdbEntry, Fdb: fdbKey}
	attrs := AttrList{
		metadata.FdbEntryAttrType:         types.S32(metadata.FdbEntryTypeStatic),
		metadata.FdbEntryAttrBridgePortID: types.OIDValue(bport),
	}

	requireOK(t, v.PreCreate(fdbMK, sw, attrs))
	requireOK(t, v.PostCreate(fdbMK, sw, attrs))

	err := requireErr(t, v.PreCreate(fdbMK, sw, attrs), "duplicate fdb create must fail")
	require.Equal(t, types.StatusItemAlreadyExists, err.Status)
}

// TestBufferProfileConditionalMandatoriness is scenario 6 in §8.3.
func TestBufferProfileConditionalMandatoriness(t *testing.T) {
	v, sw := newTestValidator(t)
	idx := types.SwitchIndexOf(sw)

	pool := types.NewOID(idx, types.ObjectTypeBufferPool, 1)
	mustCreate(t, v, types.MetaKeyForOID(types.ObjectTypeBufferPool, pool), sw, AttrList{
		metadata.BufferPoolAttrType: types.S32(metadata.BufferPoolTypeIngress),
		metadata.BufferPoolAttrSize: types.U32(1024),
		// THRESHOLD_MODE omitted: defaults to DYNAMIC.
	})

	profile := types.NewOID(idx, types.ObjectTypeBufferProfile, 1)
	profileMK := types.MetaKeyForOID(types.ObjectTypeBufferProfile, profile)

	base := AttrList{
		metadata.BufferProfileAttrPoolID:       types.OIDValue(pool),
		metadata.BufferProfileAttrReservedSize: types.U32(0),
	}
	err := requireErr(t, v.PreCreate(profileMK, sw, base), "SHARED_DYNAMIC_TH is mandatory against a dynamic pool")
	require.Equal(t, types.StatusMandatoryAttributeMissing, err.Status)

	withDynamic := AttrList{
		metadata.BufferProfileAttrPoolID:       types.OIDValue(pool),
		metadata.BufferProfileAttrReservedSize: types.U32(0),
		metadata.BufferProfileAttrSharedDynamic: types.S32(10),
	}
	requireOK(t, v.PreCreate(profileMK, sw, withDynamic))

	withStatic := AttrList{
		metadata.BufferProfileAttrPoolID:       types.OIDValue(pool),
		metadata.BufferProfileAttrReservedSize: types.U32(0),
		metadata.BufferProfileAttrSharedStatic:  types.U32(10),
	}
	err = requireErr(t, v.PreCreate(profileMK, sw, withStatic), "SHARED_STATIC_TH must not satisfy a dynamic pool's requirement")
	require.Equal(t, types.StatusMandatoryAttributeMissing, err.Status)
}

// TestSetIsIdempotentForRefCounts covers the "idempotent set" property
// (§8.1) for a single OID-valued attribute.
func TestSetIsIdempotentForRefCounts(t *testing.T) {
	v, sw := newTestValidator(t)
	idx := types.SwitchIndexOf(sw)

	pool := types.NewOID(idx, types.ObjectTypeBufferPool, 1)
	mustCreate(t, v, types.MetaKeyForOID(types.ObjectTypeBufferPool, pool), sw, AttrList{
		metadata.BufferPoolAttrType: types.S32(metadata.BufferPoolTypeIngress),
		metadata.BufferPoolAttrSize: types.U32(1024),
	})

	port := types.NewOID(idx, types.ObjectTypePort, 1)
	mustCreate(t, v, types.MetaKeyForOID(types.ObjectTypePort, port), sw, AttrList{
		metadata.PortAttrHwLaneList: types.U32List{Items: []uint32{1, 2, 3, 4}},
	})

	ipg := types.NewOID(idx, types.ObjectTypeIngressPriorityGroup, 1)
	ipgMK := types.MetaKeyForOID(types.ObjectTypeIngressPriorityGroup, ipg)
	requireOK(t, v.PreCreate(ipgMK, sw, AttrList{}))
	requireOK(t, v.PostCreate(ipgMK, sw, AttrList{}))

	profile := types.NewOID(idx, types.ObjectTypeBufferProfile, 1)
	mustCreate(t, v, types.MetaKeyForOID(types.ObjectTypeBufferProfile, profile), sw, AttrList{
		metadata.BufferProfileAttrPoolID:       types.OIDValue(pool),
		metadata.BufferProfileAttrReservedSize: types.U32(0),
		metadata.BufferProfileAttrSharedDynamic: types.S32(10),
	})

	requireOK(t, v.PreSet(ipgMK, sw, metadata.IngressPriorityGroupAttrBufferProfile, types.OIDValue(profile)))
	requireOK(t, v.PostSet(ipgMK, metadata.IngressPriorityGroupAttrBufferProfile, types.OIDValue(profile)))
	before := v.DB.RefCount(profile)

	requireOK(t, v.PreSet(ipgMK, sw, metadata.IngressPriorityGroupAttrBufferProfile, types.OIDValue(profile)))
	requireOK(t, v.PostSet(ipgMK, metadata.IngressPriorityGroupAttrBufferProfile, types.OIDValue(profile)))
	after := v.DB.RefCount(profile)

	require.Equal(t, before, after, "ref count must not change across an idempotent set")
}
