package db

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiglabs/sai-core/pkg/sai/types"
)

func newTestSwitch(t *testing.T) (*Database, types.OID) {
	t.Helper()
	d := NewDatabase()
	sw := types.NewOID(0, types.ObjectTypeSwitch, 1)
	require.NoError(t, d.CreateSwitch(sw))
	return d, sw
}

func TestCreateSwitch_SeedsSwitchObject(t *testing.T) {
	d, sw := newTestSwitch(t)
	require.True(t, d.SwitchExists(sw))
	require.True(t, d.Exists(types.MetaKeyForOID(types.ObjectTypeSwitch, sw)), "switch object itself must exist in its own object hash")
}

func TestCreateSwitch_RejectsDuplicateIndex(t *testing.T) {
	d, sw := newTestSwitch(t)
	other := types.NewOID(types.SwitchIndexOf(sw), types.ObjectTypeSwitch, 2)
	require.Error(t, d.CreateSwitch(other))
}

func TestPortCRUD(t *testing.T) {
	d, sw := newTestSwitch(t)
	port := types.NewOID(types.SwitchIndexOf(sw), types.ObjectTypePort, 1)
	mk := types.MetaKeyForOID(types.ObjectTypePort, port)

	require.False(t, d.Exists(mk), "port should not exist before Create")
	require.NoError(t, d.Create(mk))
	require.True(t, d.Exists(mk))
	require.Error(t, d.Create(mk), "duplicate Create must fail")

	require.NoError(t, d.Set(mk, "SAI_PORT_ATTR_ADMIN_STATE", types.Bool(true)))
	v, ok := d.GetPrev(mk, "SAI_PORT_ATTR_ADMIN_STATE")
	require.True(t, ok)
	require.Equal(t, types.Bool(true), v)

	require.NoError(t, d.Remove(mk))
	require.False(t, d.Exists(mk))
	require.Error(t, d.Remove(mk), "removing an absent object must fail")
}

func TestRefCounting(t *testing.T) {
	d, sw := newTestSwitch(t)
	port := types.NewOID(types.SwitchIndexOf(sw), types.ObjectTypePort, 1)

	require.False(t, d.RefExists(port))
	require.NoError(t, d.RefInsert(port))
	require.Error(t, d.RefInsert(port), "duplicate RefInsert must fail")
	require.EqualValues(t, 0, d.RefCount(port))

	d.RefInc(port)
	d.RefInc(port)
	require.EqualValues(t, 2, d.RefCount(port))

	require.Error(t, d.RefRemove(port), "RefRemove must fail while the count is non-zero")

	d.RefDec(port)
	d.RefDec(port)
	require.EqualValues(t, 0, d.RefCount(port))
	require.NoError(t, d.RefRemove(port))
	require.False(t, d.RefExists(port))
}

func TestRefCounting_NullOIDIsNoOp(t *testing.T) {
	d, _ := newTestSwitch(t)
	d.RefInc(types.NullOID)
	d.RefDec(types.NullOID)
	require.False(t, d.RefExists(types.NullOID), "NULL OID must never be tracked")
	require.EqualValues(t, 0, d.RefCount(types.NullOID))
}

func TestRemoveSwitch_DropsObjectsAndRefCounts(t *testing.T) {
	d, sw := newTestSwitch(t)
	port := types.NewOID(types.SwitchIndexOf(sw), types.ObjectTypePort, 1)
	mk := types.MetaKeyForOID(types.ObjectTypePort, port)
	require.NoError(t, d.Create(mk))
	require.NoError(t, d.RefInsert(port))

	d.RemoveSwitch(sw)

	require.False(t, d.SwitchExists(sw))
	require.False(t, d.RefExists(port), "ref-count entries owned by the switch must be dropped with it")
}

func TestKeyIndex_ScopedPerSwitchAndObjectType(t *testing.T) {
	d, sw := newTestSwitch(t)
	vlan := types.NewOID(types.SwitchIndexOf(sw), types.ObjectTypeVlan, 1)
	mk := types.MetaKeyForOID(types.ObjectTypeVlan, vlan)
	require.NoError(t, d.Create(mk))

	const composite = "SAI_VLAN_ATTR_VLAN_ID:100|"
	require.False(t, d.KeyExists(mk, composite))
	require.NoError(t, d.KeyInsert(mk, composite))
	require.True(t, d.KeyExists(mk, composite))
	d.KeyRemove(mk, composite)
	require.False(t, d.KeyExists(mk, composite))
}
