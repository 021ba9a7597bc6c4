package vs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiglabs/sai-core/pkg/sai/db"
	"github.com/tiglabs/sai-core/pkg/sai/entry"
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
	"github.com/tiglabs/sai-core/pkg/sai/validator"
)

func newTestDriver(t *testing.T, profile Profile) (*entry.Wrapper, *Driver) {
	t.Helper()
	d := db.NewDatabase()
	v := validator.New(d)
	w := entry.New(v, nil)
	drv := New(w, profile)
	w.Driver = drv
	v.Refresh = drv
	return w, drv
}

func requireOK(t *testing.T, err *validator.Error, msgAndArgs ...any) {
	t.Helper()
	require.Nil(t, err, msgAndArgs...)
}

func TestCreateSwitch_BCM56850_SeedsTopology(t *testing.T) {
	w, drv := newTestDriver(t, ProfileBCM56850)

	swID, err := w.CreateSwitch(validator.AttrList{
		metadata.SwitchAttrInitSwitch: types.Bool(true),
	})
	requireOK(t, err)
	require.False(t, swID.IsNull())

	mk := types.MetaKeyForOID(types.ObjectTypeSwitch, swID)
	attrs, gerr := w.GetAttributes(mk, swID, []metadata.AttrID{
		metadata.SwitchAttrPortNumber,
		metadata.SwitchAttrPortList,
		metadata.SwitchAttrDefault1QBridgeID,
		metadata.SwitchAttrDefaultVlanID,
		metadata.SwitchAttrCPUPort,
	})
	requireOK(t, gerr)
	require.Equal(t, types.U32(32), attrs[metadata.SwitchAttrPortNumber])

	portList, ok := attrs[metadata.SwitchAttrPortList].(types.OIDList)
	require.True(t, ok)
	require.Len(t, portList.Items, 32)

	bridge := types.OID(attrs[metadata.SwitchAttrDefault1QBridgeID].(types.OIDValue))
	require.False(t, bridge.IsNull())

	bridgeAttrs, gerr := w.GetAttributes(types.MetaKeyForOID(types.ObjectTypeBridge, bridge), swID,
		[]metadata.AttrID{metadata.BridgeAttrPortList})
	requireOK(t, gerr)
	bports, ok := bridgeAttrs[metadata.BridgeAttrPortList].(types.OIDList)
	require.True(t, ok)
	require.Len(t, bports.Items, 32, "one bridge port per port")

	firstPort := portList.Items[0]
	portAttrs, gerr := w.GetAttributes(types.MetaKeyForOID(types.ObjectTypePort, firstPort), swID,
		[]metadata.AttrID{metadata.PortAttrQueueList, metadata.PortAttrNumberOfQueues})
	requireOK(t, gerr)
	require.Equal(t, types.U32(20), portAttrs[metadata.PortAttrNumberOfQueues])
	queueList, ok := portAttrs[metadata.PortAttrQueueList].(types.OIDList)
	require.True(t, ok)
	require.Len(t, queueList.Items, 20)

	for _, q := range queueList.Items {
		qAttrs, gerr := w.GetAttributes(types.MetaKeyForOID(types.ObjectTypeQueue, q), swID,
			[]metadata.AttrID{metadata.QueueAttrPort})
		requireOK(t, gerr)
		require.Equal(t, types.OIDValue(firstPort), qAttrs[metadata.QueueAttrPort])
	}

	require.NotEqual(t, "", drv.Instance.String())
}

func TestCreateSwitch_MLNX2700_SeedsSmallerQueueCount(t *testing.T) {
	w, _ := newTestDriver(t, ProfileMLNX2700)

	swID, err := w.CreateSwitch(validator.AttrList{
		metadata.SwitchAttrInitSwitch: types.Bool(true),
	})
	requireOK(t, err)

	mk := types.MetaKeyForOID(types.ObjectTypeSwitch, swID)
	attrs, gerr := w.GetAttributes(mk, swID, []metadata.AttrID{metadata.SwitchAttrPortList})
	requireOK(t, gerr)
	portList := attrs[metadata.SwitchAttrPortList].(types.OIDList)

	portAttrs, gerr := w.GetAttributes(types.MetaKeyForOID(types.ObjectTypePort, portList.Items[0]), swID,
		[]metadata.AttrID{metadata.PortAttrNumberOfQueues})
	requireOK(t, gerr)
	require.Equal(t, types.U32(16), portAttrs[metadata.PortAttrNumberOfQueues])
}

func TestSchedulerGroupChildCountRecalculates(t *testing.T) {
	w, drv := newTestDriver(t, ProfileBCM56850)

	swID, err := w.CreateSwitch(validator.AttrList{
		metadata.SwitchAttrInitSwitch: types.Bool(true),
	})
	requireOK(t, err)

	var rootSG types.OID
	for sg, children := range drv.sgChildren {
		if len(children) == 2 {
			rootSG = sg
			break
		}
	}
	require.False(t, rootSG.IsNull(), "expected to find a scheduler group with two children")

	attrs, gerr := w.GetAttributes(types.MetaKeyForOID(types.ObjectTypeSchedulerGroup, rootSG), swID,
		[]metadata.AttrID{metadata.SchedulerGroupAttrChildCount})
	requireOK(t, gerr)
	require.Equal(t, types.U32(2), attrs[metadata.SchedulerGroupAttrChildCount])
}

func TestNotifyFdbEvent_LearnThenAge(t *testing.T) {
	w, drv := newTestDriver(t, ProfileBCM56850)

	swID, err := w.CreateSwitch(validator.AttrList{
		metadata.SwitchAttrInitSwitch: types.Bool(true),
	})
	requireOK(t, err)

	mk := types.MetaKeyForOID(types.ObjectTypeSwitch, swID)
	attrs, gerr := w.GetAttributes(mk, swID, []metadata.AttrID{
		metadata.SwitchAttrDefault1QBridgeID,
	})
	requireOK(t, gerr)
	bridge := types.OID(attrs[metadata.SwitchAttrDefault1QBridgeID].(types.OIDValue))

	bridgeAttrs, gerr := w.GetAttributes(types.MetaKeyForOID(types.ObjectTypeBridge, bridge), swID,
		[]metadata.AttrID{metadata.BridgeAttrPortList})
	requireOK(t, gerr)
	bridgePorts := bridgeAttrs[metadata.BridgeAttrPortList].(types.OIDList)
	require.NotEmpty(t, bridgePorts.Items)

	key := types.FdbEntryKey{
		SwitchID: swID,
		Mac:      types.Mac{0xaa, 0xbb, 0xcc, 0x00, 0x00, 0x01},
		Vlan:     1,
		BridgeID: bridge,
	}

	requireOK(t, drv.NotifyFdbEvent(swID, key, FdbEventLearned, bridgePorts.Items[0]))

	fdbMK := types.MetaKey{ObjectType: types.ObjectTypeFdbEntry, Fdb: key}
	require.True(t, w.V.DB.Exists(fdbMK))

	requireOK(t, drv.NotifyFdbEvent(swID, key, FdbEventAged, bridgePorts.Items[0]))
	require.False(t, w.V.DB.Exists(fdbMK))
}
