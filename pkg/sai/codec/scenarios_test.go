package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// TestScenario_RouteInvalidV6Mask is scenario 3 in §8.3: a route create
// whose destination arrives as a raw address-plus-mask pair with a
// malformed mask (a 1-bit after a 0-bit) must be rejected at the wire
// boundary, before any MetaKey is ever produced for it. This drives
// the actual route-entry meta-key deserialization path a create
// request takes, not PrefixLenFromMask directly: DeserializeObjectMetaKey
// is the only caller of parseIPPrefix for ObjectTypeRouteEntry, and
// parseIPPrefix falls back to prefixLenFromMaskString (which wraps
// PrefixLenFromMask) whenever the part after "/" isn't a decimal
// prefix length.
func TestScenario_RouteInvalidV6Mask(t *testing.T) {
	wire := `SAI_OBJECT_TYPE_ROUTE_ENTRY:{"switch_id":"oid:0x21000000000000","vr":"oid:0x3000000000001","dest":"ff::/ff:ff:ff:f7::"}`
	_, err := DeserializeObjectMetaKey(types.ObjectTypeRouteEntry, wire)
	require.Error(t, err, "a discontiguous mask must be rejected before any MetaKey is built")
}

// TestScenario_QosMapRoundTrip is scenario 4 in §8.3.
func TestScenario_QosMapRoundTrip(t *testing.T) {
	meta := &metadata.AttrMeta{ID: metadata.QosMapAttrMapToValueList, ValueType: types.ValueTypeQosMapList}

	l := types.QosMapList{Items: []types.QosMapEntry{
		{
			Key:   types.QosMapData{TC: 1, DSCP: 2, Dot1P: 3, Prio: 4, PG: 5, Qidx: 6, Color: types.PacketColorRed},
			Value: types.QosMapData{TC: 1, DSCP: 2, Dot1P: 3, Prio: 4, PG: 5, Qidx: 6, Color: types.PacketColorGreen},
		},
	}}

	s, err := SerializeAttrValue(meta, l, false, false)
	require.NoError(t, err)
	require.JSONEq(t, `{"count":1,"list":[{"key":{"tc":1,"dscp":2,"dot1p":3,"prio":4,"pg":5,"qidx":6,"color":"SAI_PACKET_COLOR_RED"},"value":{"tc":1,"dscp":2,"dot1p":3,"prio":4,"pg":5,"qidx":6,"color":"SAI_PACKET_COLOR_GREEN"}}]}`, s)

	v, err := DeserializeAttrValue(meta, s)
	require.NoError(t, err)
	require.Equal(t, l, v)
}

// TestScenario_AclEntryEnumWithMask is scenario 5 in §8.3.
func TestScenario_AclEntryEnumWithMask(t *testing.T) {
	meta := &metadata.AttrMeta{
		ID: metadata.AclEntryAttrActionPacketAction, ValueType: types.ValueTypeAclField,
		IsEnum: true, Enum: packetActionEnumForTest(), AclPrimitiveType: types.ValueTypeS32,
	}

	field := types.AclField{
		Enabled: true,
		Data:    types.S32(metadata.PacketActionTrap),
		Mask:    types.U32(0x0F),
	}
	s, err := SerializeAttrValue(meta, field, false, false)
	require.NoError(t, err)
	require.Equal(t, "SAI_PACKET_ACTION_TRAP&mask:0xf", s)

	disabled := types.AclField{Enabled: false}
	s, err = SerializeAttrValue(meta, disabled, false, false)
	require.NoError(t, err)
	require.Equal(t, "disabled", s)
}

// packetActionEnumForTest builds the same name table the real registry
// attaches to ACL_ENTRY_ATTR_ACTION_PACKET_ACTION, scoped to this test
// file so it doesn't depend on unexported registry internals.
func packetActionEnumForTest() *metadata.EnumDescriptor {
	return &metadata.EnumDescriptor{Names: map[int32]string{
		metadata.PacketActionTrap: "SAI_PACKET_ACTION_TRAP",
	}}
}
