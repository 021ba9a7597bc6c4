package metadata

import "github.com/tiglabs/sai-core/pkg/sai/types"

// Attribute id constants. The string itself is the AttrHash key per
// §3.3, so these are exported for callers to reference symbolically
// instead of retyping the SAI-style name.
const (
	SwitchAttrInitSwitch            AttrID = "SAI_SWITCH_ATTR_INIT_SWITCH"
	SwitchAttrSrcMacAddress         AttrID = "SAI_SWITCH_ATTR_SRC_MAC_ADDRESS"
	SwitchAttrCPUPort               AttrID = "SAI_SWITCH_ATTR_CPU_PORT"
	SwitchAttrDefaultVlanID         AttrID = "SAI_SWITCH_ATTR_DEFAULT_VLAN_ID"
	SwitchAttrDefault1QBridgeID     AttrID = "SAI_SWITCH_ATTR_DEFAULT_1Q_BRIDGE_ID"
	SwitchAttrPortList              AttrID = "SAI_SWITCH_ATTR_PORT_LIST"
	SwitchAttrPortNumber            AttrID = "SAI_SWITCH_ATTR_PORT_NUMBER"
	SwitchAttrDefaultVirtualRouter  AttrID = "SAI_SWITCH_ATTR_DEFAULT_VIRTUAL_ROUTER_ID"
	SwitchAttrDefaultTrapGroup      AttrID = "SAI_SWITCH_ATTR_DEFAULT_TRAP_GROUP"
	SwitchAttrDefaultStpInstID      AttrID = "SAI_SWITCH_ATTR_DEFAULT_STP_INST_ID"

	PortAttrAdminState     AttrID = "SAI_PORT_ATTR_ADMIN_STATE"
	PortAttrSpeed          AttrID = "SAI_PORT_ATTR_SPEED"
	PortAttrMtu            AttrID = "SAI_PORT_ATTR_MTU"
	PortAttrHwLaneList     AttrID = "SAI_PORT_ATTR_HW_LANE_LIST"
	PortAttrPortVlanID     AttrID = "SAI_PORT_ATTR_PORT_VLAN_ID"
	PortAttrQueueList      AttrID = "SAI_PORT_ATTR_QOS_QUEUE_LIST"
	PortAttrNumberOfQueues AttrID = "SAI_PORT_ATTR_QOS_NUMBER_OF_QUEUES"

	BridgeAttrType     AttrID = "SAI_BRIDGE_ATTR_TYPE"
	BridgeAttrPortList AttrID = "SAI_BRIDGE_ATTR_PORT_LIST"

	BridgePortAttrType       AttrID = "SAI_BRIDGE_PORT_ATTR_TYPE"
	BridgePortAttrPortID     AttrID = "SAI_BRIDGE_PORT_ATTR_PORT_ID"
	BridgePortAttrBridgeID   AttrID = "SAI_BRIDGE_PORT_ATTR_BRIDGE_ID"
	BridgePortAttrVlanID     AttrID = "SAI_BRIDGE_PORT_ATTR_VLAN_ID"
	BridgePortAttrAdminState AttrID = "SAI_BRIDGE_PORT_ATTR_ADMIN_STATE"

	VlanAttrVlanID     AttrID = "SAI_VLAN_ATTR_VLAN_ID"
	VlanAttrMemberList AttrID = "SAI_VLAN_ATTR_MEMBER_LIST"

	VlanMemberAttrVlanID        AttrID = "SAI_VLAN_MEMBER_ATTR_VLAN_ID"
	VlanMemberAttrBridgePortID  AttrID = "SAI_VLAN_MEMBER_ATTR_BRIDGE_PORT_ID"
	VlanMemberAttrTaggingMode   AttrID = "SAI_VLAN_MEMBER_ATTR_VLAN_TAGGING_MODE"

	VirtualRouterAttrAdminV4State AttrID = "SAI_VIRTUAL_ROUTER_ATTR_ADMIN_V4_STATE"
	VirtualRouterAttrAdminV6State AttrID = "SAI_VIRTUAL_ROUTER_ATTR_ADMIN_V6_STATE"
	VirtualRouterAttrSrcMac       AttrID = "SAI_VIRTUAL_ROUTER_ATTR_SRC_MAC_ADDRESS"

	BufferPoolAttrType          AttrID = "SAI_BUFFER_POOL_ATTR_TYPE"
	BufferPoolAttrSize          AttrID = "SAI_BUFFER_POOL_ATTR_SIZE"
	BufferPoolAttrThresholdMode AttrID = "SAI_BUFFER_POOL_ATTR_THRESHOLD_MODE"

	BufferProfileAttrPoolID         AttrID = "SAI_BUFFER_PROFILE_ATTR_POOL_ID"
	BufferProfileAttrReservedSize   AttrID = "SAI_BUFFER_PROFILE_ATTR_RESERVED_BUFFER_SIZE"
	BufferProfileAttrSharedDynamic  AttrID = "SAI_BUFFER_PROFILE_ATTR_SHARED_DYNAMIC_TH"
	BufferProfileAttrSharedStatic   AttrID = "SAI_BUFFER_PROFILE_ATTR_SHARED_STATIC_TH"

	QueueAttrIndex AttrID = "SAI_QUEUE_ATTR_INDEX"
	QueueAttrPort  AttrID = "SAI_QUEUE_ATTR_PORT"

	SchedulerGroupAttrPortID            AttrID = "SAI_SCHEDULER_GROUP_ATTR_PORT_ID"
	SchedulerGroupAttrParentNode        AttrID = "SAI_SCHEDULER_GROUP_ATTR_PARENT_NODE"
	SchedulerGroupAttrSchedulerProfile  AttrID = "SAI_SCHEDULER_GROUP_ATTR_SCHEDULER_PROFILE_ID"
	SchedulerGroupAttrChildCount        AttrID = "SAI_SCHEDULER_GROUP_ATTR_CHILD_COUNT"

	SchedulerAttrSchedulingType   AttrID = "SAI_SCHEDULER_ATTR_SCHEDULING_TYPE"
	SchedulerAttrSchedulingWeight AttrID = "SAI_SCHEDULER_ATTR_SCHEDULING_WEIGHT"

	QosMapAttrType            AttrID = "SAI_QOS_MAP_ATTR_TYPE"
	QosMapAttrMapToValueList  AttrID = "SAI_QOS_MAP_ATTR_MAP_TO_VALUE_LIST"

	WredAttrGreenEnable       AttrID = "SAI_WRED_ATTR_GREEN_ENABLE"
	WredAttrGreenMinThreshold AttrID = "SAI_WRED_ATTR_GREEN_MIN_THRESHOLD"
	WredAttrGreenMaxThreshold AttrID = "SAI_WRED_ATTR_GREEN_MAX_THRESHOLD"

	AclTableAttrAclStage           AttrID = "SAI_ACL_TABLE_ATTR_ACL_STAGE"
	AclTableAttrFieldAclRangeType  AttrID = "SAI_ACL_TABLE_ATTR_FIELD_ACL_RANGE_TYPE"

	AclEntryAttrTableID              AttrID = "SAI_ACL_ENTRY_ATTR_TABLE_ID"
	AclEntryAttrPriority             AttrID = "SAI_ACL_ENTRY_ATTR_PRIORITY"
	AclEntryAttrFieldSrcIP           AttrID = "SAI_ACL_ENTRY_ATTR_FIELD_SRC_IP"
	AclEntryAttrActionPacketAction   AttrID = "SAI_ACL_ENTRY_ATTR_ACTION_PACKET_ACTION"

	MirrorSessionAttrType        AttrID = "SAI_MIRROR_SESSION_ATTR_TYPE"
	MirrorSessionAttrMonitorPort AttrID = "SAI_MIRROR_SESSION_ATTR_MONITOR_PORT"

	TunnelMapAttrType      AttrID = "SAI_TUNNEL_MAP_ATTR_TYPE"
	TunnelMapAttrEntryList AttrID = "SAI_TUNNEL_MAP_ATTR_ENTRY_LIST"

	StpAttrVlanList AttrID = "SAI_STP_ATTR_VLAN_LIST"

	TrapGroupAttrAdminState AttrID = "SAI_HOSTIF_TRAP_GROUP_ATTR_ADMIN_STATE"
	TrapGroupAttrQueue      AttrID = "SAI_HOSTIF_TRAP_GROUP_ATTR_QUEUE"

	IngressPriorityGroupAttrPort          AttrID = "SAI_INGRESS_PRIORITY_GROUP_ATTR_PORT"
	IngressPriorityGroupAttrBufferProfile AttrID = "SAI_INGRESS_PRIORITY_GROUP_ATTR_BUFFER_PROFILE"

	FdbEntryAttrType           AttrID = "SAI_FDB_ENTRY_ATTR_TYPE"
	FdbEntryAttrBridgePortID   AttrID = "SAI_FDB_ENTRY_ATTR_BRIDGE_PORT_ID"
	FdbEntryAttrPacketAction   AttrID = "SAI_FDB_ENTRY_ATTR_PACKET_ACTION"

	NeighborEntryAttrDstMac       AttrID = "SAI_NEIGHBOR_ENTRY_ATTR_DST_MAC_ADDRESS"
	NeighborEntryAttrPacketAction AttrID = "SAI_NEIGHBOR_ENTRY_ATTR_PACKET_ACTION"

	RouteEntryAttrNextHopID     AttrID = "SAI_ROUTE_ENTRY_ATTR_NEXT_HOP_ID"
	RouteEntryAttrPacketAction  AttrID = "SAI_ROUTE_ENTRY_ATTR_PACKET_ACTION"
)

func attr(id AttrID, vt types.ValueType, flags AttrFlag) *AttrMeta {
	return &AttrMeta{ID: id, ValueType: vt, Flags: flags}
}

func buildRegistry() *Registry {
	r := &Registry{objects: make(map[types.ObjectType]*ObjectMeta)}

	add := func(t types.ObjectType, isNOI bool, attrs []*AttrMeta, members []StructMember) {
		r.objects[t] = newObjectMeta(t, isNOI, attrs, members)
	}

	add(types.ObjectTypeSwitch, false, []*AttrMeta{
		attr(SwitchAttrInitSwitch, types.ValueTypeBool, FlagCreateOnly|FlagMandatoryOnCreate),
		{ID: SwitchAttrSrcMacAddress, ValueType: types.ValueTypeMac, Flags: FlagCreateAndSet,
			DefaultKind: DefaultSwitchInternal},
		attr(SwitchAttrCPUPort, types.ValueTypeOID, FlagReadOnly),
		attr(SwitchAttrDefaultVlanID, types.ValueTypeOID, FlagReadOnly),
		attr(SwitchAttrDefault1QBridgeID, types.ValueTypeOID, FlagReadOnly),
		attr(SwitchAttrPortList, types.ValueTypeOIDList, FlagReadOnly),
		attr(SwitchAttrPortNumber, types.ValueTypeU32, FlagReadOnly),
		attr(SwitchAttrDefaultVirtualRouter, types.ValueTypeOID, FlagReadOnly),
		attr(SwitchAttrDefaultTrapGroup, types.ValueTypeOID, FlagReadOnly),
		attr(SwitchAttrDefaultStpInstID, types.ValueTypeOID, FlagReadOnly),
	}, nil)

	add(types.ObjectTypePort, false, []*AttrMeta{
		{ID: PortAttrAdminState, ValueType: types.ValueTypeBool, Flags: FlagCreateAndSet,
			DefaultKind: DefaultConst, Default: types.Bool(true)},
		{ID: PortAttrSpeed, ValueType: types.ValueTypeU32, Flags: FlagCreateAndSet,
			DefaultKind: DefaultConst, Default: types.U32(10000)},
		{ID: PortAttrMtu, ValueType: types.ValueTypeU32, Flags: FlagCreateAndSet,
			DefaultKind: DefaultConst, Default: types.U32(1514)},
		attr(PortAttrHwLaneList, types.ValueTypeU32List, FlagCreateOnly|FlagMandatoryOnCreate),
		{ID: PortAttrPortVlanID, ValueType: types.ValueTypeU16, Flags: FlagCreateAndSet,
			DefaultKind: DefaultConst, Default: types.U16(1)},
		attr(PortAttrQueueList, types.ValueTypeOIDList, FlagReadOnly),
		attr(PortAttrNumberOfQueues, types.ValueTypeU32, FlagReadOnly),
	}, nil)

	add(types.ObjectTypeBridge, false, []*AttrMeta{
		{ID: BridgeAttrType, ValueType: types.ValueTypeS32, Flags: FlagCreateOnly | FlagMandatoryOnCreate,
			IsEnum: true, Enum: bridgeTypeEnum},
		attr(BridgeAttrPortList, types.ValueTypeOIDList, FlagReadOnly),
	}, nil)

	add(types.ObjectTypeBridgePort, false, []*AttrMeta{
		{ID: BridgePortAttrType, ValueType: types.ValueTypeS32, Flags: FlagCreateOnly | FlagMandatoryOnCreate,
			IsEnum: true, Enum: bridgePortTypeEnum},
		{ID: BridgePortAttrPortID, ValueType: types.ValueTypeOID, Flags: FlagCreateOnly | FlagMandatoryOnCreate,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypePort}},
		{ID: BridgePortAttrBridgeID, ValueType: types.ValueTypeOID, Flags: FlagCreateOnly | FlagMandatoryOnCreate,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypeBridge}},
		{ID: BridgePortAttrVlanID, ValueType: types.ValueTypeU16, Flags: FlagCreateAndSet,
			Conditions: []Condition{{AttrID: BridgePortAttrType, Value: BridgePortTypeSubPort}}},
		{ID: BridgePortAttrAdminState, ValueType: types.ValueTypeBool, Flags: FlagCreateAndSet,
			DefaultKind: DefaultConst, Default: types.Bool(true)},
	}, nil)

	add(types.ObjectTypeVlan, false, []*AttrMeta{
		attr(VlanAttrVlanID, types.ValueTypeU16, FlagCreateOnly|FlagMandatoryOnCreate|FlagKey),
		attr(VlanAttrMemberList, types.ValueTypeOIDList, FlagReadOnly),
	}, nil)

	add(types.ObjectTypeVlanMember, false, []*AttrMeta{
		{ID: VlanMemberAttrVlanID, ValueType: types.ValueTypeOID, Flags: FlagCreateOnly | FlagMandatoryOnCreate,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypeVlan}},
		{ID: VlanMemberAttrBridgePortID, ValueType: types.ValueTypeOID, Flags: FlagCreateOnly | FlagMandatoryOnCreate,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypeBridgePort}},
		{ID: VlanMemberAttrTaggingMode, ValueType: types.ValueTypeS32, Flags: FlagCreateAndSet,
			IsEnum: true, Enum: vlanTaggingModeEnum, DefaultKind: DefaultConst,
			Default: types.S32(VlanTaggingModeUntagged)},
	}, nil)

	add(types.ObjectTypeVirtualRouter, false, []*AttrMeta{
		{ID: VirtualRouterAttrAdminV4State, ValueType: types.ValueTypeBool, Flags: FlagCreateAndSet,
			DefaultKind: DefaultConst, Default: types.Bool(true)},
		{ID: VirtualRouterAttrAdminV6State, ValueType: types.ValueTypeBool, Flags: FlagCreateAndSet,
			DefaultKind: DefaultConst, Default: types.Bool(true)},
		{ID: VirtualRouterAttrSrcMac, ValueType: types.ValueTypeMac, Flags: FlagCreateAndSet,
			DefaultKind: DefaultSwitchInternal},
	}, nil)

	add(types.ObjectTypeBufferPool, false, []*AttrMeta{
		{ID: BufferPoolAttrType, ValueType: types.ValueTypeS32, Flags: FlagCreateOnly | FlagMandatoryOnCreate,
			IsEnum: true, Enum: bufferPoolTypeEnum},
		attr(BufferPoolAttrSize, types.ValueTypeU32, FlagCreateAndSet|FlagMandatoryOnCreate),
		{ID: BufferPoolAttrThresholdMode, ValueType: types.ValueTypeS32, Flags: FlagCreateOnly,
			IsEnum: true, Enum: thresholdModeEnum, DefaultKind: DefaultConst,
			Default: types.S32(ThresholdModeDynamic)},
	}, nil)

	add(types.ObjectTypeBufferProfile, false, []*AttrMeta{
		{ID: BufferProfileAttrPoolID, ValueType: types.ValueTypeOID, Flags: FlagCreateAndSet,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypeBufferPool}},
		attr(BufferProfileAttrReservedSize, types.ValueTypeU32, FlagCreateAndSet|FlagMandatoryOnCreate),
		attr(BufferProfileAttrSharedDynamic, types.ValueTypeS32, FlagCreateAndSet),
		attr(BufferProfileAttrSharedStatic, types.ValueTypeU32, FlagCreateAndSet),
	}, nil)

	add(types.ObjectTypeQueue, false, []*AttrMeta{
		attr(QueueAttrIndex, types.ValueTypeU8, FlagReadOnly),
		{ID: QueueAttrPort, ValueType: types.ValueTypeOID, Flags: FlagReadOnly,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypePort}},
	}, nil)

	add(types.ObjectTypeSchedulerGroup, false, []*AttrMeta{
		{ID: SchedulerGroupAttrPortID, ValueType: types.ValueTypeOID, Flags: FlagReadOnly,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypePort}},
		{ID: SchedulerGroupAttrParentNode, ValueType: types.ValueTypeOID, Flags: FlagCreateAndSet,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypeSchedulerGroup}, AllowNullObjectID: true},
		{ID: SchedulerGroupAttrSchedulerProfile, ValueType: types.ValueTypeOID, Flags: FlagCreateAndSet,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypeScheduler}, AllowNullObjectID: false},
		attr(SchedulerGroupAttrChildCount, types.ValueTypeU32, FlagReadOnly),
	}, nil)

	add(types.ObjectTypeScheduler, false, []*AttrMeta{
		{ID: SchedulerAttrSchedulingType, ValueType: types.ValueTypeS32, Flags: FlagCreateAndSet,
			IsEnum: true, Enum: schedulingTypeEnum, DefaultKind: DefaultConst,
			Default: types.S32(SchedulingTypeStrict)},
		{ID: SchedulerAttrSchedulingWeight, ValueType: types.ValueTypeU8, Flags: FlagCreateAndSet,
			DefaultKind: DefaultConst, Default: types.U8(1)},
	}, nil)

	add(types.ObjectTypeQosMap, false, []*AttrMeta{
		attr(QosMapAttrType, types.ValueTypeU32, FlagCreateOnly|FlagMandatoryOnCreate),
		{ID: QosMapAttrMapToValueList, ValueType: types.ValueTypeQosMapList, Flags: FlagCreateAndSet,
			DefaultKind: DefaultEmptyList},
	}, nil)

	add(types.ObjectTypeWred, false, []*AttrMeta{
		{ID: WredAttrGreenEnable, ValueType: types.ValueTypeBool, Flags: FlagCreateAndSet,
			DefaultKind: DefaultConst, Default: types.Bool(false)},
		attr(WredAttrGreenMinThreshold, types.ValueTypeU32, FlagCreateAndSet),
		attr(WredAttrGreenMaxThreshold, types.ValueTypeU32, FlagCreateAndSet),
	}, nil)

	add(types.ObjectTypeAclTable, false, []*AttrMeta{
		{ID: AclTableAttrAclStage, ValueType: types.ValueTypeS32, Flags: FlagCreateOnly | FlagMandatoryOnCreate,
			IsEnum: true, Enum: aclStageEnum},
		// Flagged mandatory-on-create in metadata; pre_create treats it
		// as optional regardless, per the documented workaround (§4.4.1).
		attr(AclTableAttrFieldAclRangeType, types.ValueTypeS32List, FlagCreateOnly|FlagMandatoryOnCreate),
	}, nil)

	add(types.ObjectTypeAclEntry, false, []*AttrMeta{
		{ID: AclEntryAttrTableID, ValueType: types.ValueTypeOID, Flags: FlagCreateOnly | FlagMandatoryOnCreate,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypeAclTable}},
		attr(AclEntryAttrPriority, types.ValueTypeU32, FlagCreateAndSet|FlagMandatoryOnCreate),
		{ID: AclEntryAttrFieldSrcIP, ValueType: types.ValueTypeAclField, Flags: FlagCreateAndSet,
			AclPrimitiveType: types.ValueTypeIPv4},
		{ID: AclEntryAttrActionPacketAction, ValueType: types.ValueTypeAclAction, Flags: FlagCreateAndSet,
			IsEnum: true, Enum: packetActionEnum, AclPrimitiveType: types.ValueTypeS32},
	}, nil)

	add(types.ObjectTypeMirrorSession, false, []*AttrMeta{
		{ID: MirrorSessionAttrType, ValueType: types.ValueTypeS32, Flags: FlagCreateOnly | FlagMandatoryOnCreate,
			IsEnum: true, Enum: mirrorSessionTypeEnum},
		{ID: MirrorSessionAttrMonitorPort, ValueType: types.ValueTypeOID, Flags: FlagCreateAndSet | FlagMandatoryOnCreate,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypePort}},
	}, nil)

	add(types.ObjectTypeTunnelMap, false, []*AttrMeta{
		attr(TunnelMapAttrType, types.ValueTypeU32, FlagCreateOnly|FlagMandatoryOnCreate),
		{ID: TunnelMapAttrEntryList, ValueType: types.ValueTypeTunnelMapList, Flags: FlagCreateAndSet,
			DefaultKind: DefaultEmptyList},
	}, nil)

	add(types.ObjectTypeStp, false, []*AttrMeta{
		attr(StpAttrVlanList, types.ValueTypeVlanList, FlagReadOnly),
	}, nil)

	add(types.ObjectTypeHostifTrapGroup, false, []*AttrMeta{
		{ID: TrapGroupAttrAdminState, ValueType: types.ValueTypeBool, Flags: FlagCreateAndSet,
			DefaultKind: DefaultConst, Default: types.Bool(true)},
		{ID: TrapGroupAttrQueue, ValueType: types.ValueTypeU32, Flags: FlagCreateAndSet,
			DefaultKind: DefaultConst, Default: types.U32(0)},
	}, nil)

	add(types.ObjectTypeIngressPriorityGroup, false, []*AttrMeta{
		{ID: IngressPriorityGroupAttrPort, ValueType: types.ValueTypeOID, Flags: FlagReadOnly,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypePort}},
		{ID: IngressPriorityGroupAttrBufferProfile, ValueType: types.ValueTypeOID, Flags: FlagCreateAndSet,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypeBufferProfile}, AllowNullObjectID: true},
	}, nil)

	add(types.ObjectTypeFdbEntry, true, []*AttrMeta{
		{ID: FdbEntryAttrType, ValueType: types.ValueTypeS32, Flags: FlagCreateAndSet,
			IsEnum: true, Enum: fdbEntryTypeEnum, DefaultKind: DefaultConst,
			Default: types.S32(FdbEntryTypeDynamic)},
		{ID: FdbEntryAttrBridgePortID, ValueType: types.ValueTypeOID, Flags: FlagCreateAndSet | FlagMandatoryOnCreate,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypeBridgePort}},
		{ID: FdbEntryAttrPacketAction, ValueType: types.ValueTypeS32, Flags: FlagCreateAndSet,
			IsEnum: true, Enum: packetActionEnum, DefaultKind: DefaultConst,
			Default: types.S32(PacketActionForward)},
	}, []StructMember{
		{Name: "SwitchID", ValueType: types.ValueTypeOID, AllowedObjectTypes: []types.ObjectType{types.ObjectTypeSwitch}},
		{Name: "Mac", ValueType: types.ValueTypeMac},
		{Name: "Vlan", ValueType: types.ValueTypeU16},
		// BridgeID is the documented "bv_id" workaround member: the
		// null check on it is skipped (§9), not because it cannot be
		// null but because upstream callers still pass it unset while
		// the bridge-port-derived bv_id path is wired up.
		{Name: "BridgeID", ValueType: types.ValueTypeOID, AllowedObjectTypes: []types.ObjectType{types.ObjectTypeBridge}, AllowNull: true},
	})

	add(types.ObjectTypeNeighborEntry, true, []*AttrMeta{
		attr(NeighborEntryAttrDstMac, types.ValueTypeMac, FlagCreateAndSet|FlagMandatoryOnCreate),
		{ID: NeighborEntryAttrPacketAction, ValueType: types.ValueTypeS32, Flags: FlagCreateAndSet,
			IsEnum: true, Enum: packetActionEnum, DefaultKind: DefaultConst,
			Default: types.S32(PacketActionForward)},
	}, []StructMember{
		{Name: "SwitchID", ValueType: types.ValueTypeOID, AllowedObjectTypes: []types.ObjectType{types.ObjectTypeSwitch}},
		{Name: "RIF", ValueType: types.ValueTypeOID, AllowedObjectTypes: []types.ObjectType{types.ObjectTypeVirtualRouter}},
		{Name: "IP", ValueType: types.ValueTypeIPAddress},
	})

	add(types.ObjectTypeRouteEntry, true, []*AttrMeta{
		{ID: RouteEntryAttrNextHopID, ValueType: types.ValueTypeOID, Flags: FlagCreateAndSet,
			AllowedObjectTypes: []types.ObjectType{types.ObjectTypePort, types.ObjectTypeVirtualRouter},
			AllowNullObjectID:  true},
		{ID: RouteEntryAttrPacketAction, ValueType: types.ValueTypeS32, Flags: FlagCreateAndSet,
			IsEnum: true, Enum: packetActionEnum, DefaultKind: DefaultConst,
			Default: types.S32(PacketActionForward)},
	}, []StructMember{
		{Name: "SwitchID", ValueType: types.ValueTypeOID, AllowedObjectTypes: []types.ObjectType{types.ObjectTypeSwitch}},
		{Name: "VR", ValueType: types.ValueTypeOID, AllowedObjectTypes: []types.ObjectType{types.ObjectTypeVirtualRouter}},
		{Name: "Dest", ValueType: types.ValueTypeIPPrefix},
	})

	return r
}
