package metadata

// enumDescriptor is a small constructor helper; Go map literals already
// read fine here, but a helper keeps every enum table a one-liner.
func enumDescriptor(names map[int32]string) *EnumDescriptor {
	return &EnumDescriptor{Names: names}
}

const (
	BridgeTypeDot1Q int32 = iota
	BridgeTypeDot1D
)

var bridgeTypeEnum = enumDescriptor(map[int32]string{
	BridgeTypeDot1Q: "SAI_BRIDGE_TYPE_1Q",
	BridgeTypeDot1D: "SAI_BRIDGE_TYPE_1D",
})

const (
	BridgePortTypePort int32 = iota
	BridgePortTypeSubPort
	BridgePortType1QRouter
	BridgePortType1DRouter
	BridgePortTypeTunnel
)

var bridgePortTypeEnum = enumDescriptor(map[int32]string{
	BridgePortTypePort:     "SAI_BRIDGE_PORT_TYPE_PORT",
	BridgePortTypeSubPort:  "SAI_BRIDGE_PORT_TYPE_SUB_PORT",
	BridgePortType1QRouter: "SAI_BRIDGE_PORT_TYPE_1Q_ROUTER",
	BridgePortType1DRouter: "SAI_BRIDGE_PORT_TYPE_1D_ROUTER",
	BridgePortTypeTunnel:   "SAI_BRIDGE_PORT_TYPE_TUNNEL",
})

const (
	VlanTaggingModeUntagged int32 = iota
	VlanTaggingModeTagged
	VlanTaggingModePriorityTagged
)

var vlanTaggingModeEnum = enumDescriptor(map[int32]string{
	VlanTaggingModeUntagged:       "SAI_VLAN_TAGGING_MODE_UNTAGGED",
	VlanTaggingModeTagged:         "SAI_VLAN_TAGGING_MODE_TAGGED",
	VlanTaggingModePriorityTagged: "SAI_VLAN_TAGGING_MODE_PRIORITY_TAGGED",
})

const (
	FdbEntryTypeDynamic int32 = iota
	FdbEntryTypeStatic
)

var fdbEntryTypeEnum = enumDescriptor(map[int32]string{
	FdbEntryTypeDynamic: "SAI_FDB_ENTRY_TYPE_DYNAMIC",
	FdbEntryTypeStatic:  "SAI_FDB_ENTRY_TYPE_STATIC",
})

const (
	PacketActionForward int32 = iota
	PacketActionDrop
	PacketActionTrap
	PacketActionLog
	PacketActionDeny
	PacketActionTransit
)

var packetActionEnum = enumDescriptor(map[int32]string{
	PacketActionForward: "SAI_PACKET_ACTION_FORWARD",
	PacketActionDrop:    "SAI_PACKET_ACTION_DROP",
	PacketActionTrap:    "SAI_PACKET_ACTION_TRAP",
	PacketActionLog:     "SAI_PACKET_ACTION_LOG",
	PacketActionDeny:    "SAI_PACKET_ACTION_DENY",
	PacketActionTransit: "SAI_PACKET_ACTION_TRANSIT",
})

const (
	ThresholdModeDynamic int32 = iota
	ThresholdModeStatic
)

var thresholdModeEnum = enumDescriptor(map[int32]string{
	ThresholdModeDynamic: "SAI_BUFFER_PROFILE_THRESHOLD_MODE_DYNAMIC",
	ThresholdModeStatic:  "SAI_BUFFER_PROFILE_THRESHOLD_MODE_STATIC",
})

const (
	BufferPoolTypeIngress int32 = iota
	BufferPoolTypeEgress
)

var bufferPoolTypeEnum = enumDescriptor(map[int32]string{
	BufferPoolTypeIngress: "SAI_BUFFER_POOL_TYPE_INGRESS",
	BufferPoolTypeEgress:  "SAI_BUFFER_POOL_TYPE_EGRESS",
})

const (
	SchedulingTypeStrict int32 = iota
	SchedulingTypeWrr
	SchedulingTypeDwrr
)

var schedulingTypeEnum = enumDescriptor(map[int32]string{
	SchedulingTypeStrict: "SAI_SCHEDULING_TYPE_STRICT",
	SchedulingTypeWrr:    "SAI_SCHEDULING_TYPE_WRR",
	SchedulingTypeDwrr:   "SAI_SCHEDULING_TYPE_DWRR",
})

const (
	MirrorSessionTypeLocal int32 = iota
	MirrorSessionTypeRemote
	MirrorSessionTypeEnhancedRemote
)

var mirrorSessionTypeEnum = enumDescriptor(map[int32]string{
	MirrorSessionTypeLocal:          "SAI_MIRROR_SESSION_TYPE_LOCAL",
	MirrorSessionTypeRemote:         "SAI_MIRROR_SESSION_TYPE_REMOTE",
	MirrorSessionTypeEnhancedRemote: "SAI_MIRROR_SESSION_TYPE_ENHANCED_REMOTE",
})

const (
	AclStageIngress int32 = iota
	AclStageEgress
)

var aclStageEnum = enumDescriptor(map[int32]string{
	AclStageIngress: "SAI_ACL_STAGE_INGRESS",
	AclStageEgress:  "SAI_ACL_STAGE_EGRESS",
})

const (
	StpPortStateBlocking int32 = iota
	StpPortStateLearning
	StpPortStateForwarding
)

var stpPortStateEnum = enumDescriptor(map[int32]string{
	StpPortStateBlocking:   "SAI_STP_PORT_STATE_BLOCKING",
	StpPortStateLearning:   "SAI_STP_PORT_STATE_LEARNING",
	StpPortStateForwarding: "SAI_STP_PORT_STATE_FORWARDING",
})

const (
	SwitchTypeBCM56850 int32 = iota
	SwitchTypeMLNX2700
)

var switchTypeEnum = enumDescriptor(map[int32]string{
	SwitchTypeBCM56850: "SAI_VS_SWITCH_TYPE_BCM56850",
	SwitchTypeMLNX2700: "SAI_VS_SWITCH_TYPE_MLNX2700",
})
