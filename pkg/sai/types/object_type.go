package types

// ObjectType enumerates every object family the core knows about. The
// numeric value is embedded in OIDs (NewOID/ObjectTypeOf) so it must
// never be renumbered once assigned.
type ObjectType uint8

const (
	ObjectTypeNull ObjectType = iota
	ObjectTypeSwitch
	ObjectTypePort
	ObjectTypeBridge
	ObjectTypeBridgePort
	ObjectTypeVlan
	ObjectTypeVlanMember
	ObjectTypeVirtualRouter
	ObjectTypeBufferPool
	ObjectTypeBufferProfile
	ObjectTypeQueue
	ObjectTypeSchedulerGroup
	ObjectTypeScheduler
	ObjectTypeQosMap
	ObjectTypeWred
	ObjectTypeAclTable
	ObjectTypeAclEntry
	ObjectTypeMirrorSession
	ObjectTypeTunnelMap
	ObjectTypeTunnel
	ObjectTypeStp
	ObjectTypeHostifTrapGroup
	ObjectTypeIngressPriorityGroup
	// Struct-keyed (NOI) object types follow; they are never encoded
	// into an OID but share the enumeration for registry lookups.
	ObjectTypeFdbEntry
	ObjectTypeNeighborEntry
	ObjectTypeRouteEntry

	objectTypeCount
)

var objectTypeNames = map[ObjectType]string{
	ObjectTypeNull:                 "SAI_OBJECT_TYPE_NULL",
	ObjectTypeSwitch:               "SAI_OBJECT_TYPE_SWITCH",
	ObjectTypePort:                 "SAI_OBJECT_TYPE_PORT",
	ObjectTypeBridge:               "SAI_OBJECT_TYPE_BRIDGE",
	ObjectTypeBridgePort:           "SAI_OBJECT_TYPE_BRIDGE_PORT",
	ObjectTypeVlan:                 "SAI_OBJECT_TYPE_VLAN",
	ObjectTypeVlanMember:           "SAI_OBJECT_TYPE_VLAN_MEMBER",
	ObjectTypeVirtualRouter:        "SAI_OBJECT_TYPE_VIRTUAL_ROUTER",
	ObjectTypeBufferPool:           "SAI_OBJECT_TYPE_BUFFER_POOL",
	ObjectTypeBufferProfile:        "SAI_OBJECT_TYPE_BUFFER_PROFILE",
	ObjectTypeQueue:                "SAI_OBJECT_TYPE_QUEUE",
	ObjectTypeSchedulerGroup:       "SAI_OBJECT_TYPE_SCHEDULER_GROUP",
	ObjectTypeScheduler:            "SAI_OBJECT_TYPE_SCHEDULER",
	ObjectTypeQosMap:               "SAI_OBJECT_TYPE_QOS_MAP",
	ObjectTypeWred:                 "SAI_OBJECT_TYPE_WRED",
	ObjectTypeAclTable:             "SAI_OBJECT_TYPE_ACL_TABLE",
	ObjectTypeAclEntry:             "SAI_OBJECT_TYPE_ACL_ENTRY",
	ObjectTypeMirrorSession:        "SAI_OBJECT_TYPE_MIRROR_SESSION",
	ObjectTypeTunnelMap:            "SAI_OBJECT_TYPE_TUNNEL_MAP",
	ObjectTypeTunnel:               "SAI_OBJECT_TYPE_TUNNEL",
	ObjectTypeStp:                  "SAI_OBJECT_TYPE_STP",
	ObjectTypeHostifTrapGroup:      "SAI_OBJECT_TYPE_HOSTIF_TRAP_GROUP",
	ObjectTypeIngressPriorityGroup: "SAI_OBJECT_TYPE_INGRESS_PRIORITY_GROUP",
	ObjectTypeFdbEntry:             "SAI_OBJECT_TYPE_FDB_ENTRY",
	ObjectTypeNeighborEntry:        "SAI_OBJECT_TYPE_NEIGHBOR_ENTRY",
	ObjectTypeRouteEntry:           "SAI_OBJECT_TYPE_ROUTE_ENTRY",
}

var objectTypeByName = func() map[string]ObjectType {
	m := make(map[string]ObjectType, len(objectTypeNames))
	for t, n := range objectTypeNames {
		m[n] = t
	}
	return m
}()

// String returns the SAI-style symbolic name of the object type.
func (t ObjectType) String() string {
	if n, ok := objectTypeNames[t]; ok {
		return n
	}
	return "SAI_OBJECT_TYPE_UNKNOWN"
}

// ObjectTypeByName looks up an object type by its symbolic name.
func ObjectTypeByName(name string) (ObjectType, bool) {
	t, ok := objectTypeByName[name]
	return t, ok
}

// IsNonObjectID reports whether t is a struct-keyed (NOI) object type.
func IsNonObjectID(t ObjectType) bool {
	switch t {
	case ObjectTypeFdbEntry, ObjectTypeNeighborEntry, ObjectTypeRouteEntry:
		return true
	default:
		return false
	}
}
