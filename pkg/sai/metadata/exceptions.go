package metadata

import "github.com/tiglabs/sai-core/pkg/sai/types"

// The following three predicates name the documented workarounds §9
// calls out by name; they are not folded into the generic condition
// table because the upstream implementation does not express them that
// way either, and preserving the shape makes the exception visible at
// every call site instead of buried in a data table.

// IsBufferProfileThresholdAttr reports whether id is one of
// BUFFER_PROFILE's two threshold attributes, whose mandatoriness the
// validator computes from the referenced pool's THRESHOLD_MODE instead
// of a static condition table entry (§4.4.1).
func IsBufferProfileThresholdAttr(t types.ObjectType, id AttrID) bool {
	if t != types.ObjectTypeBufferProfile {
		return false
	}
	return id == BufferProfileAttrSharedDynamic || id == BufferProfileAttrSharedStatic
}

// IsAclTableRangeTypeOptionalException reports whether id is
// ACL_TABLE's FIELD_ACL_RANGE_TYPE attribute, which metadata marks
// MANDATORY_ON_CREATE but the validator treats as optional regardless
// (documented workaround, §4.4.1).
func IsAclTableRangeTypeOptionalException(t types.ObjectType, id AttrID) bool {
	return t == types.ObjectTypeAclTable && id == AclTableAttrFieldAclRangeType
}

// IsSchedulerGroupProfileNullException reports whether id is
// SCHEDULER_GROUP's SCHEDULER_PROFILE_ID attribute, which may be set to
// NULL despite metadata not marking it AllowNullObjectID (§9).
func IsSchedulerGroupProfileNullException(t types.ObjectType, id AttrID) bool {
	return t == types.ObjectTypeSchedulerGroup && id == SchedulerGroupAttrSchedulerProfile
}
