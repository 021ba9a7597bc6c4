// Package hooks implements the extra domain constraints §4.5 layers on
// top of the generic pre_create/pre_set pipeline for a handful of
// object types whose validity rules go beyond what the metadata
// registry can express declaratively: scheduler weight bounds, WRED
// threshold coupling, and tunnel map non-emptiness. The entry wrapper
// calls the create and set hooks before the generic pre_* check;
// CheckQueueIndex is called by the virtual-switch driver.
//
// Every function here is grounded on one of sonic-sairedis's
// meta/sai_extra_*.cpp files; the coupling logic follows the same
// shape, translated from an out-parameter C style into validator
// errors.
package hooks

import (
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
	"github.com/tiglabs/sai-core/pkg/sai/validator"
)

const maxBufferSize = 0x10000

// PreCreateScheduler bounds SCHEDULING_WEIGHT to [1,100], mirroring
// sai_extra_scheduler.cpp's meta_pre_create_scheduler_profile.
func PreCreateScheduler(attrs validator.AttrList) *validator.Error {
	return checkSchedulingWeight(attrs[metadata.SchedulerAttrSchedulingWeight])
}

// PreSetScheduler applies the same bound to a SET of SCHEDULING_WEIGHT.
func PreSetScheduler(id metadata.AttrID, val types.Value) *validator.Error {
	if id != metadata.SchedulerAttrSchedulingWeight {
		return nil
	}
	return checkSchedulingWeight(val)
}

func checkSchedulingWeight(val types.Value) *validator.Error {
	if val == nil {
		return nil
	}
	w, ok := val.(types.U8)
	if !ok {
		return nil
	}
	if w < 1 || w > 100 {
		return validator.NewError(types.StatusInvalidParameter, "scheduler: scheduling weight %d out of range [1,100]", w)
	}
	return nil
}

// PreCreateWred reproduces sai_extra_wred.cpp's green-threshold
// coupling: when GREEN_ENABLE is true (or defaults to its registered
// default), the min/max threshold attributes become mandatory and
// must each fall inside [1, maxBufferSize] with min < max.
func PreCreateWred(attrs validator.AttrList) *validator.Error {
	enabled := false
	if v, ok := attrs[metadata.WredAttrGreenEnable]; ok {
		if b, ok := v.(types.Bool); ok {
			enabled = bool(b)
		}
	}
	if !enabled {
		return nil
	}

	min, hasMin := attrs[metadata.WredAttrGreenMinThreshold]
	max, hasMax := attrs[metadata.WredAttrGreenMaxThreshold]
	if !hasMin || !hasMax {
		return validator.NewError(types.StatusMandatoryAttributeMissing, "wred: green thresholds are mandatory when green marking is enabled")
	}

	minV, minOK := min.(types.U32)
	maxV, maxOK := max.(types.U32)
	if !minOK || !maxOK {
		return nil
	}
	if minV < 1 || minV > maxBufferSize || maxV < 1 || maxV > maxBufferSize {
		return validator.NewError(types.StatusInvalidParameter, "wred: green thresholds out of range [1,%d]", maxBufferSize)
	}
	if minV >= maxV {
		return validator.NewError(types.StatusInvalidParameter, "wred: green min threshold %d must be less than max threshold %d", minV, maxV)
	}
	return nil
}

// PreCreateTunnelMap requires a non-empty entry list when one is
// supplied at create, per the tunnel map list validation gap
// sai_extra_tunnel.cpp's meta_pre_create_tunnel_map leaves as a TODO.
func PreCreateTunnelMap(attrs validator.AttrList) *validator.Error {
	v, ok := attrs[metadata.TunnelMapAttrEntryList]
	if !ok {
		return nil
	}
	list, ok := v.(types.TunnelMapList)
	if !ok {
		return nil
	}
	if len(list.Items) == 0 {
		return validator.NewError(types.StatusInvalidParameter, "tunnel map: entry list must not be empty when supplied")
	}
	return nil
}

// CheckQueueIndex bounds a driver-synthesized queue's index to 16, the
// same bound sai_extra_queue.cpp's meta_pre_create_queue applies (its
// own comment admits the real bound should come from the switch
// profile). The virtual-switch driver calls this while seeding
// MLNX2700 queues; BCM56850 profiles 20 queues per port and so cannot
// satisfy it, which is the original bound's own acknowledged gap, not
// a regression introduced here.
func CheckQueueIndex(index uint8) *validator.Error {
	if index > 16 {
		return validator.NewError(types.StatusInvalidParameter, "queue: index %d exceeds maximum of 16", index)
	}
	return nil
}
