package hooks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
	"github.com/tiglabs/sai-core/pkg/sai/validator"
)

// Hook functions return *validator.Error rather than the error
// interface, so these tests use require.Nil/require.NotNil rather
// than require.NoError/require.Error to avoid boxing a nil *Error
// pointer into a non-nil interface value.

func TestPreCreateScheduler(t *testing.T) {
	require.Nil(t, PreCreateScheduler(validator.AttrList{
		metadata.SchedulerAttrSchedulingWeight: types.U8(50),
	}))
	require.NotNil(t, PreCreateScheduler(validator.AttrList{
		metadata.SchedulerAttrSchedulingWeight: types.U8(0),
	}), "expected error for weight 0")
	require.NotNil(t, PreCreateScheduler(validator.AttrList{
		metadata.SchedulerAttrSchedulingWeight: types.U8(101),
	}), "expected error for weight 101")
	require.Nil(t, PreCreateScheduler(validator.AttrList{}), "absent weight should pass through to the registered default")
}

func TestPreCreateWred(t *testing.T) {
	require.Nil(t, PreCreateWred(validator.AttrList{
		metadata.WredAttrGreenEnable: types.Bool(false),
	}), "disabled green marking needs no thresholds")

	err := PreCreateWred(validator.AttrList{
		metadata.WredAttrGreenEnable: types.Bool(true),
	})
	require.NotNil(t, err, "expected mandatory-threshold error when green marking is enabled")
	require.Equal(t, types.StatusMandatoryAttributeMissing, err.Status)

	require.NotNil(t, PreCreateWred(validator.AttrList{
		metadata.WredAttrGreenEnable:       types.Bool(true),
		metadata.WredAttrGreenMinThreshold: types.U32(100),
		metadata.WredAttrGreenMaxThreshold: types.U32(50),
	}), "expected error when min >= max")

	require.Nil(t, PreCreateWred(validator.AttrList{
		metadata.WredAttrGreenEnable:       types.Bool(true),
		metadata.WredAttrGreenMinThreshold: types.U32(50),
		metadata.WredAttrGreenMaxThreshold: types.U32(100),
	}))
}

func TestPreCreateTunnelMap(t *testing.T) {
	require.Nil(t, PreCreateTunnelMap(validator.AttrList{}), "absent entry list is fine")
	require.NotNil(t, PreCreateTunnelMap(validator.AttrList{
		metadata.TunnelMapAttrEntryList: types.TunnelMapList{},
	}), "expected error for an explicitly empty entry list")
	require.Nil(t, PreCreateTunnelMap(validator.AttrList{
		metadata.TunnelMapAttrEntryList: types.TunnelMapList{
			Items: []types.TunnelMapEntry{{
				Key:   types.TunnelMapData{VNI: 100},
				Value: types.TunnelMapData{Vlan: 10},
			}},
		},
	}))
}

func TestCheckQueueIndex(t *testing.T) {
	require.Nil(t, CheckQueueIndex(16), "index 16 is the documented boundary")
	require.NotNil(t, CheckQueueIndex(17), "expected error for index 17")
}
