package vs

import (
	"github.com/tiglabs/sai-core/pkg/metrics"
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
	"github.com/tiglabs/sai-core/pkg/sai/validator"
)

// FdbEvent is the kind of MAC-table change the virtual switch's
// simulated learning path dispatches, mirroring sonic-sairedis's
// sai_fdb_notifications_t callback.
type FdbEvent int

const (
	FdbEventLearned FdbEvent = iota
	FdbEventAged
	FdbEventFlushed
)

func (e FdbEvent) String() string {
	switch e {
	case FdbEventLearned:
		return "learned"
	case FdbEventAged:
		return "aged"
	case FdbEventFlushed:
		return "flushed"
	default:
		return "unknown"
	}
}

// NotifyFdbEvent drives one simulated FDB notification into the shadow
// database through the owning entry.Wrapper. A LEARNED event creates a
// dynamic FDB entry on the bridge port traffic was seen on; AGED and
// FLUSHED both remove an entry that the switch no longer considers
// live. A real ASIC driver pushes these asynchronously off its own
// learning hardware; the virtual switch exposes the same shape as a
// direct call so tests can drive it deterministically.
func (d *Driver) NotifyFdbEvent(switchID types.OID, key types.FdbEntryKey, event FdbEvent, bridgePort types.OID) *validator.Error {
	mk := types.MetaKey{ObjectType: types.ObjectTypeFdbEntry, Fdb: key}

	switch event {
	case FdbEventLearned:
		err := d.W.CreateNOI(mk, switchID, validator.AttrList{
			metadata.FdbEntryAttrType:         types.S32(metadata.FdbEntryTypeDynamic),
			metadata.FdbEntryAttrBridgePortID: types.OIDValue(bridgePort),
		})
		metrics.RecordNotification(metrics.NotificationFdbEvent, event.String())
		return err
	case FdbEventAged, FdbEventFlushed:
		err := d.W.RemoveObject(mk)
		metrics.RecordNotification(metrics.NotificationFdbEvent, event.String())
		return err
	default:
		return validator.NewError(types.StatusNotImplemented, "unknown fdb event %d", event)
	}
}
