// Package driver defines the function-table contract (§4.5/§4.6) the
// entry wrapper layer calls after the generic validator accepts a
// call. A real ASIC SDK binding and the virtual-switch reference
// driver in pkg/sai/vs both satisfy this interface; the entry wrapper
// is written against it and never against a concrete driver type.
package driver

import (
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
	"github.com/tiglabs/sai-core/pkg/sai/validator"
)

// Driver is invoked by the entry wrapper strictly between pre_* and
// post_* (§4.5 step 3): by the time it runs, the call has already
// passed structural validation, so a driver only needs to reject
// resource-exhaustion conditions a real ASIC would hit (queue table
// full, ACL TCAM full, and so on). The virtual-switch driver never
// rejects here; its failures are all caught by pre_*.
type Driver interface {
	// CreateSwitch seeds the default object topology for a newly
	// created switch (§4.6): ports, the default bridge, default VLAN,
	// queues, scheduler-group tree, trap group.
	CreateSwitch(switchID types.OID, attrs validator.AttrList) *validator.Error

	CreateObject(mk types.MetaKey, switchID types.OID, attrs validator.AttrList) *validator.Error
	RemoveObject(mk types.MetaKey) *validator.Error
	SetAttribute(mk types.MetaKey, id metadata.AttrID, val types.Value) *validator.Error

	// RefreshReadOnly (from validator.ReadOnlyRefresher) returns the
	// driver's view of a READ-ONLY attribute that the shadow DB does
	// not already hold verbatim. Most attributes never reach this; the
	// entry wrapper answers those straight from the DB.
	validator.ReadOnlyRefresher
}
