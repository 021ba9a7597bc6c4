package vs

import (
	"fmt"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/tiglabs/sai-core/pkg/logging"
	"github.com/tiglabs/sai-core/pkg/sai/entry"
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
	"github.com/tiglabs/sai-core/pkg/sai/validator"
)

// switchTopology remembers the handles CreateSwitch hands out for the
// objects that a switch's own READ-ONLY attributes point back at.
type switchTopology struct {
	cpuPort   types.OID
	vlan      types.OID
	vr        types.OID
	stp       types.OID
	bridge    types.OID
	trapGroup types.OID
	ports     []types.OID
}

// Driver is the virtual-switch reference driver. It is constructed
// against an *entry.Wrapper that it both feeds (CreateSwitch calls
// back into the wrapper's own CreateObject to seed the topology, so
// every seeded object gets the same ref-count bookkeeping a
// client-created one would) and satisfies (it implements
// driver.Driver, so the wrapper's Driver field can point at it).
type Driver struct {
	W        *entry.Wrapper
	Profile  Profile
	Instance uuid.UUID

	log *logging.Logger

	mu          sync.Mutex
	topologies  map[types.OID]*switchTopology
	queuePort   map[types.OID]types.OID
	queueIndex  map[types.OID]uint8
	portQueues  map[types.OID][]types.OID
	sgPort      map[types.OID]types.OID
	sgChildren  map[types.OID][]types.OID
	ipgPort     map[types.OID]types.OID
	bridgePorts map[types.OID][]types.OID // bridge -> bridge ports
	vlanMembers map[types.OID][]types.OID // vlan -> vlan members
}

// New builds a virtual-switch driver for the given profile. The
// instance tag is a per-process identifier attached to every log line
// the driver emits, so multiple saivsd processes sharing a log sink
// (or repeated runs against the same log file) can be told apart.
func New(w *entry.Wrapper, profile Profile) *Driver {
	return &Driver{
		W:           w,
		Profile:     profile,
		Instance:    uuid.New(),
		log:         logging.LoggerForDriver(profile.String()),
		topologies:  make(map[types.OID]*switchTopology),
		queuePort:   make(map[types.OID]types.OID),
		queueIndex:  make(map[types.OID]uint8),
		portQueues:  make(map[types.OID][]types.OID),
		sgPort:      make(map[types.OID]types.OID),
		sgChildren:  make(map[types.OID][]types.OID),
		ipgPort:     make(map[types.OID]types.OID),
		bridgePorts: make(map[types.OID][]types.OID),
		vlanMembers: make(map[types.OID][]types.OID),
	}
}

// CreateObject, RemoveObject and SetAttribute run strictly after the
// generic validator has already accepted the call (§4.5): the virtual
// switch has no hardware resource limits to enforce here, so these are
// pure successes. The shadow database mutation the caller actually
// wants is applied afterwards, by post_create/post_remove/post_set.
func (d *Driver) CreateObject(mk types.MetaKey, switchID types.OID, attrs validator.AttrList) *validator.Error {
	return nil
}

func (d *Driver) RemoveObject(mk types.MetaKey) *validator.Error {
	return nil
}

func (d *Driver) SetAttribute(mk types.MetaKey, id metadata.AttrID, val types.Value) *validator.Error {
	return nil
}

// waitForLinkUp simulates the bounded convergence delay a real ASIC
// SDK would impose between a port's creation and the moment its
// oper-status can be trusted. The virtual switch never actually fails
// to bring a simulated link up, so this always converges on the first
// attempt; it exists so the topology-seeding path exercises the same
// bounded-retry shape a hardware-backed driver needs, rather than
// assuming every driver call completes synchronously.
func (d *Driver) waitForLinkUp(port types.OID) error {
	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	attempts := 0
	err := backoff.Retry(func() error {
		attempts++
		return nil
	}, b)
	if err != nil {
		return fmt.Errorf("port %s did not converge after %d attempts: %w", port, attempts, err)
	}
	return nil
}

// RefreshReadOnly answers the READ-ONLY attributes the generic
// validator cannot compute on its own (§4.4.9): switch-scoped default
// object handles and the port/scheduler-group/queue/IPG associations
// CreateSwitch built. Everything else is a programming error, since
// the entry wrapper only calls this for attributes flagged READ_ONLY
// in the registry.
func (d *Driver) RefreshReadOnly(mk types.MetaKey, switchID types.OID, id metadata.AttrID) (types.Value, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if mk.ObjectType == types.ObjectTypeSwitch {
		top, ok := d.topologies[switchID]
		if !ok {
			return nil, fmt.Errorf("switch %s has no seeded topology", switchID)
		}
		switch id {
		case metadata.SwitchAttrCPUPort:
			return types.OIDValue(top.cpuPort), nil
		case metadata.SwitchAttrDefaultVlanID:
			return types.OIDValue(top.vlan), nil
		case metadata.SwitchAttrDefault1QBridgeID:
			return types.OIDValue(top.bridge), nil
		case metadata.SwitchAttrDefaultVirtualRouter:
			return types.OIDValue(top.vr), nil
		case metadata.SwitchAttrDefaultTrapGroup:
			return types.OIDValue(top.trapGroup), nil
		case metadata.SwitchAttrDefaultStpInstID:
			return types.OIDValue(top.stp), nil
		case metadata.SwitchAttrPortList:
			return types.OIDList{Items: append([]types.OID(nil), top.ports...)}, nil
		case metadata.SwitchAttrPortNumber:
			return types.U32(len(top.ports)), nil
		}
	}

	switch id {
	case metadata.QueueAttrPort:
		if port, ok := d.queuePort[mk.OID]; ok {
			return types.OIDValue(port), nil
		}
	case metadata.QueueAttrIndex:
		if idx, ok := d.queueIndex[mk.OID]; ok {
			return types.U8(idx), nil
		}
	case metadata.PortAttrQueueList:
		return types.OIDList{Items: append([]types.OID(nil), d.portQueues[mk.OID]...)}, nil
	case metadata.PortAttrNumberOfQueues:
		return types.U32(len(d.portQueues[mk.OID])), nil
	case metadata.SchedulerGroupAttrPortID:
		if port, ok := d.sgPort[mk.OID]; ok {
			return types.OIDValue(port), nil
		}
	case metadata.SchedulerGroupAttrChildCount:
		return types.U32(len(d.sgChildren[mk.OID])), nil
	case metadata.IngressPriorityGroupAttrPort:
		if port, ok := d.ipgPort[mk.OID]; ok {
			return types.OIDValue(port), nil
		}
	case metadata.BridgeAttrPortList:
		return types.OIDList{Items: append([]types.OID(nil), d.bridgePorts[mk.OID]...)}, nil
	case metadata.VlanAttrMemberList:
		return types.OIDList{Items: append([]types.OID(nil), d.vlanMembers[mk.OID]...)}, nil
	case metadata.StpAttrVlanList:
		return types.VlanList{}, nil
	}

	return nil, fmt.Errorf("object %s: no recalculation rule for %s", mk.ObjectType, id)
}
