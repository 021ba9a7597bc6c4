package vs

import (
	"github.com/tiglabs/sai-core/pkg/metrics"
	"github.com/tiglabs/sai-core/pkg/sai/hooks"
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
	"github.com/tiglabs/sai-core/pkg/sai/validator"
)

// laneBlock returns the four-lane HW_LANE_LIST a simulated port is
// wired to. The real BCM56850 table in sai_vs_switch_BCM56850.cpp
// assigns a scrambled per-port lane mapping reflecting actual silicon
// layout; a virtual switch has no physical lanes to scramble, so ports
// are assigned consecutive 4-lane blocks instead.
func laneBlock(portIndex int) []uint32 {
	base := uint32(portIndex*4) + 1
	return []uint32{base, base + 1, base + 2, base + 3}
}

// CreateSwitch seeds the default object topology (§4.6): the CPU port,
// default VLAN, default virtual router, default STP instance, default
// 1Q bridge and default trap group, then the port list itself with its
// per-port bridge port, VLAN membership, ingress priority groups,
// queues and scheduler-group tree. Every object is created through the
// owning entry.Wrapper so it goes through the same pre_create/post_create
// pipeline, and therefore the same ref-count bookkeeping, a client
// request for the same object would.
func (d *Driver) CreateSwitch(switchID types.OID, attrs validator.AttrList) *validator.Error {
	spec := topologyFor(d.Profile)
	top := &switchTopology{}

	log := d.log.WithValues("switch", switchID.String(), "instance", d.Instance.String())
	log.Info("seeding virtual switch topology", "profile", d.Profile.String(), "ports", spec.numPorts)

	cpuPort, err := d.W.CreateObject(types.ObjectTypePort, switchID, validator.AttrList{
		metadata.PortAttrHwLaneList: types.U32List{Items: []uint32{0}},
	})
	if err != nil {
		return err
	}
	top.cpuPort = cpuPort

	vlan, err := d.W.CreateObject(types.ObjectTypeVlan, switchID, validator.AttrList{
		metadata.VlanAttrVlanID: types.U16(1),
	})
	if err != nil {
		return err
	}
	top.vlan = vlan

	vr, err := d.W.CreateObject(types.ObjectTypeVirtualRouter, switchID, validator.AttrList{})
	if err != nil {
		return err
	}
	top.vr = vr

	stp, err := d.W.CreateObject(types.ObjectTypeStp, switchID, validator.AttrList{})
	if err != nil {
		return err
	}
	top.stp = stp

	bridge, err := d.W.CreateObject(types.ObjectTypeBridge, switchID, validator.AttrList{
		metadata.BridgeAttrType: types.S32(metadata.BridgeTypeDot1Q),
	})
	if err != nil {
		return err
	}
	top.bridge = bridge

	trapGroup, err := d.W.CreateObject(types.ObjectTypeHostifTrapGroup, switchID, validator.AttrList{})
	if err != nil {
		return err
	}
	top.trapGroup = trapGroup

	for i := 0; i < spec.numPorts; i++ {
		port, err := d.W.CreateObject(types.ObjectTypePort, switchID, validator.AttrList{
			metadata.PortAttrHwLaneList: types.U32List{Items: laneBlock(i)},
		})
		if err != nil {
			return err
		}
		if werr := d.waitForLinkUp(port); werr != nil {
			return validator.NewError(types.StatusFailure, "port %s: %v", port, werr)
		}
		top.ports = append(top.ports, port)

		bport, err := d.W.CreateObject(types.ObjectTypeBridgePort, switchID, validator.AttrList{
			metadata.BridgePortAttrType:     types.S32(metadata.BridgePortTypePort),
			metadata.BridgePortAttrPortID:   types.OIDValue(port),
			metadata.BridgePortAttrBridgeID: types.OIDValue(bridge),
		})
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.bridgePorts[bridge] = append(d.bridgePorts[bridge], bport)
		d.mu.Unlock()

		vmember, err := d.W.CreateObject(types.ObjectTypeVlanMember, switchID, validator.AttrList{
			metadata.VlanMemberAttrVlanID:       types.OIDValue(vlan),
			metadata.VlanMemberAttrBridgePortID: types.OIDValue(bport),
		})
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.vlanMembers[vlan] = append(d.vlanMembers[vlan], vmember)
		d.mu.Unlock()

		for pg := 0; pg < spec.pgPerPort; pg++ {
			ipg, err := d.W.CreateObject(types.ObjectTypeIngressPriorityGroup, switchID, validator.AttrList{})
			if err != nil {
				return err
			}
			d.mu.Lock()
			d.ipgPort[ipg] = port
			d.mu.Unlock()
		}

		queues := make([]types.OID, 0, spec.queuesPerPort)
		for qi := 0; qi < spec.queuesPerPort; qi++ {
			if d.Profile == ProfileMLNX2700 {
				if herr := hooks.CheckQueueIndex(uint8(qi)); herr != nil {
					return herr
				}
			}
			q, err := d.W.CreateObject(types.ObjectTypeQueue, switchID, validator.AttrList{})
			if err != nil {
				return err
			}
			d.mu.Lock()
			d.queuePort[q] = port
			d.queueIndex[q] = uint8(qi)
			d.mu.Unlock()
			queues = append(queues, q)
		}
		d.mu.Lock()
		d.portQueues[port] = queues
		d.mu.Unlock()

		if err := d.buildSchedulerTree(switchID, port, queues, spec); err != nil {
			return err
		}
	}

	d.mu.Lock()
	d.topologies[switchID] = top
	d.mu.Unlock()

	metrics.SetObjectCount(types.ObjectTypePort.String(), len(top.ports))
	log.Info("virtual switch topology ready")
	return nil
}

// buildSchedulerTree reproduces the BCM56850/MLNX2700 scheduler-group
// shape from sai_vs_switch_{BCM56850,MLNX2700}.cpp, simplified to the
// attributes this registry models: PARENT_NODE, PORT_ID and the derived
// CHILD_COUNT, since no SCHEDULER_GROUP_ATTR_CHILD_LIST attribute
// exists here. BCM56850 builds a 3-level, 13-node tree with queues
// paired two-per-leaf across its bottom 10 nodes; MLNX2700 builds a
// 2-level, 16-node tree with queues paired two-per-leaf across nodes
// 8-15 and nodes 1-7 left empty, matching the original's own comment
// that they are otherwise unused on that profile.
func (d *Driver) buildSchedulerTree(switchID, port types.OID, queues []types.OID, spec topologySpec) *validator.Error {
	sgs := make([]types.OID, 0, spec.sgsPerPort)
	for i := 0; i < spec.sgsPerPort; i++ {
		sg, err := d.W.CreateObject(types.ObjectTypeSchedulerGroup, switchID, validator.AttrList{})
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.sgPort[sg] = port
		d.mu.Unlock()
		sgs = append(sgs, sg)
	}

	setParent := func(child, parent types.OID) *validator.Error {
		return d.W.SetAttribute(
			types.MetaKeyForOID(types.ObjectTypeSchedulerGroup, child), switchID,
			metadata.SchedulerGroupAttrParentNode, types.OIDValue(parent),
		)
	}
	addChild := func(parent, child types.OID) {
		d.mu.Lock()
		d.sgChildren[parent] = append(d.sgChildren[parent], child)
		d.mu.Unlock()
	}

	half := len(queues) / 2
	assignQueuePair := func(leaf types.OID, pairIndex int) *validator.Error {
		inQueue, outQueue := queues[pairIndex], queues[pairIndex+half]
		for _, q := range []types.OID{inQueue, outQueue} {
			d.mu.Lock()
			d.sgChildren[leaf] = append(d.sgChildren[leaf], q)
			d.mu.Unlock()
		}
		return nil
	}

	switch d.Profile {
	case ProfileMLNX2700:
		// sg 0 is the port's root, parenting leaves 8..15 directly;
		// 1..7 are created but left unparented and childless, matching
		// the original's own "schedulers are empty" comment.
		for i := 8; i < spec.sgsPerPort; i++ {
			if err := setParent(sgs[i], sgs[0]); err != nil {
				return err
			}
			addChild(sgs[0], sgs[i])
			if err := assignQueuePair(sgs[i], i-8); err != nil {
				return err
			}
		}
	default: // BCM56850
		// sg 0 parents sg 1 and sg 2; sg 1 parents leaves 3..10 (8
		// nodes); sg 2 parents leaves 11..12 (2 nodes); all 10 leaves
		// carry one queue pair each, covering all 20 queues.
		if err := setParent(sgs[1], sgs[0]); err != nil {
			return err
		}
		addChild(sgs[0], sgs[1])
		if err := setParent(sgs[2], sgs[0]); err != nil {
			return err
		}
		addChild(sgs[0], sgs[2])

		leafIdx := 0
		for i := 3; i <= 10; i++ {
			if err := setParent(sgs[i], sgs[1]); err != nil {
				return err
			}
			addChild(sgs[1], sgs[i])
			if err := assignQueuePair(sgs[i], leafIdx); err != nil {
				return err
			}
			leafIdx++
		}
		for i := 11; i <= 12; i++ {
			if err := setParent(sgs[i], sgs[2]); err != nil {
				return err
			}
			addChild(sgs[2], sgs[i])
			if err := assignQueuePair(sgs[i], leafIdx); err != nil {
				return err
			}
			leafIdx++
		}
	}

	return nil
}
