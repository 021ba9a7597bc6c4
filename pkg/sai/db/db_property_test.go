package db

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// TestProperty_RefCountConservation verifies invariant 3 (§4.4.3): any
// sequence of increments followed by the same number of decrements
// leaves the reference count at exactly zero, and RefRemove only ever
// succeeds at that point.
func TestProperty_RefCountConservation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("increments and decrements leave the count conserved", prop.ForAll(
		func(incs int) bool {
			d := NewDatabase()
			sw := types.NewOID(0, types.ObjectTypeSwitch, 1)
			if err := d.CreateSwitch(sw); err != nil {
				return false
			}
			port := types.NewOID(0, types.ObjectTypePort, 1)
			if err := d.RefInsert(port); err != nil {
				return false
			}

			for i := 0; i < incs; i++ {
				d.RefInc(port)
			}
			if d.RefCount(port) != int32(incs) {
				return false
			}
			if incs > 0 {
				if err := d.RefRemove(port); err == nil {
					return false // must refuse removal while referenced
				}
			}
			for i := 0; i < incs; i++ {
				d.RefDec(port)
			}
			if d.RefCount(port) != 0 {
				return false
			}
			return d.RefRemove(port) == nil
		},
		gen.IntRange(0, 200),
	))

	properties.TestingRun(t)
}

// TestProperty_RemovalSafety verifies invariant 3's companion rule: an
// object can never be removed from the shadow database while any other
// object still holds a reference to it, regardless of how many
// unrelated objects are created and removed around it first.
func TestProperty_RemovalSafety(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("a referenced object's ref-count entry resists removal until unreferenced", prop.ForAll(
		func(noise int) bool {
			d := NewDatabase()
			sw := types.NewOID(0, types.ObjectTypeSwitch, 1)
			if err := d.CreateSwitch(sw); err != nil {
				return false
			}

			vr := types.NewOID(0, types.ObjectTypeVirtualRouter, 1)
			if err := d.RefInsert(vr); err != nil {
				return false
			}

			for i := 0; i < noise; i++ {
				tmp := types.NewOID(0, types.ObjectTypePort, uint64(i+1))
				if err := d.RefInsert(tmp); err != nil {
					return false
				}
				d.RefInc(tmp)
				d.RefDec(tmp)
				if err := d.RefRemove(tmp); err != nil {
					return false
				}
			}

			d.RefInc(vr)
			if d.RefRemove(vr) == nil {
				return false // referenced object must never be removable
			}
			d.RefDec(vr)
			return d.RefRemove(vr) == nil
		},
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}

// TestProperty_CompositeKeyUniqueness verifies invariant 6: once a
// composite key is recorded for an object type within a switch, no
// second KeyInsert for the same key string is needed to detect a
// collision — KeyExists must report true for every key actually
// inserted and false for every key that never was, across an
// arbitrary insert/remove sequence.
func TestProperty_CompositeKeyUniqueness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("key index reflects exactly the live insert set", prop.ForAll(
		func(n int) bool {
			d := NewDatabase()
			sw := types.NewOID(0, types.ObjectTypeSwitch, 1)
			if err := d.CreateSwitch(sw); err != nil {
				return false
			}
			vlan := types.NewOID(0, types.ObjectTypeVlan, 1)
			mk := types.MetaKeyForOID(types.ObjectTypeVlan, vlan)
			if err := d.Create(mk); err != nil {
				return false
			}

			live := make(map[string]bool)
			for i := 0; i < n; i++ {
				key := "SAI_VLAN_ATTR_VLAN_ID:" + itoaLocal(i)
				prev := "SAI_VLAN_ATTR_VLAN_ID:" + itoaLocal(i-1)
				if i%3 == 2 && live[prev] {
					d.KeyRemove(mk, prev)
					delete(live, prev)
					continue
				}
				if err := d.KeyInsert(mk, key); err != nil {
					return false
				}
				live[key] = true
			}

			for i := 0; i < n; i++ {
				key := "SAI_VLAN_ATTR_VLAN_ID:" + itoaLocal(i)
				if d.KeyExists(mk, key) != live[key] {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 60),
	))

	properties.TestingRun(t)
}

func itoaLocal(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
