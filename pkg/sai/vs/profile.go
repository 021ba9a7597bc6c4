// Package vs implements the virtual-switch reference driver: a
// software stand-in for an ASIC SDK binding that satisfies
// driver.Driver by seeding a fixed default object topology on
// CreateSwitch and otherwise delegating to the shadow database that
// the generic validator already maintains. It is grounded on
// sonic-sairedis/vslib/src/sai_vs_switch_BCM56850.cpp and
// sai_vs_switch_MLNX2700.cpp, simplified to the attribute surface this
// module's metadata registry actually models.
package vs

import "strings"

// Profile selects which reference ASIC topology a switch is seeded
// with.
type Profile int

const (
	ProfileBCM56850 Profile = iota
	ProfileMLNX2700
)

func (p Profile) String() string {
	if p == ProfileMLNX2700 {
		return "mlnx2700"
	}
	return "bcm56850"
}

// ParseProfile maps a profile name (from config or the SAI_VS_SWITCH_TYPE
// service-table key) onto a Profile, defaulting to BCM56850 for anything
// unrecognized rather than failing switch creation over it.
func ParseProfile(name string) Profile {
	switch {
	case strings.EqualFold(name, "mlnx2700"), strings.Contains(strings.ToUpper(name), "MLNX2700"):
		return ProfileMLNX2700
	default:
		return ProfileBCM56850
	}
}

// topologySpec captures the per-profile constants the original vslib
// hardcodes per switch type.
type topologySpec struct {
	numPorts      int
	queuesPerPort int
	pgPerPort     int
	sgsPerPort    int
}

func topologyFor(p Profile) topologySpec {
	switch p {
	case ProfileMLNX2700:
		return topologySpec{numPorts: 32, queuesPerPort: 16, pgPerPort: 8, sgsPerPort: 16}
	default:
		return topologySpec{numPorts: 32, queuesPerPort: 20, pgPerPort: 8, sgsPerPort: 13}
	}
}
