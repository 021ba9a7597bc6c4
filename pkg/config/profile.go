package config

import "sort"

// ProfileTable is the in-memory implementation of the service table's
// profile_get_value/profile_get_next_value contract (§6.1). The real
// service implementation (sairedis' ProfileGetValue callback bundle)
// is supplied by the caller of api_initialize; this type is the
// virtual switch's own stand-in, built from the key/value map the
// caller passes to NewProfileTable.
type ProfileTable struct {
	values map[string]string
	keys   []string
}

// NewProfileTable builds a ProfileTable from a flat key/value map. Keys
// are iterated in sorted order by GetNextValue so repeated runs over
// the same table are deterministic.
func NewProfileTable(values map[string]string) *ProfileTable {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &ProfileTable{values: values, keys: keys}
}

// GetValue implements profile_get_value: returns the value for key, or
// ok=false if the profile has no such key.
func (p *ProfileTable) GetValue(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// GetNextValue implements profile_get_next_value. Passing prevKey=""
// resets the iterator to the first key (matching the "value == NULL
// resets the iterator" rule in §6.1, expressed here as "no previous
// key"). It returns ok=false once the table is exhausted.
func (p *ProfileTable) GetNextValue(prevKey string) (key, value string, ok bool) {
	if prevKey == "" {
		if len(p.keys) == 0 {
			return "", "", false
		}
		return p.keys[0], p.values[p.keys[0]], true
	}
	for i, k := range p.keys {
		if k == prevKey && i+1 < len(p.keys) {
			next := p.keys[i+1]
			return next, p.values[next], true
		}
	}
	return "", "", false
}

// Well-known profile keys the virtual switch driver consults during
// api_initialize (§6.4).
const (
	ProfileKeySwitchType    = "SAI_VS_SWITCH_TYPE"
	ProfileKeyBoardCfg      = "SAI_VS_BOARD_CONFIG_FILE"
	ProfileKeyInterfaceList = "SAI_VS_INTERFACE_LOOKUP"
)

// SwitchTypeBCM56850 and SwitchTypeMLNX2700 are the two recognized
// values of ProfileKeySwitchType.
const (
	SwitchTypeBCM56850 = "SAI_VS_SWITCH_TYPE_BCM56850"
	SwitchTypeMLNX2700 = "SAI_VS_SWITCH_TYPE_MLNX2700"
)
