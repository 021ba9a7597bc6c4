package codec

import "fmt"

// PrefixLenFromMask converts a contiguous network mask to its prefix
// length. It returns an error if the mask has a 1-bit after a 0-bit
// (§8.2's IPv6-mask boundary case), which is the shape malformed
// route-entry destinations take. parseIPPrefix calls this when a route
// destination arrives as "<addr>/<mask>" rather than "<addr>/<plen>",
// the wire form a raw sai_ip_prefix_t address-plus-mask pair takes
// before it has been reduced to a prefix length.
func PrefixLenFromMask(mask []byte) (int, error) {
	seenZero := false
	bits := 0
	for _, b := range mask {
		for i := 7; i >= 0; i-- {
			bit := (b >> uint(i)) & 1
			if bit == 1 {
				if seenZero {
					return 0, fmt.Errorf("codec: mask has a 1-bit after a 0-bit")
				}
				bits++
			} else {
				seenZero = true
			}
		}
	}
	return bits, nil
}
