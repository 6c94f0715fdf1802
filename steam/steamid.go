package steam

import "fmt"

// id64Offset is the base of the 64-bit individual-account ID space.
const id64Offset = uint64(76561197960265728)

// ID64 converts a SteamID3 account number to the 64-bit SteamID.
func ID64(id3 uint32) uint64 {
	return id64Offset + uint64(id3)
}

// ID3 converts a 64-bit SteamID back to its SteamID3 account number.
func ID3(id64 uint64) (uint32, error) {
	if id64 < id64Offset {
		return 0, fmt.Errorf("%d is below the SteamID64 range", id64)
	}
	v := id64 - id64Offset
	if v > 0xffffffff {
		return 0, fmt.Errorf("%d is above the SteamID64 individual range", id64)
	}
	return uint32(v), nil
}
