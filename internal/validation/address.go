package validation

import "komek/internal/domain"

const (
	MsgAddrRegionRequired   = "address region code is required"
	MsgAddrDistrictRequired = "address district code is required"
	MsgAddrLocalityRequired = "address locality code is required"
	MsgAddrStreetTooLong    = "address street must be 100 characters or less"
	MsgAddrHouseTooLong     = "address house must be 20 characters or less"
	MsgAddrFlatTooLong      = "address flat must be 10 characters or less"
	MsgAddrTypeUnknown      = "address type must be REG or FACT"
)

// ValidateAddress checks required reference codes and field length limits.
func ValidateAddress(addr domain.Address) Result {
	if addr.Type != domain.AddressRegistered && addr.Type != domain.AddressFactual {
		return fail(MsgAddrTypeUnknown)
	}
	if addr.RegionCode == "" {
		return fail(MsgAddrRegionRequired)
	}
	if addr.DistrictCode == "" {
		return fail(MsgAddrDistrictRequired)
	}
	if addr.LocalityCode == "" {
		return fail(MsgAddrLocalityRequired)
	}
	if len(addr.Street) > 100 {
		return fail(MsgAddrStreetTooLong)
	}
	if len(addr.House) > 20 {
		return fail(MsgAddrHouseTooLong)
	}
	if len(addr.Flat) > 10 {
		return fail(MsgAddrFlatTooLong)
	}
	return ok()
}
