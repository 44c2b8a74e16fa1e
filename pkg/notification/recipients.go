package notification

import "strings"

// AddressListSeparator is the delimiter used for stored To/CC/BCC lists.
// Template-configured lists and queued notifications both use it; this is
// part of the template-authoring contract.
const AddressListSeparator = ";"

// SplitAddressList splits a stored semicolon-delimited address list,
// trimming whitespace and dropping blank entries. A nil-safe empty input
// yields an empty slice, never an error.
func SplitAddressList(list string) []string {
	if list == "" {
		return []string{}
	}

	addresses := []string{}
	for _, addr := range strings.Split(list, AddressListSeparator) {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			addresses = append(addresses, trimmed)
		}
	}
	return addresses
}

// MergeAddresses appends extra addresses to base and de-duplicates the
// result case-insensitively, preserving first-seen order. Blank extras
// are dropped.
func MergeAddresses(base []string, extra ...string) []string {
	merged := []string{}
	seen := map[string]bool{}

	for _, addr := range append(append([]string{}, base...), extra...) {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		key := strings.ToLower(addr)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, addr)
	}
	return merged
}

// PrimaryAddress picks the recipient's personal email when present,
// falling back to the work email.
func PrimaryAddress(personalEmail, workEmail string) string {
	if strings.TrimSpace(personalEmail) != "" {
		return strings.TrimSpace(personalEmail)
	}
	return strings.TrimSpace(workEmail)
}
