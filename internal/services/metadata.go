package services

import (
	"net/url"
	"strings"

	"github.com/mssola/user_agent"
)

// Device type buckets stored on scan rows. Rows recorded before device
// parsing existed carry NULL, which analytics coalesces to "unknown".
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
)

// ParseUserAgent classifies a raw user-agent string into a device bucket
// and a browser family. Empty or unparseable strings classify as desktop,
// the browser falls back to "unknown".
func ParseUserAgent(rawUA string) (deviceType string, browser string) {
	deviceType = DeviceDesktop
	if isTabletUA(rawUA) {
		deviceType = DeviceTablet
	} else if user_agent.New(rawUA).Mobile() {
		deviceType = DeviceMobile
	}

	name, _ := user_agent.New(rawUA).Browser()
	if name == "" {
		name = "unknown"
	}
	return deviceType, name
}

// isTabletUA catches tablet-class agents that otherwise report as mobile:
// iPads, agents that say "Tablet", and Android builds without the
// phone-only "Mobile" token.
func isTabletUA(rawUA string) bool {
	if strings.Contains(rawUA, "iPad") || strings.Contains(rawUA, "Tablet") {
		return true
	}
	if strings.Contains(rawUA, "Android") && !strings.Contains(rawUA, "Mobile") {
		return true
	}
	return false
}

// DecodeGeoHeaders normalizes the optional edge-provided geolocation
// headers. City values may arrive percent-encoded; a value that fails to
// decode is passed through verbatim rather than dropped.
func DecodeGeoHeaders(country, city string) (*string, *string) {
	var countryPtr, cityPtr *string
	if country != "" {
		countryPtr = &country
	}
	if city != "" {
		if decoded, err := url.PathUnescape(city); err == nil {
			city = decoded
		}
		cityPtr = &city
	}
	return countryPtr, cityPtr
}

// ClientIPFromHeaders resolves the client address from proxy headers,
// preferring the first X-Forwarded-For entry over X-Real-IP. Returns ""
// when neither header is present.
func ClientIPFromHeaders(forwardedFor, realIP string) string {
	if forwardedFor != "" {
		first := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
		if first != "" {
			return first
		}
	}
	return realIP
}

// RedactIP truncates an address for storage: the last octet of a
// dotted-quad becomes "xxx", the last segment of a colon-separated
// address with more than two segments becomes "xxxx", and any other
// shape collapses to "unknown".
func RedactIP(ip string) string {
	if parts := strings.Split(ip, "."); len(parts) == 4 {
		parts[3] = "xxx"
		return strings.Join(parts, ".")
	}
	if parts := strings.Split(ip, ":"); len(parts) > 2 {
		parts[len(parts)-1] = "xxxx"
		return strings.Join(parts, ":")
	}
	return "unknown"
}
