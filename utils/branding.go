// utils/branding.go
package utils

import "strings"

// AssetSet names the static assets served for one deployment host.
type AssetSet struct {
	Name    string
	Favicon string
}

// Host-substring to asset-set routing. Each deployment domain gets its own
// icon set; the first matching entry wins and anything unmatched falls back
// to the default.
var brandingTable = []struct {
	hostSubstring string
	assets        AssetSet
}{
	{"skagit", AssetSet{Name: "skagit", Favicon: "/icons/skagit/favicon.ico"}},
	{"bellingham", AssetSet{Name: "bellingham", Favicon: "/icons/bellingham/favicon.ico"}},
}

var defaultAssets = AssetSet{Name: "bellingham", Favicon: "/icons/bellingham/favicon.ico"}

// BrandingForHost picks the asset set for a request host. Matching is
// case-insensitive substring matching, so "www.skagithappyhours.com:443"
// resolves the same as "skagit".
func BrandingForHost(host string) AssetSet {
	h := strings.ToLower(strings.TrimSpace(host))
	for _, entry := range brandingTable {
		if strings.Contains(h, entry.hostSubstring) {
			return entry.assets
		}
	}
	return defaultAssets
}
