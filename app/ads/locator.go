package ads

// adListKeys are the places deployments have been seen to park the ad list.
var adListKeys = []string{"ads", "adList", "items", "records"}

// LocateAds extracts the list of raw ad records from an arbitrarily shaped
// page payload. A list nested under "data" takes priority over a top-level
// list of the same key name; this precedence is fixed. Elements are returned
// as-is, so callers must still skip non-object entries.
func LocateAds(payload any) []any {
	switch p := payload.(type) {
	case map[string]any:
		inner := p
		if data, ok := p["data"].(map[string]any); ok {
			inner = data
		}
		for _, key := range adListKeys {
			if list, ok := inner[key].([]any); ok {
				return list
			}
		}
	case []any:
		return p
	}

	return []any{}
}
