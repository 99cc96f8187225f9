package booking

import (
	"encoding/json"
	"strconv"

	"venuely/models"
)

// NormalizeAddonSelections converts the loosely-structured addon field of a
// booking payload into an ordered list of selections. Clients have sent this
// field as a plain list, as an object wrapping an "addons" list, and as a
// JSON-encoded string; all three shapes are accepted. Entries carrying
// neither a name nor an addon ID are discarded, quantities below one are
// lifted to one, and unrecoverable input yields an empty list. The function
// is pure and never panics.
func NormalizeAddonSelections(raw interface{}) []models.AddonSelection {
	selections := []models.AddonSelection{}

	switch v := raw.(type) {
	case nil:
		return selections
	case string:
		var decoded interface{}
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return selections
		}
		return NormalizeAddonSelections(decoded)
	case []interface{}:
		for _, entry := range v {
			if sel, ok := parseAddonEntry(entry); ok {
				selections = append(selections, sel)
			}
		}
		return selections
	case map[string]interface{}:
		if wrapped, ok := v["addons"]; ok {
			return NormalizeAddonSelections(wrapped)
		}
		if sel, ok := parseAddonEntry(v); ok {
			selections = append(selections, sel)
		}
		return selections
	case []models.AddonSelection:
		for _, sel := range v {
			if sel.Name == "" && sel.AddonID == "" {
				continue
			}
			if sel.Quantity < 1 {
				sel.Quantity = 1
			}
			selections = append(selections, sel)
		}
		return selections
	default:
		return selections
	}
}

// parseAddonEntry extracts one selection from a decoded entry. A bare string
// is treated as an addon name with quantity one.
func parseAddonEntry(entry interface{}) (models.AddonSelection, bool) {
	switch e := entry.(type) {
	case string:
		if e == "" {
			return models.AddonSelection{}, false
		}
		return models.AddonSelection{Name: e, Quantity: 1}, true
	case map[string]interface{}:
		sel := models.AddonSelection{
			Name:     asString(e["name"]),
			Price:    asFloat(e["price"]),
			Quantity: int(asFloat(e["quantity"])),
		}
		if sel.AddonID = asString(e["addonId"]); sel.AddonID == "" {
			sel.AddonID = asString(e["addon_id"])
		}
		// An ID-only entry is fine; the catalog lookup supplies the name.
		if sel.Name == "" && sel.AddonID == "" {
			return models.AddonSelection{}, false
		}
		if sel.Quantity < 1 {
			sel.Quantity = 1
		}
		return sel, true
	default:
		return models.AddonSelection{}, false
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}
