package booking_test

import (
	"testing"

	"venuely/models"
	"venuely/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddonSelectionsList(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"addonId": "a1", "name": "DJ", "price": float64(500), "quantity": float64(2)},
		map[string]interface{}{"name": "Balloon Arch"},
	}

	got := booking.NormalizeAddonSelections(raw)
	require.Len(t, got, 2)
	assert.Equal(t, models.AddonSelection{AddonID: "a1", Name: "DJ", Price: 500, Quantity: 2}, got[0])
	assert.Equal(t, 1, got[1].Quantity)
}

func TestNormalizeAddonSelectionsWrappedObject(t *testing.T) {
	raw := map[string]interface{}{
		"addons": []interface{}{
			map[string]interface{}{"name": "Catering", "quantity": float64(3)},
		},
	}

	got := booking.NormalizeAddonSelections(raw)
	require.Len(t, got, 1)
	assert.Equal(t, "Catering", got[0].Name)
	assert.Equal(t, 3, got[0].Quantity)
}

func TestNormalizeAddonSelectionsJSONString(t *testing.T) {
	raw := `[{"name":"DJ","quantity":2},{"name":"Photographer"}]`

	got := booking.NormalizeAddonSelections(raw)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Quantity)
	assert.Equal(t, "Photographer", got[1].Name)
}

func TestNormalizeAddonSelectionsBareNames(t *testing.T) {
	got := booking.NormalizeAddonSelections([]interface{}{"DJ", "", "Catering"})
	require.Len(t, got, 2)
	assert.Equal(t, "DJ", got[0].Name)
	assert.Equal(t, "Catering", got[1].Name)
}

func TestNormalizeAddonSelectionsDropsUnidentifiedEntries(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"price": float64(100), "quantity": float64(2)},
		map[string]interface{}{"name": "DJ"},
	}

	got := booking.NormalizeAddonSelections(raw)
	require.Len(t, got, 1)
	assert.Equal(t, "DJ", got[0].Name)
}

// An addon ID alone identifies the entry; the catalog lookup supplies the
// name later.
func TestNormalizeAddonSelectionsKeepsIDOnlyEntries(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"addonId": "a1", "quantity": float64(2)},
		map[string]interface{}{"addon_id": "a2"},
	}

	got := booking.NormalizeAddonSelections(raw)
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].AddonID)
	assert.Equal(t, 2, got[0].Quantity)
	assert.Equal(t, "a2", got[1].AddonID)
	assert.Equal(t, 1, got[1].Quantity)
}

func TestNormalizeAddonSelectionsLiftsQuantityFloor(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"name": "DJ", "quantity": float64(0)},
		map[string]interface{}{"name": "Catering", "quantity": float64(-3)},
	}

	got := booking.NormalizeAddonSelections(raw)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Quantity)
	assert.Equal(t, 1, got[1].Quantity)
}

func TestNormalizeAddonSelectionsGarbage(t *testing.T) {
	cases := []interface{}{
		nil,
		"not json at all",
		float64(42),
		[]interface{}{float64(1), true},
		map[string]interface{}{"something": "else"},
	}
	for _, raw := range cases {
		got := booking.NormalizeAddonSelections(raw)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}
