package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteStatusValid(t *testing.T) {
	assert.True(t, StatusUnsold.Valid())
	assert.True(t, StatusBooked.Valid())
	assert.True(t, StatusSold.Valid())
	assert.False(t, SiteStatus("PENDING").Valid())
	assert.False(t, SiteStatus("").Valid())
}

// The patch type is the contract that absent fields stay untouched: a
// field missing from the JSON body must decode to nil, while an
// explicit value decodes to a pointer.
func TestSitePatchDecoding(t *testing.T) {
	t.Run("absent fields are nil", func(t *testing.T) {
		var p SitePatch
		require.NoError(t, json.Unmarshal([]byte(`{"landCostPerSqFt": 4800}`), &p))

		require.NotNil(t, p.LandCostPerSqFt)
		assert.Equal(t, 4800.0, *p.LandCostPerSqFt)
		assert.Nil(t, p.Number)
		assert.Nil(t, p.Status)
		assert.Nil(t, p.Dimensions)
		assert.Nil(t, p.Tags)
	})

	t.Run("explicit zero is still present", func(t *testing.T) {
		var p SitePatch
		require.NoError(t, json.Unmarshal([]byte(`{"profitMarginPercentage": 0}`), &p))

		require.NotNil(t, p.ProfitMarginPercentage)
		assert.Equal(t, 0.0, *p.ProfitMarginPercentage)
	})

	t.Run("empty object is an empty patch", func(t *testing.T) {
		var p SitePatch
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.True(t, p.Empty())
	})

	t.Run("any field makes the patch non-empty", func(t *testing.T) {
		var p SitePatch
		require.NoError(t, json.Unmarshal([]byte(`{"status":"SOLD"}`), &p))
		assert.False(t, p.Empty())
	})
}
