package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatPoint_JSON(t *testing.T) {
	t.Run("decodes pairs", func(t *testing.T) {
		var points []HeatPoint
		err := json.Unmarshal([]byte(`[[40.7128,-74.006],[40.73,-73.94]]`), &points)
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, HeatPoint{Lat: 40.7128, Lng: -74.006}, points[0])
		assert.Equal(t, HeatPoint{Lat: 40.73, Lng: -73.94}, points[1])
	})

	t.Run("encodes as pair", func(t *testing.T) {
		data, err := json.Marshal(HeatPoint{Lat: 40.5, Lng: -73.5})
		require.NoError(t, err)
		assert.JSONEq(t, `[40.5,-73.5]`, string(data))
	})

	t.Run("rejects short pair", func(t *testing.T) {
		var points []HeatPoint
		err := json.Unmarshal([]byte(`[[40.7]]`), &points)
		assert.Error(t, err)
	})

	t.Run("rejects object", func(t *testing.T) {
		var p HeatPoint
		err := json.Unmarshal([]byte(`{"lat":1,"lng":2}`), &p)
		assert.Error(t, err)
	})
}
