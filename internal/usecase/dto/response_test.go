package dto

import (
	"encoding/json"
	"testing"

	"github.com/geocoding-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceResult(t *testing.T) {
	t.Run("promotes name and country", func(t *testing.T) {
		props := domain.Properties{
			"name":        "Berlin",
			"country":     "Germany",
			"countrycode": "DE",
			"osm_id":      float64(240109189),
		}
		f := domain.Feature{
			Geometry:   domain.Geometry{Type: "Point", Coordinates: []float64{13.3888599, 52.5170365}},
			Properties: props,
		}

		res := NewPlaceResult(f)

		require.NotNil(t, res.Name)
		require.NotNil(t, res.Country)
		assert.Equal(t, "Berlin", *res.Name)
		assert.Equal(t, "Germany", *res.Country)
		assert.Equal(t, []float64{13.3888599, 52.5170365}, res.Coordinates)
		assert.Equal(t, props, res.Properties)
		assert.Equal(t, "DE", res.Properties["countrycode"])
	})

	t.Run("missing name and country serialize as null", func(t *testing.T) {
		f := domain.Feature{
			Geometry:   domain.Geometry{Coordinates: []float64{0.5, 0.25}},
			Properties: domain.Properties{"type": "water"},
		}

		body, err := json.Marshal(NewPlaceResult(f))
		require.NoError(t, err)

		assert.JSONEq(t,
			`{"name":null,"country":null,"coordinates":[0.5,0.25],"properties":{"type":"water"}}`,
			string(body),
		)
	})

	t.Run("nil properties become an empty object", func(t *testing.T) {
		res := NewPlaceResult(domain.Feature{Geometry: domain.Geometry{Coordinates: []float64{1, 2}}})

		assert.Nil(t, res.Name)
		assert.NotNil(t, res.Properties)
		assert.Empty(t, res.Properties)
	})
}

func TestNewPlaceResults(t *testing.T) {
	features := []domain.Feature{
		{Properties: domain.Properties{"name": "a"}},
		{Properties: domain.Properties{"name": "b"}},
		{Properties: domain.Properties{}},
	}

	results := NewPlaceResults(features)

	require.Len(t, results, len(features))
	for i := range features {
		assert.Equal(t, features[i].Properties, results[i].Properties)
	}
	assert.Equal(t, "b", *results[1].Name)

	assert.NotNil(t, NewPlaceResults(nil), "empty upstream list renders as []")
}
