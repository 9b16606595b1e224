package domain

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperties_String(t *testing.T) {
	props := Properties{
		"name":     "Berlin",
		"osm_id":   float64(62422),
		"country":  nil,
		"extent":   []any{13.08, 52.67},
		"osm_type": "R",
	}

	name := props.String("name")
	require.NotNil(t, name)
	assert.Equal(t, "Berlin", *name)

	assert.Nil(t, props.String("osm_id"), "non-string value")
	assert.Nil(t, props.String("country"), "explicit null")
	assert.Nil(t, props.String("state"), "absent key")
	assert.Nil(t, Properties(nil).String("name"))
}

func TestUpstreamStatusError(t *testing.T) {
	err := &UpstreamStatusError{StatusCode: http.StatusBadGateway}
	assert.Equal(t, "upstream returned status 502", err.Error())

	err = &UpstreamStatusError{StatusCode: http.StatusBadRequest, Body: `{"message":"missing q"}`}
	assert.Equal(t, `upstream returned status 400: {"message":"missing q"}`, err.Error())
}
