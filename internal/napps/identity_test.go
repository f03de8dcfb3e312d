package napps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
	}{
		{"kytos/of_core", true},
		{"alice/ping", true},
		{"a/b", true},
		{"kytos", false},
		{"kytos/", false},
		{"/of_core", false},
		{"/", false},
		{"", false},
		{"kytos/of_core/extra", false},
		{"a//b", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			napp, err := Parse(tt.raw)
			if !tt.valid {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidNApp))
				var invalid *InvalidNAppError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.raw, invalid.Raw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, napp.String())
		})
	}
}

func TestParseFields(t *testing.T) {
	napp, err := Parse("kytos/of_core")
	require.NoError(t, err)
	assert.Equal(t, NApp{Author: "kytos", Name: "of_core"}, napp)
}

func TestInvalidNAppMessage(t *testing.T) {
	_, err := Parse("kytos")
	require.Error(t, err)
	assert.Equal(t, `"kytos" is not a valid NApp name. A NApp is of the form author/napp_name.`, err.Error())
}

func TestParseOptional(t *testing.T) {
	napp, err := ParseOptional(nil)
	assert.NoError(t, err)
	assert.Nil(t, napp)

	raw := "kytos/of_lldp"
	napp, err = ParseOptional(&raw)
	require.NoError(t, err)
	assert.Equal(t, "of_lldp", napp.Name)

	bad := "nope"
	_, err = ParseOptional(&bad)
	assert.ErrorIs(t, err, ErrInvalidNApp)
}

func TestParseAllStopsAtFirstInvalid(t *testing.T) {
	list, err := ParseAll([]string{"a/b", "c/d"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = ParseAll([]string{"a/b", "bad", "also/bad/"})
	var invalid *InvalidNAppError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "bad", invalid.Raw)
}
