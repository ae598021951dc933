package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModule(t *testing.T) {
	tests := []struct {
		input   string
		want    Module
		wantErr bool
	}{
		{"growth", ModuleGrowth, false},
		{"broad", ModuleBroad, false},
		{"metals", ModuleMetals, false},
		{"  Metals ", ModuleMetals, false},
		{"GROWTH", ModuleGrowth, false},
		{"", "", true},
		{"bonds", "", true},
		{"gold", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseModule(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownModule)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModules_HomeScreenOrder(t *testing.T) {
	assert.Equal(t, []Module{ModuleGrowth, ModuleBroad, ModuleMetals}, Modules())
}

func TestModule_DisplayName(t *testing.T) {
	assert.Equal(t, "Growth Index Station", ModuleGrowth.DisplayName())
	assert.Equal(t, "Broad Index Station", ModuleBroad.DisplayName())
	assert.Equal(t, "Precious Metals Station", ModuleMetals.DisplayName())

	// Unknown modules fall back to their raw id.
	assert.Equal(t, "custom", Module("custom").DisplayName())
}
