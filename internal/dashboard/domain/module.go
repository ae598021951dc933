package domain

import (
	"errors"
	"strings"
)

// ErrUnknownModule indicates a module id outside the three dashboards.
var ErrUnknownModule = errors.New("unknown module")

// Module identifies one of the three gated dashboards.
type Module string

const (
	// ModuleGrowth is the growth-index dashboard.
	ModuleGrowth Module = "growth"
	// ModuleBroad is the broad-index dashboard.
	ModuleBroad Module = "broad"
	// ModuleMetals is the precious-metals dashboard.
	ModuleMetals Module = "metals"
)

// Modules lists the dashboards in home-screen order.
func Modules() []Module {
	return []Module{ModuleGrowth, ModuleBroad, ModuleMetals}
}

// ParseModule resolves a user-supplied module id.
func ParseModule(s string) (Module, error) {
	switch Module(strings.ToLower(strings.TrimSpace(s))) {
	case ModuleGrowth:
		return ModuleGrowth, nil
	case ModuleBroad:
		return ModuleBroad, nil
	case ModuleMetals:
		return ModuleMetals, nil
	}
	return "", ErrUnknownModule
}

// DisplayName returns the human-readable dashboard name.
func (m Module) DisplayName() string {
	switch m {
	case ModuleGrowth:
		return "Growth Index Station"
	case ModuleBroad:
		return "Broad Index Station"
	case ModuleMetals:
		return "Precious Metals Station"
	}
	return string(m)
}

func (m Module) String() string {
	return string(m)
}

// SponsorLink points at the external sponsoring page for one module.
type SponsorLink struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// SponsorLinks maps module ids to their sponsor pages. Fetched once at
// bootstrap, read-only afterwards.
type SponsorLinks map[string]SponsorLink
