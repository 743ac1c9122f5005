//-----------------------------------------------------------------------------
/*

Package config persists the tunable tolerances of the slicing pipeline
as YAML, in the style of the build-settings file the recast CLI reads
and writes (cmd/recast/cmd/{build,config}.go): one flat struct, loaded
with gopkg.in/yaml.v3, with a command that can write out a prefilled
default file.

*/
//-----------------------------------------------------------------------------

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Parameters holds every persisted tolerance named in spec.md §6. Only
// SimplificationTolerance is applied (gladius-slice passes it to
// Extractor.SetSimplificationTolerance); the contour package does not read
// the other fields and uses its own fixed values instead.
type Parameters struct {
	// SimplificationTolerance is the Douglas-Peucker perpendicular-distance
	// tolerance in mm, passed to contour.Simplify.
	SimplificationTolerance float32 `yaml:"simplification_tolerance_mm"`

	// CloseGapTolerance is the close-gap tolerance in mm. Trace and
	// MergeNearestNeighbor bridge gaps up to a fixed 1.0 mm; this field does
	// not change that.
	CloseGapTolerance float32 `yaml:"close_gap_tolerance_mm"`

	// SmallAreaThreshold is the enclosed-area cutoff in mm^2 for ExcludeFromSlice.
	// The extractor uses a fixed 5e-2 mm^2 and does not read this field.
	SmallAreaThreshold float32 `yaml:"small_area_threshold_mm2"`

	// LayerMergeSelfClosureTolerance is the layer-merge self-closure tolerance
	// in mm. No function in this module reads it.
	LayerMergeSelfClosureTolerance float32 `yaml:"layer_merge_self_closure_tolerance_mm"`

	// IntersectionWindow is the half-size of the vertex window Validate scans for
	// self-intersections around each vertex. The extractor always passes a fixed
	// 50 to Validate and does not read this field.
	IntersectionWindow int `yaml:"intersection_window"`
}

// Default returns the parameter set matching spec.md §6's defaults.
func Default() Parameters {
	return Parameters{
		SimplificationTolerance:       1e-2,
		CloseGapTolerance:             1.0,
		SmallAreaThreshold:            5e-2,
		LayerMergeSelfClosureTolerance: 0.5,
		IntersectionWindow:            50,
	}
}

// Load reads and parses a YAML parameters file.
func Load(path string) (Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Parameters{}, err
	}
	var p Parameters
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// Save writes p to path as YAML, creating or truncating the file.
func Save(path string, p Parameters) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
