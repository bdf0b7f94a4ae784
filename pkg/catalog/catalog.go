// Package catalog defines the fixed set of viewport show categories a
// playblast can toggle. The order is stable: visibility vectors everywhere
// else in the codebase are positional against Entries.
package catalog

import "fmt"

// Entry is one viewport show category.
type Entry struct {
	// Label is the human-facing name used in presets and UIs.
	Label string
	// Flag is the host-side capability flag name. Only host adapters may
	// use it; the core passes catalog-indexed bool vectors around instead.
	Flag string
}

// Entries lists every show category in catalog order.
var Entries = []Entry{
	{"Controllers", "controllers"},
	{"NURBS Curves", "nurbsCurves"},
	{"NURBS Surfaces", "nurbsSurfaces"},
	{"NURBS CVs", "cv"},
	{"NURBS Hulls", "hulls"},
	{"Polygons", "polymeshes"},
	{"Subdiv Surfaces", "subdivSurfaces"},
	{"Planes", "planes"},
	{"Lights", "lights"},
	{"Cameras", "cameras"},
	{"Image Planes", "imagePlane"},
	{"Joints", "joints"},
	{"IK Handles", "ikHandles"},
	{"Deformers", "deformers"},
	{"Dynamics", "dynamics"},
	{"Particle Instancers", "particleInstancers"},
	{"Fluids", "fluids"},
	{"Hair Systems", "hairSystems"},
	{"Follicles", "follicles"},
	{"nCloths", "nCloths"},
	{"nParticles", "nParticles"},
	{"nRigids", "nRigids"},
	{"Dynamic Constraints", "dynamicConstraints"},
	{"Locators", "locators"},
	{"Dimensions", "dimensions"},
	{"Pivots", "pivots"},
	{"Handles", "handles"},
	{"Texture Placements", "textures"},
	{"Strokes", "strokes"},
	{"Motion Trails", "motionTrails"},
	{"Plugin Shapes", "pluginShapes"},
	{"Clip Ghosts", "clipGhosts"},
	{"Grease Pencil", "greasePencils"},
	{"Grid", "grid"},
	{"HUD", "hud"},
	{"Hold-Outs", "hos"},
	{"Selection Highlighting", "sel"},
}

// Len returns the number of catalog entries, i.e. the required length of
// every visibility vector.
func Len() int {
	return len(Entries)
}

// Presets maps preset names to the labels that should be visible. The empty
// "Viewport" preset means "keep whatever the live viewport currently shows".
var Presets = map[string][]string{
	"Viewport": {},
	"Geo":      {"NURBS Surfaces", "Polygons"},
	"Dynamics": {"NURBS Surfaces", "Polygons", "Dynamics", "Fluids", "nParticles"},
}

// PresetNames returns the known preset names in a stable order.
func PresetNames() []string {
	return []string{"Viewport", "Geo", "Dynamics"}
}

// ExpandPreset expands a preset name to a catalog-length bool vector. The
// "Viewport" preset expands to nil, which callers interpret as "snapshot the
// live viewport".
func ExpandPreset(name string) ([]bool, error) {
	labels, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("invalid visibility preset: %s", name)
	}
	if len(labels) == 0 {
		return nil, nil
	}

	visible := make(map[string]bool, len(labels))
	for _, l := range labels {
		visible[l] = true
	}

	vector := make([]bool, len(Entries))
	for i, entry := range Entries {
		vector[i] = visible[entry.Label]
	}
	return vector, nil
}
