package main

import (
	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/terrain"
	"github.com/Faultbox/midgard-terrain/pkg/formats"
)

// meshToOBJ copies the attributes enabled in the export settings.
func meshToOBJ(m *terrain.Mesh, name string, export config.ExportConfig) *formats.OBJ {
	obj := &formats.OBJ{
		Name:      name,
		Positions: m.Positions,
		Indices:   m.Indices,
	}
	if export.Normals {
		obj.Normals = m.Normals
	}
	if export.UVs {
		obj.UVs = m.UVs
	}
	if export.Colors {
		obj.Colors = m.Colors
	}
	return obj
}

// exportAltitudes writes the altitude table of an unreduced mesh.
func exportAltitudes(m *terrain.Mesh, export config.ExportConfig, path string) error {
	hm := terrain.BuildHeightmap(m)
	if hm == nil {
		return formats.ErrInvalidGATGrid
	}
	gat, err := formats.NewGAT(hm.Altitudes, formats.GATOptions{
		WaterLevel: export.WaterLevel,
		MaxStep:    export.MaxStep,
	})
	if err != nil {
		return err
	}
	return gat.SaveGATFile(path)
}
