package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// GAT format errors.
var (
	ErrInvalidGATMagic       = errors.New("invalid GAT magic: expected 'GRAT'")
	ErrUnsupportedGATVersion = errors.New("unsupported GAT version")
	ErrTruncatedGATData      = errors.New("truncated GAT data")
	ErrInvalidGATGrid        = errors.New("invalid GAT altitude grid")
)

const (
	gatMagic      = "GRAT"
	gatHeaderSize = 14
	gatMaxSide    = 4096
)

// GATVersion represents the GAT file version.
type GATVersion struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v GATVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// gatWriteVersion is the version written by Encode.
var gatWriteVersion = GATVersion{Major: 1, Minor: 2}

// GATCellType classifies a cell of the altitude table.
type GATCellType uint32

// Cell type constants.
const (
	GATWalkable GATCellType = 0
	GATBlocked  GATCellType = 1
	GATWater    GATCellType = 2
)

// String returns a human-readable cell type name.
func (t GATCellType) String() string {
	switch t {
	case GATWalkable:
		return "Walkable"
	case GATBlocked:
		return "Blocked"
	case GATWater:
		return "Water"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// GATCell is one grid cell: four corner altitudes and a type.
type GATCell struct {
	// Heights holds the corner altitudes:
	// [0] = bottom-left, [1] = bottom-right, [2] = top-left, [3] = top-right.
	// "Top" is the lower-Z edge of the plane.
	Heights [4]float32
	Type    GATCellType
}

// AverageHeight returns the average altitude of all four corners.
func (c *GATCell) AverageHeight() float32 {
	return (c.Heights[0] + c.Heights[1] + c.Heights[2] + c.Heights[3]) / 4.0
}

// GAT is a ground altitude table: Width x Height cells, row-major along Z.
type GAT struct {
	Version GATVersion
	Width   uint32
	Height  uint32
	Cells   []GATCell
}

// GATOptions controls how cell types are derived from altitudes.
type GATOptions struct {
	// WaterLevel marks cells whose average altitude lies below it as water.
	WaterLevel *float32
	// MaxStep marks cells whose corner altitudes differ by more than it as
	// blocked. Zero disables the check.
	MaxStep float32
}

// NewGAT builds an altitude table from vertex altitudes indexed [x][z], as
// held by a terrain heightmap. A grid of n x m vertices yields
// (n-1) x (m-1) cells.
func NewGAT(altitudes [][]float32, opts GATOptions) (*GAT, error) {
	vertsX := len(altitudes)
	if vertsX < 2 {
		return nil, fmt.Errorf("%w: need at least 2 vertex columns, got %d", ErrInvalidGATGrid, vertsX)
	}
	vertsZ := len(altitudes[0])
	if vertsZ < 2 {
		return nil, fmt.Errorf("%w: need at least 2 vertex rows, got %d", ErrInvalidGATGrid, vertsZ)
	}
	for x, col := range altitudes {
		if len(col) != vertsZ {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d", ErrInvalidGATGrid, x, len(col), vertsZ)
		}
	}
	if vertsX-1 > gatMaxSide || vertsZ-1 > gatMaxSide {
		return nil, fmt.Errorf("%w: %dx%d cells exceeds %d", ErrInvalidGATGrid, vertsX-1, vertsZ-1, gatMaxSide)
	}

	g := &GAT{
		Version: gatWriteVersion,
		Width:   uint32(vertsX - 1),
		Height:  uint32(vertsZ - 1),
		Cells:   make([]GATCell, (vertsX-1)*(vertsZ-1)),
	}
	for z := 0; z < vertsZ-1; z++ {
		for x := 0; x < vertsX-1; x++ {
			cell := GATCell{Heights: [4]float32{
				altitudes[x][z+1],
				altitudes[x+1][z+1],
				altitudes[x][z],
				altitudes[x+1][z],
			}}
			cell.Type = classifyCell(&cell, opts)
			g.Cells[z*(vertsX-1)+x] = cell
		}
	}
	return g, nil
}

func classifyCell(c *GATCell, opts GATOptions) GATCellType {
	if opts.WaterLevel != nil && c.AverageHeight() < *opts.WaterLevel {
		return GATWater
	}
	if opts.MaxStep > 0 {
		lo, hi := c.Heights[0], c.Heights[0]
		for _, h := range c.Heights[1:] {
			lo = min(lo, h)
			hi = max(hi, h)
		}
		if hi-lo > opts.MaxStep {
			return GATBlocked
		}
	}
	return GATWalkable
}

// GetCell returns the cell at the given coordinates.
// Returns nil if coordinates are out of bounds.
func (g *GAT) GetCell(x, z int) *GATCell {
	if x < 0 || z < 0 || x >= int(g.Width) || z >= int(g.Height) {
		return nil
	}
	return &g.Cells[z*int(g.Width)+x]
}

// CountByType returns the count of cells for each type.
func (g *GAT) CountByType() map[GATCellType]int {
	counts := make(map[GATCellType]int)
	for _, cell := range g.Cells {
		counts[cell.Type]++
	}
	return counts
}

// AltitudeRange returns the minimum and maximum corner altitude.
func (g *GAT) AltitudeRange() (lo, hi float32) {
	if len(g.Cells) == 0 {
		return 0, 0
	}

	lo = g.Cells[0].Heights[0]
	hi = g.Cells[0].Heights[0]
	for _, cell := range g.Cells {
		for _, h := range cell.Heights {
			lo = min(lo, h)
			hi = max(hi, h)
		}
	}
	return lo, hi
}

// Encode writes the table in GAT binary layout.
func (g *GAT) Encode(w io.Writer) error {
	if len(g.Cells) != int(g.Width)*int(g.Height) {
		return fmt.Errorf("%w: %d cells for %dx%d", ErrInvalidGATGrid, len(g.Cells), g.Width, g.Height)
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(gatMagic)
	// Version is stored as [minor, major]
	bw.WriteByte(g.Version.Minor)
	bw.WriteByte(g.Version.Major)
	binary.Write(bw, binary.LittleEndian, g.Width)
	binary.Write(bw, binary.LittleEndian, g.Height)
	for _, cell := range g.Cells {
		if err := binary.Write(bw, binary.LittleEndian, cell); err != nil {
			return fmt.Errorf("writing GAT cell: %w", err)
		}
	}
	return bw.Flush()
}

// SaveGATFile writes the table to path.
func (g *GAT) SaveGATFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating GAT file: %w", err)
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ParseGAT parses a GAT file from raw bytes.
func ParseGAT(data []byte) (*GAT, error) {
	if len(data) < gatHeaderSize {
		return nil, ErrTruncatedGATData
	}

	if string(data[0:4]) != gatMagic {
		return nil, ErrInvalidGATMagic
	}

	// Version is stored as [minor, major]
	version := GATVersion{
		Major: data[5],
		Minor: data[4],
	}
	if version.Major < 1 || version.Major > 3 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGATVersion, version)
	}

	r := bytes.NewReader(data[6:])

	var width, height uint32
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, fmt.Errorf("%w: reading width", ErrTruncatedGATData)
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return nil, fmt.Errorf("%w: reading height", ErrTruncatedGATData)
	}
	if width == 0 || height == 0 || width > gatMaxSide || height > gatMaxSide {
		return nil, fmt.Errorf("invalid GAT dimensions: %dx%d", width, height)
	}

	cellCount := int(width * height)
	gat := &GAT{
		Version: version,
		Width:   width,
		Height:  height,
		Cells:   make([]GATCell, cellCount),
	}
	for i := 0; i < cellCount; i++ {
		if err := binary.Read(r, binary.LittleEndian, &gat.Cells[i]); err != nil {
			return nil, fmt.Errorf("parsing cell %d: %w", i, ErrTruncatedGATData)
		}
	}

	return gat, nil
}

// ParseGATFile parses a GAT file from disk.
func ParseGATFile(path string) (*GAT, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading GAT file: %w", err)
	}
	return ParseGAT(data)
}
