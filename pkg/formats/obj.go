// Package formats reads and writes the mesh and altitude files exported for
// generated terrain planes.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// OBJ format errors.
var (
	ErrInvalidOBJ      = errors.New("invalid OBJ data")
	ErrOBJIndexOutside = errors.New("OBJ face index out of range")
)

// OBJ is an indexed triangle mesh in Wavefront OBJ form. Normals, UVs and
// Colors are optional; when present they are parallel to Positions.
type OBJ struct {
	Name      string
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Colors    []mgl32.Vec4
	Indices   []uint32
}

// Validate checks buffer lengths and index bounds.
func (o *OBJ) Validate() error {
	n := len(o.Positions)
	if len(o.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrInvalidOBJ, len(o.Indices))
	}
	for name, l := range map[string]int{"normals": len(o.Normals), "uvs": len(o.UVs), "colors": len(o.Colors)} {
		if l != 0 && l != n {
			return fmt.Errorf("%w: %d %s for %d positions", ErrInvalidOBJ, l, name, n)
		}
	}
	for _, idx := range o.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: %d (have %d vertices)", ErrOBJIndexOutside, idx, n)
		}
	}
	return nil
}

// Encode writes the mesh as OBJ text. Vertex colors use the common
// "v x y z r g b" extension.
func (o *OBJ) Encode(w io.Writer) error {
	if err := o.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if o.Name != "" {
		fmt.Fprintf(bw, "o %s\n", o.Name)
	}
	for i, p := range o.Positions {
		if len(o.Colors) > 0 {
			c := o.Colors[i]
			fmt.Fprintf(bw, "v %s %s %s %s %s %s\n", ff(p[0]), ff(p[1]), ff(p[2]), ff(c[0]), ff(c[1]), ff(c[2]))
		} else {
			fmt.Fprintf(bw, "v %s %s %s\n", ff(p[0]), ff(p[1]), ff(p[2]))
		}
	}
	for _, uv := range o.UVs {
		fmt.Fprintf(bw, "vt %s %s\n", ff(uv[0]), ff(uv[1]))
	}
	for _, n := range o.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", ff(n[0]), ff(n[1]), ff(n[2]))
	}

	hasUV, hasNormal := len(o.UVs) > 0, len(o.Normals) > 0
	for i := 0; i < len(o.Indices); i += 3 {
		bw.WriteString("f")
		for _, idx := range o.Indices[i : i+3] {
			ref := idx + 1 // OBJ indices are 1-based
			switch {
			case hasUV && hasNormal:
				fmt.Fprintf(bw, " %d/%d/%d", ref, ref, ref)
			case hasUV:
				fmt.Fprintf(bw, " %d/%d", ref, ref)
			case hasNormal:
				fmt.Fprintf(bw, " %d//%d", ref, ref)
			default:
				fmt.Fprintf(bw, " %d", ref)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// SaveOBJFile writes the mesh to path.
func (o *OBJ) SaveOBJFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}
	if err := o.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func ff(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// ParseOBJ reads OBJ text. Faces reference vertices by position index;
// polygons are fan-triangulated. Unsupported statements are skipped.
func ParseOBJ(data []byte) (*OBJ, error) {
	o := &OBJ{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		var err error
		switch fields[0] {
		case "o":
			if len(fields) > 1 {
				o.Name = strings.Join(fields[1:], " ")
			}
		case "v":
			err = o.parseVertex(fields[1:])
		case "vt":
			var f []float32
			if f, err = parseFloats(fields[1:], 2); err == nil {
				o.UVs = append(o.UVs, mgl32.Vec2{f[0], f[1]})
			}
		case "vn":
			var f []float32
			if f, err = parseFloats(fields[1:], 3); err == nil {
				o.Normals = append(o.Normals, mgl32.Vec3{f[0], f[1], f[2]})
			}
		case "f":
			err = o.parseFace(fields[1:])
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

func (o *OBJ) parseVertex(fields []string) error {
	if len(fields) != 3 && len(fields) != 6 {
		return fmt.Errorf("%w: vertex needs 3 or 6 values, got %d", ErrInvalidOBJ, len(fields))
	}
	f, err := parseFloats(fields, len(fields))
	if err != nil {
		return err
	}
	o.Positions = append(o.Positions, mgl32.Vec3{f[0], f[1], f[2]})
	if len(f) == 6 {
		o.Colors = append(o.Colors, mgl32.Vec4{f[3], f[4], f[5], 1})
	}
	return nil
}

func (o *OBJ) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: face needs at least 3 vertices", ErrInvalidOBJ)
	}
	refs := make([]uint32, len(fields))
	for i, field := range fields {
		pos, _, _ := strings.Cut(field, "/")
		n, err := strconv.Atoi(pos)
		if err != nil {
			return fmt.Errorf("%w: face index %q", ErrInvalidOBJ, field)
		}
		if n < 0 {
			n += len(o.Positions) + 1
		}
		if n < 1 || n > len(o.Positions) {
			return fmt.Errorf("%w: %d", ErrOBJIndexOutside, n)
		}
		refs[i] = uint32(n - 1)
	}
	for i := 1; i+1 < len(refs); i++ {
		o.Indices = append(o.Indices, refs[0], refs[i], refs[i+1])
	}
	return nil
}

func parseFloats(fields []string, want int) ([]float32, error) {
	if len(fields) < want {
		return nil, fmt.Errorf("%w: need %d values, got %d", ErrInvalidOBJ, want, len(fields))
	}
	out := make([]float32, want)
	for i := range out {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOBJ, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}
