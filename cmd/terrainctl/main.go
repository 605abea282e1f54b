// terrainctl generates terrain plane meshes from YAML descriptors.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/internal/terrain"
	"github.com/Faultbox/midgard-terrain/internal/terrain/simplify"
	"github.com/Faultbox/midgard-terrain/pkg/formats"
	"github.com/Faultbox/midgard-terrain/pkg/noise"
)

func main() {
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	command := args[0]
	args = args[1:]

	switch command {
	case "generate", "gen":
		err = cmdGenerate(cfg, args)
	case "info":
		err = cmdInfo(cfg, args)
	case "kinds":
		cmdKinds()
	case "config":
		err = cmdConfig(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terrainctl - terrain plane generator

Usage:
  terrainctl [flags] <command> [options]

Commands:
  generate <plane.yaml>...     Generate meshes and export them as OBJ
  info <file>                  Describe a plane descriptor, .obj or .gat file
  kinds                        List noise kinds
  config init [path]           Write the default configuration

Flags:
  -config <path>   Config file (default ./terrainctl.yaml or user config dir)
  -debug           Enable debug logging
  -simplify        Merge flat quads after generation
  -no-parallel     Run the per-vertex pass on one goroutine
  -gat             Also export a .gat altitude table
  -out <dir>       Output directory
  -log-file <path> Also write logs to this file

Examples:
  terrainctl generate hills.yaml
  terrainctl -simplify -out ./meshes generate hills.yaml ridge.yaml
  terrainctl info ./meshes/hills.obj`)
}

func cmdGenerate(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	name := fs.String("name", "", "Output file name without extension (single plane only)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: terrainctl generate <plane.yaml>...")
	}
	if *name != "" && fs.NArg() > 1 {
		return fmt.Errorf("-name applies to a single plane")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := os.MkdirAll(cfg.Export.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, path := range fs.Args() {
		base := *name
		if base == "" {
			base = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		if err := generatePlane(ctx, cfg, path, base); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func generatePlane(ctx context.Context, cfg *config.Config, path, base string) error {
	start := time.Now()
	mesh, err := buildMesh(ctx, cfg, path)
	if err != nil {
		return err
	}
	if mesh == nil {
		logger.Info("skipping inactive plane", zap.String("file", path))
		return nil
	}

	if cfg.Export.Altitudes {
		gatPath := filepath.Join(cfg.Export.OutputDir, base+".gat")
		if err := exportAltitudes(mesh, cfg.Export, gatPath); err != nil {
			return err
		}
		logger.Info("wrote altitude table", zap.String("file", gatPath))
	}

	if cfg.Generation.Simplify {
		mesh, err = simplify.Reduce(mesh)
		if err != nil {
			return err
		}
	}

	objPath := filepath.Join(cfg.Export.OutputDir, base+".obj")
	if err := meshToOBJ(mesh, base, cfg.Export).SaveOBJFile(objPath); err != nil {
		return err
	}

	logger.Info("wrote mesh",
		zap.String("file", objPath),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// buildMesh loads and generates a plane. It returns nil for inactive planes.
func buildMesh(ctx context.Context, cfg *config.Config, path string) (*terrain.Mesh, error) {
	desc, err := terrain.LoadPlane(path)
	if err != nil {
		return nil, err
	}
	if !desc.Active {
		return nil, nil
	}

	plane, err := terrain.NewPlane(desc)
	if err != nil {
		return nil, err
	}
	return plane.Generate(ctx, terrain.GenerateOptions{Parallel: cfg.Generation.Parallel})
}

func cmdInfo(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: terrainctl info <file>")
	}
	path := args[0]

	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return infoOBJ(path)
	case ".gat":
		return infoGAT(path)
	default:
		return infoPlane(cfg, path)
	}
}

func infoPlane(cfg *config.Config, path string) error {
	desc, err := terrain.LoadPlane(path)
	if err != nil {
		return err
	}
	plane, err := terrain.NewPlane(desc)
	if err != nil {
		return err
	}

	fmt.Printf("Plane:     %s\n", desc.Label)
	fmt.Printf("Location:  %v\n", desc.Location)
	fmt.Printf("Size:      %v x %v\n", desc.Width, desc.Length)
	fmt.Printf("Grid:      %d x %d cells\n", desc.SubdivisionsX+1, desc.SubdivisionsZ+1)
	fmt.Printf("Active:    %v\n", desc.Active)
	fmt.Println()
	fmt.Println("Modifiers:")
	for i, m := range desc.Modifiers {
		fmt.Printf("  %2d  %s\n", i, m.Kind())
	}
	fmt.Printf("  point pass: %d, area pass: %d\n", len(plane.PointModifiers()), len(plane.AreaModifiers()))

	mesh, err := plane.Generate(context.Background(), terrain.GenerateOptions{Parallel: cfg.Generation.Parallel})
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Vertices:  %d\n", mesh.VertexCount())
	fmt.Printf("Triangles: %d\n", mesh.TriangleCount())
	fmt.Printf("Heights:   %.3f .. %.3f\n", mesh.MinHeight, mesh.MaxHeight)
	fmt.Printf("Bounds:    %v .. %v\n", mesh.Bounds.Min, mesh.Bounds.Max)
	if hm := terrain.BuildHeightmap(mesh); hm != nil {
		fmt.Printf("Center:    %.3f\n", hm.HeightAt(0, 0))
	}

	reduced, err := simplify.Reduce(mesh)
	if err != nil {
		return err
	}
	fmt.Printf("Simplified: %d vertices, %d triangles\n", reduced.VertexCount(), reduced.TriangleCount())
	return nil
}

func infoOBJ(path string) error {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("Mesh:      %s\n", obj.Name)
	fmt.Printf("Vertices:  %d\n", len(obj.Positions))
	fmt.Printf("Triangles: %d\n", len(obj.Indices)/3)
	fmt.Printf("Normals:   %v\n", len(obj.Normals) > 0)
	fmt.Printf("UVs:       %v\n", len(obj.UVs) > 0)
	fmt.Printf("Colors:    %v\n", len(obj.Colors) > 0)
	return nil
}

func infoGAT(path string) error {
	gat, err := formats.ParseGATFile(path)
	if err != nil {
		return err
	}
	lo, hi := gat.AltitudeRange()
	fmt.Printf("Version:   %s\n", gat.Version)
	fmt.Printf("Cells:     %d x %d\n", gat.Width, gat.Height)
	fmt.Printf("Altitudes: %.3f .. %.3f\n", lo, hi)
	for typ, count := range gat.CountByType() {
		fmt.Printf("  %-10s %d\n", typ, count)
	}
	return nil
}

func cmdKinds() {
	for _, k := range noise.Kinds() {
		fmt.Println(k)
	}
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) < 1 || args[0] != "init" {
		return fmt.Errorf("usage: terrainctl config init [path]")
	}

	if len(args) > 1 {
		if err := cfg.SaveTo(args[1]); err != nil {
			return err
		}
		fmt.Println(args[1])
		return nil
	}

	path, err := cfg.Save()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
