// linal - vector algebra playground
// Print the full operation table for 2D/3D vectors and points, measure
// triangle meshes, or watch a spring-damped vector settle.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ansipixels/linal"
	"github.com/ansipixels/linal/geom"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/harmonica"
	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:   "linal",
		Short: "Vector algebra playground",
		Long: `linal - vector algebra playground

Vectors and points are written as whitespace-separated components,
quoted as one argument: linal vec2 "1 2" "3 4".`,
	}

	cmd.AddCommand(newVec2Cmd(), newVec3Cmd(), newPointCmd(), newMeshCmd(), newSpringCmd())

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

func newVec2Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   `vec2 "<x y>" "<x y>"`,
		Short: "Print the Vec2 operation table for two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := linal.ParseVec2(args[0])
			if err != nil {
				return err
			}
			b, err := linal.ParseVec2(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "a         = (%v)\n", a)
			fmt.Fprintf(out, "b         = (%v)\n", b)
			fmt.Fprintf(out, "a + b     = (%v)\n", a.Add(b))
			fmt.Fprintf(out, "a - b     = (%v)\n", a.Sub(b))
			fmt.Fprintf(out, "a * 2     = (%v)\n", a.Scale(2))
			fmt.Fprintf(out, "a / 2     = (%v)\n", a.Div(2))
			fmt.Fprintf(out, "a · b     = %v\n", a.Dot(b))
			fmt.Fprintf(out, "a × b     = %v\n", a.Cross(b))
			fmt.Fprintf(out, "area(a,b) = %v\n", a.Area(b))
			fmt.Fprintf(out, "|a|       = %v\n", a.Len())
			fmt.Fprintf(out, "norm(a)   = (%v)\n", a.Normalize())
			fmt.Fprintf(out, "perp(a)   = (%v)\n", a.Perpendicular())
			fmt.Fprintf(out, "angle(a)  = %v\n", a.Angle())
			fmt.Fprintf(out, "-a        = (%v)\n", a.Negate())
			return nil
		},
	}
}

func newVec3Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   `vec3 "<x y z>" "<x y z>"`,
		Short: "Print the Vec3 operation table for two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := linal.ParseVec3(args[0])
			if err != nil {
				return err
			}
			b, err := linal.ParseVec3(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "a       = (%v)\n", a)
			fmt.Fprintf(out, "b       = (%v)\n", b)
			fmt.Fprintf(out, "a + b   = (%v)\n", a.Add(b))
			fmt.Fprintf(out, "a - b   = (%v)\n", a.Sub(b))
			fmt.Fprintf(out, "a * 2   = (%v)\n", a.Scale(2))
			fmt.Fprintf(out, "a / 2   = (%v)\n", a.Div(2))
			fmt.Fprintf(out, "a · b   = %v\n", a.Dot(b))
			fmt.Fprintf(out, "a × b   = (%v)\n", a.Cross(b))
			fmt.Fprintf(out, "|a × b| = %v\n", a.Cross(b).Len())
			fmt.Fprintf(out, "|a|     = %v\n", a.Len())
			fmt.Fprintf(out, "norm(a) = (%v)\n", a.Normalize())
			fmt.Fprintf(out, "-a      = (%v)\n", a.Negate())
			return nil
		},
	}
}

func newPointCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `point "<x y>" "<x y>"`,
		Short: "Print the Point operation table for a point and a displacement",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := linal.ParsePoint(args[0])
			if err != nil {
				return err
			}
			v, err := linal.ParseVec2(args[1])
			if err != nil {
				return err
			}

			q := p.Add(v)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "p        = (%v)\n", p)
			fmt.Fprintf(out, "v        = (%v)\n", v)
			fmt.Fprintf(out, "p + v    = (%v)\n", q)
			fmt.Fprintf(out, "p - v    = (%v)\n", p.Sub(v))
			fmt.Fprintf(out, "(p+v) - p = (%v)\n", q.Diff(p))
			fmt.Fprintf(out, "pos(p)   = (%v)\n", p.Position())
			fmt.Fprintf(out, "-p       = (%v)\n", p.Negate())
			return nil
		},
	}
}

func newMeshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mesh <model.glb|model.gltf|model.stl>",
		Short: "Measure a triangle mesh",
		Long:  "Load a 3D model file and print its vertex and triangle counts, bounding box, surface area, and surface centroid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMesh(cmd, args[0])
		},
	}
}

func runMesh(cmd *cobra.Command, path string) error {
	var mesh *geom.Mesh
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		mesh, err = geom.LoadGLB(path)
	case ".stl":
		mesh, err = geom.LoadSTL(path)
	default:
		return fmt.Errorf("unsupported format: %s (use .glb, .gltf, or .stl)", ext)
	}
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	size := mesh.Size()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", filepath.Base(path))
	fmt.Fprintf(out, "Vertices:   %d\n", mesh.VertexCount())
	fmt.Fprintf(out, "Triangles:  %d\n", mesh.TriangleCount())
	fmt.Fprintf(out, "Bounds Min: (%.3f, %.3f, %.3f)\n", mesh.BoundsMin.X, mesh.BoundsMin.Y, mesh.BoundsMin.Z)
	fmt.Fprintf(out, "Bounds Max: (%.3f, %.3f, %.3f)\n", mesh.BoundsMax.X, mesh.BoundsMax.Y, mesh.BoundsMax.Z)
	fmt.Fprintf(out, "Dimensions: %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
	fmt.Fprintf(out, "Area:       %.3f\n", mesh.SurfaceArea())
	c := mesh.Centroid()
	fmt.Fprintf(out, "Centroid:   (%.3f, %.3f, %.3f)\n", c.X, c.Y, c.Z)
	return nil
}

func newSpringCmd() *cobra.Command {
	var (
		fps       int
		frequency float64
		damping   float64
		maxFrames int
	)

	cmd := &cobra.Command{
		Use:   `spring "<x y>" "<x y>"`,
		Short: "Spring-animate a Vec2 toward a target",
		Long:  "Simulate a damped spring pulling a 2D position toward a target, printing one position per frame until it settles.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := linal.ParseVec2(args[0])
			if err != nil {
				return err
			}
			to, err := linal.ParseVec2(args[1])
			if err != nil {
				return err
			}
			return runSpring(cmd, from, to, fps, frequency, damping, maxFrames)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 60, "Simulation frames per second")
	cmd.Flags().Float64Var(&frequency, "frequency", 4.0, "Spring angular frequency")
	cmd.Flags().Float64Var(&damping, "damping", 1.0, "Damping ratio (1.0 = critically damped)")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 600, "Give up after this many frames")

	return cmd
}

func runSpring(cmd *cobra.Command, from, to linal.Vec2, fps int, frequency, damping float64, maxFrames int) error {
	const settleEps = 1e-3

	spring := harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)

	pos := from
	var vel linal.Vec2
	out := cmd.OutOrStdout()

	for frame := 0; frame < maxFrames; frame++ {
		fmt.Fprintf(out, "%3d: (%.4f, %.4f)\n", frame, pos.X, pos.Y)

		if pos.Distance(to) < settleEps && vel.Len() < settleEps {
			return nil
		}

		pos.X, vel.X = spring.Update(pos.X, vel.X, to.X)
		pos.Y, vel.Y = spring.Update(pos.Y, vel.Y, to.Y)
	}

	return fmt.Errorf("spring did not settle within %d frames (distance %.4f)", maxFrames, pos.Distance(to))
}
