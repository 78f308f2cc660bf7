// Command rangle renders a single OBJ mesh to a terminal block-character
// display using one of two pre-compiled shaders.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/isikkema/rangle"
	"github.com/isikkema/rangle/display"
	"github.com/isikkema/rangle/linear"
	"github.com/isikkema/rangle/mesh"
	"github.com/isikkema/rangle/raster"
	"github.com/isikkema/rangle/shader"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("rangle: %v", err)
	}
}

func run() error {
	var (
		width, height    int
		background       string
		shaderName       string
		color            string
		scale            string
		translate        string
		yaw, pitch, roll float64
		modeName         string
	)

	flag.IntVar(&width, "width", 80, "display width in characters")
	flag.IntVar(&height, "height", 40, "display height in characters")
	flag.StringVar(&background, "background", "0 0 0", "background color, \"r g b\" in [0,1]")
	flag.StringVar(&shaderName, "shader", "normal", "pre-compiled shader: normal|solid")
	flag.StringVar(&color, "color", "1 1 1", "object color for -shader=solid, \"r g b\" in [0,1]")
	flag.StringVar(&scale, "scale", "1 1 1", "model scale, \"x y z\"")
	flag.StringVar(&translate, "translate", "0 0 0", "model translation, \"x y z\"")
	flag.Float64Var(&yaw, "yaw", 0, "rotation around the y-axis, radians")
	flag.Float64Var(&pitch, "pitch", 0, "rotation around the x-axis, radians")
	flag.Float64Var(&roll, "roll", 0, "rotation around the z-axis, radians")
	flag.StringVar(&modeName, "mode", "triangles", "primitive mode: triangles|lines|points")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: %s [flags] OBJ-FILE", os.Args[0])
	}
	filename := flag.Arg(0)

	bg, err := parseVec3(background)
	if err != nil {
		return fmt.Errorf("-background: %w", err)
	}
	sc, err := parseVec3(scale)
	if err != nil {
		return fmt.Errorf("-scale: %w", err)
	}
	tr, err := parseVec3(translate)
	if err != nil {
		return fmt.Errorf("-translate: %w", err)
	}
	mode, err := parseMode(modeName)
	if err != nil {
		return err
	}

	m, err := mesh.FromFile(filename)
	if err != nil {
		return err
	}
	m.Scale(sc[0], sc[1], sc[2])
	m.Rotate(float32(yaw), float32(pitch), float32(roll))
	m.Translate(tr[0], tr[1], tr[2])

	disp := display.NewTerminal(os.Stdout, width, height)
	disp.SetBackgroundColor(quantizeColor(linear.NewV4(bg, 1)))

	p, err := rangle.NewPipeline(disp)
	if err != nil {
		return err
	}
	p.SetMode(mode)

	cam := rangle.NewCamera(linear.V3{0, 0, 10}, linear.V3{0, 0, 0}, linear.V3{0, 1, 0})
	proj := p.ComputeProjectionMatrix(float32(45*3.14159265/180), float32(width)/float32(height), 0.1, 20)
	mvp := proj.Mul(cam.ViewMatrix()).Mul(m.ComputeModelMatrix())

	var prog *shader.Program
	switch shaderName {
	case "normal":
		prog, err = shader.NormalPreset(m, mvp)
	case "solid":
		var c linear.V3
		c, err = parseVec3(color)
		if err == nil {
			prog, err = shader.SolidPreset(m, linear.NewV4(c, 1), mvp)
		}
	default:
		return fmt.Errorf("-shader: unknown shader %q, want normal or solid", shaderName)
	}
	if err != nil {
		return err
	}

	p.AddModel(m, prog)
	return p.RenderScene()
}

func parseMode(s string) (rangle.Mode, error) {
	switch s {
	case "triangles":
		return rangle.Triangles, nil
	case "lines":
		return rangle.Lines, nil
	case "points":
		return rangle.Points, nil
	default:
		return 0, fmt.Errorf("-mode: unknown mode %q, want triangles, lines or points", s)
	}
}

// parseVec3 parses "x y z" into a V3, matching the loader's permissive
// whitespace-separated float tuple format used throughout the CLI's
// color/scale/translate flags.
func parseVec3(s string) (linear.V3, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return linear.V3{}, fmt.Errorf("want 3 space-separated values, got %d", len(fields))
	}
	var v linear.V3
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return linear.V3{}, err
		}
		v[i] = float32(n)
	}
	return v, nil
}

func quantizeColor(c linear.V4) raster.Color {
	c = c.Clamp(0, 1)
	return raster.Color{
		uint8(c[0] * 255),
		uint8(c[1] * 255),
		uint8(c[2] * 255),
		uint8(c[3] * 255),
	}
}
