// Command pathbake converts level path geometry between an editable YAML
// point list and the little-endian float32 buffer the game loads.
//
//	pathbake -in levels/lv_3_path.yaml -out levels/lv_3_path.bin
//	pathbake -in levels/lv_1_path.bin            # prints YAML and path stats
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/railshooter/nav"
	"gopkg.in/yaml.v3"
)

type pointList struct {
	Points [][3]float64 `yaml:"points"`
}

func main() {
	in := flag.String("in", "", "input file (.yaml/.yml point list or .bin vertex buffer)")
	out := flag.String("out", "", "output file; defaults to stdout")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("pathbake: %v", err)
	}

	var result []byte
	var vertices []mgl64.Vec3
	switch strings.ToLower(filepath.Ext(*in)) {
	case ".yaml", ".yml":
		vertices, err = parsePoints(data)
		if err == nil {
			result = nav.EncodeVertices(vertices)
		}
	case ".bin":
		vertices, err = nav.DecodeVertices(data)
		if err == nil {
			result, err = formatPoints(vertices)
		}
	default:
		err = fmt.Errorf("unknown input type %q", filepath.Ext(*in))
	}
	if err != nil {
		log.Fatalf("pathbake: %s: %v", *in, err)
	}

	if err := writeOutput(*out, result); err != nil {
		log.Fatalf("pathbake: %v", err)
	}
	if err := report(os.Stderr, vertices); err != nil {
		log.Printf("pathbake: warning: %v", err)
	}
}

func parsePoints(data []byte) ([]mgl64.Vec3, error) {
	var list pointList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse points: %w", err)
	}
	vertices := make([]mgl64.Vec3, len(list.Points))
	for i, p := range list.Points {
		vertices[i] = mgl64.Vec3(p)
	}
	return vertices, nil
}

func formatPoints(vertices []mgl64.Vec3) ([]byte, error) {
	list := pointList{Points: make([][3]float64, len(vertices))}
	for i, v := range vertices {
		list.Points[i] = [3]float64(v)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(list); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// report prints the baked path's stats. Bad geometry is still written out,
// the game falls back to a stationary rail for it.
func report(w io.Writer, vertices []mgl64.Vec3) error {
	m, err := nav.Build(vertices, nav.Placement{})
	fmt.Fprintf(w, "%d points, loop length %.3f\n", m.Len(), m.Length())
	if errors.Is(err, nav.ErrInvalidGeometry) || errors.Is(err, nav.ErrDegeneratePath) {
		return err
	}
	return nil
}
