//-----------------------------------------------------------------------------
/*

Voxelize a tetrahedral mesh onto a regular grid, logging the mesh-wide
moment totals and (optionally) writing debug renders of the grid. The
per-voxel moments themselves are not written to a file.

Job configuration is a JSON file, following a plain
read-config/compute/write-result shape.

*/
//-----------------------------------------------------------------------------

package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/sdfx-labs/tetvox/meshio"
	"github.com/sdfx-labs/tetvox/render"
	"github.com/sdfx-labs/tetvox/tetvox"
	v3 "github.com/sdfx-labs/tetvox/vec/v3"
	"github.com/sdfx-labs/tetvox/vec/v3i"
)

//-----------------------------------------------------------------------------

// jobSpec is the JSON job description: an input mesh, a grid to
// voxelize it onto, the moment order to compute, and which debug
// renders to write.
type jobSpec struct {
	InpPath string  `json:"inp_path"`
	Spacing v3.Vec  `json:"spacing"`
	N       v3i.Vec `json:"n"`
	Order   int     `json:"order"`

	SVGPath string `json:"svg_path,omitempty"`
	PNGPath string `json:"png_path,omitempty"`
	DXFPath string `json:"dxf_path,omitempty"`
	ThreeMF string `json:"threemf_path,omitempty"`
	Layer   int    `json:"layer,omitempty"`
}

func loadJob(path string) (*jobSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var j jobSpec
	if err := json.NewDecoder(f).Decode(&j); err != nil {
		return nil, err
	}
	return &j, nil
}

//-----------------------------------------------------------------------------

func run(j *jobSpec) error {
	mesh, err := meshio.ReadTetMesh(j.InpPath)
	if err != nil {
		return err
	}

	g := tetvox.NewGrid(j.Spacing, j.N, j.Order)

	acc, err := meshio.VoxelizeMesh(mesh, g)
	if err != nil {
		return err
	}
	log.Printf("voxelized %d elements: volume=%.6g in=%d straddling=%d out=%d",
		len(mesh.Elements), acc.MomTot[0], acc.NumIn, acc.NumStraddling, acc.NumOut)

	if j.SVGPath != "" {
		f, err := os.Create(j.SVGPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := render.WriteSliceSVG(f, g, j.Layer, 8); err != nil {
			return err
		}
	}
	if j.PNGPath != "" {
		f, err := os.Create(j.PNGPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := render.WriteSlicePNG(f, g, j.Layer, 8); err != nil {
			return err
		}
	}
	if j.DXFPath != "" {
		if err := render.WriteSliceDXF(j.DXFPath, g, j.Layer); err != nil {
			return err
		}
	}
	if j.ThreeMF != "" {
		f, err := os.Create(j.ThreeMF)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := render.Write3MF(f, g); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	jobPath := flag.String("job", "", "path to job JSON config")
	flag.Parse()
	if *jobPath == "" {
		log.Fatal("error: -job is required")
	}

	j, err := loadJob(*jobPath)
	if err != nil {
		log.Fatalf("error: %s", err)
	}
	if err := run(j); err != nil {
		log.Fatalf("error: %s", err)
	}
}

//-----------------------------------------------------------------------------
