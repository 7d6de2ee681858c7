// seehuhn.de/go/svgmesh - tessellate SVG drawings into triangle meshes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Svgmesh tessellates an SVG file and shows the resulting triangle mesh
// in the terminal.
//
// Usage:
//
//	svgmesh <file-name>
//
// The arrow keys pan the view, the square brackets zoom out and in, and
// escape quits.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/svgmesh"
	"seehuhn.de/go/svgmesh/scene"
	"seehuhn.de/go/svgmesh/softgpu"
	"seehuhn.de/go/svgmesh/svgdoc"
	"seehuhn.de/go/svgmesh/termwin"
	"seehuhn.de/go/svgmesh/viewer"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage:\n\tsvgmesh <file-name>")
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	svgmesh.SetLogger(logger)

	if err := run(os.Args[1], logger); err != nil {
		logger.Error("svgmesh failed", "error", err)
		os.Exit(1)
	}
}

func run(fname string, logger *slog.Logger) error {
	doc, err := svgdoc.Load(fname)
	if err != nil {
		return err
	}
	for _, w := range doc.Warnings {
		logger.Warn("document problem", "file", fname, "error", w)
	}

	mesh, _ := svgmesh.BuildMesh(doc, svgmesh.BuildOptions{})
	fmt.Printf("Finished tessellation: %d vertices, %d indices\n",
		mesh.VertexCount(), len(mesh.Indices))
	fmt.Println(viewer.Help)

	vb := doc.ViewBox
	tx, ty := doc.FirstTranslation()
	sc := scene.New(float32(vb.Width), float32(vb.Height), float32(tx), float32(ty), 0, 0)
	logger.Info("initial view", "scene", sc)

	win, err := termwin.Open(termwin.DefaultConfig())
	if err != nil {
		return &viewer.SetupError{Op: "open terminal", Err: err}
	}
	defer win.Close()

	// log output would corrupt the screen while the terminal is in use
	svgmesh.SetLogger(nil)
	defer svgmesh.SetLogger(logger)

	sc.UpdateProjection(scene.OrthoForSize(win.Size()))

	dev := softgpu.New(win)
	ctrl, err := viewer.New(viewer.DefaultConfig(), win, dev, mesh, sc)
	if err != nil {
		return err
	}
	return ctrl.Run()
}
