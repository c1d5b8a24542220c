// Command voxelcore is the GL demo driver: it opens a window exactly as the
// teacher's cmd/mini-mc/setup.go does, then ticks an engine.World and prints
// the recompile tick's counts once a second while clearing the window,
// instead of drawing chunks with a full renderer, since building out the
// renderer is explicitly
// out of this repo's scope (§1 Non-goals: "the renderer is an external
// collaborator").
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"voxelcore/internal/blockatlas"
	"voxelcore/internal/engine"
	"voxelcore/internal/mesh"
	"voxelcore/internal/voxel"
)

func init() { runtime.LockOSThread() }

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	registry := mesh.DefaultRegistry()
	atlas := blockatlas.Build(registry.TextureNames())
	fmt.Printf("atlas: %d tiles, %dx%d\n", len(atlas.Names), atlas.Image.Bounds().Dx(), atlas.Image.Bounds().Dy())

	w := engine.NewWorld(engine.NewDensityGenerator(time.Now().UnixNano()), voxel.GlobalPos{}, 512, registry.FaceTextures())
	shutdown := engine.NewShutdown(func() { fmt.Println("voxelcore: data thread stopped") })

	spawn := voxel.ChunkPos{}
	lastReport := time.Now()

	for !window.ShouldClose() && !shutdown.Stopped() {
		w.AdmissionScan(spawn, 64)
		w.ReloadTick()
		processed, skipped := w.RecompileTick()

		if time.Since(lastReport) > time.Second {
			fmt.Printf("tick: compiled=%d skipped=%d queue=%d\n", processed, skipped, w.Cache.Recompile.Len())
			lastReport = time.Now()
		}

		gl.ClearColor(0.53, 0.81, 0.92, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(900, 600, "voxelcore", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, err
	}
	glfw.SwapInterval(0)
	return window, nil
}
