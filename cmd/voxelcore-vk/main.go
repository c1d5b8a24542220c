// Command voxelcore-vk is the second demo driver the teacher's go.mod
// implies but its own source never exercises: cmd/triangle renders with
// glfw+gl despite vulkan-go/{vulkan,asche} sitting in require. This
// binary initializes the Vulkan loader, wraps asche's base application
// (no Vulkan instance or device is created), and hands it the staging
// buffers of one compiled chunk, to show
// that §4.6's mesh-compile output (plain []uint32 vertex/index slices) is
// renderer-agnostic: nothing in internal/mesh or internal/engine imports a
// graphics API.
package main

import (
	"fmt"
	"runtime"

	"github.com/vulkan-go/asche"
	vk "github.com/vulkan-go/vulkan"

	"voxelcore/internal/engine"
	"voxelcore/internal/mesh"
	"voxelcore/internal/voxel"
)

func init() { runtime.LockOSThread() }

// chunkHandoff is the minimal asche.Application: it does nothing but report
// the mesh payload sizes it was handed at prepare time, standing in for a
// real Vulkan upload/draw pipeline that is out of this repo's scope.
type chunkHandoff struct {
	*asche.BaseVulkanApp
	w     *engine.World
	chunk voxel.ChunkPos
}

func (c *chunkHandoff) VulkanContextPrepare() error {
	acc := c.w.Cache.GetBestData(c.chunk).Accessor()
	if acc == nil {
		fmt.Println("voxelcore-vk: chunk not resident yet")
		return nil
	}
	for l := voxel.Layer(0); l < 3; l++ {
		buf := acc.MeshBuffers(l)
		fmt.Printf("voxelcore-vk: layer %d vertices=%d indices=%d segments=%d\n",
			l, len(buf.StagingVertices), len(buf.StagingIndices), len(buf.SegmentBoundaries))
	}
	return nil
}

func (c *chunkHandoff) VulkanContextCleanup() error { return nil }

func main() {
	if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
		panic(err)
	}
	if err := vk.Init(); err != nil {
		panic(err)
	}

	registry := mesh.DefaultRegistry()
	w := engine.NewWorld(engine.NewDensityGenerator(1), voxel.GlobalPos{}, 512, registry.FaceTextures())

	center := voxel.ChunkPos{}
	w.Cache.MarkForLoad(center, voxel.DetailFull)
	w.ReloadTick()
	for _, d := range [6][3]int64{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}} {
		w.Cache.MarkForLoad(voxel.ChunkPos{X: d[0], Y: d[1], Z: d[2]}, voxel.DetailFull)
	}
	w.ReloadTick()
	w.RecompileTick()

	app := &chunkHandoff{BaseVulkanApp: asche.NewBaseVulkanApp("voxelcore-vk"), w: w, chunk: center}
	if err := app.VulkanContextPrepare(); err != nil {
		panic(err)
	}
	app.VulkanContextCleanup()
}
