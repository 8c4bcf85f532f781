package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/worldkit/ecs"
	"github.com/plus3/worldkit/ecs/debugui"
	debugui_ebiten "github.com/plus3/worldkit/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and drives the World with ImGui rendering.
type Game struct {
	world   *ecs.World
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before dispatching systems
	g.backend.BeginFrame()

	g.world.Update(1.0 / 60.0)
	g.world.Render()

	// End ImGui frame after the render pass completes
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("World Debug UI", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	world := ecs.NewWorld()
	world.AddRenderSystem(debugui.NewImguiSystem(100))

	// Spawn an entity with an ImGui render callback
	world.CreateEntity().AddComponent(&debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from the World!")
			imgui.End()
		},
	})

	// Or spawn the full panel set
	debugui.SpawnDebugUI(world)

	game := &Game{
		world:   world,
		backend: backend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
