package main

import (
	"context"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/ecs/entity"
	"github.com/milk9111/railshooter/ecs/render"
	"github.com/milk9111/railshooter/ecs/system"
	"github.com/milk9111/railshooter/levels"
	"github.com/milk9111/railshooter/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	cfg       *prefabs.Config
	watcher   *prefabs.Watcher

	ctx    context.Context
	cancel context.CancelFunc
	loader *levels.Loader
	level  ecs.Entity
	name   string
	next   string

	debug bool
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	cfg, err := prefabs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("game: load prefabs: %w", err)
	}

	world := ecs.NewWorld()
	world.SetPhysicsWorld(ecs.NewPhysicsWorld())

	systems := append([]ecs.System{NewInputSystem()}, system.Pipeline(cfg, func() float64 {
		return 1 / float64(ebiten.TPS())
	})...)

	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{
		world:     world,
		scheduler: ecs.NewScheduler(systems...),
		cfg:       cfg,
		ctx:       ctx,
		cancel:    cancel,
		debug:     debug,
	}

	if watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("Game: prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.startLevel(levelName); err != nil {
		cancel()
		return nil, err
	}
	return g, nil
}

// startLevel creates the level entity and starts reading its files. The path
// is built once the load lands.
func (g *Game) startLevel(name string) error {
	g.loader.Cancel()
	level, err := entity.NewLevel(g.world, name)
	if err != nil {
		return fmt.Errorf("game: start level %s: %w", name, err)
	}
	g.level = level
	g.name = name
	g.next = ""
	g.loader = levels.LoadAsync(g.ctx, name)
	log.Printf("Game: loading level %q", name)
	return nil
}

func (g *Game) Update() error {
	g.pollLoader()
	g.reloadPrefabs()

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if _, err := entity.RequestLevelUnload(g.world, g.next); err != nil {
			log.Printf("Game: %v", err)
		}
	}

	g.scheduler.Update(g.world)

	var nextLevel string
	unloaded := false
	g.world.Events().Each(ecs.EventLevelUnloaded, func(evt ecs.Event) {
		data, ok := evt.Data.(component.LevelUnloaded)
		if !ok {
			return
		}
		unloaded = true
		nextLevel = data.Next
		if nextLevel == "" {
			nextLevel = data.Name
		}
	})
	if unloaded {
		if err := g.startLevel(nextLevel); err != nil {
			return err
		}
	}

	return nil
}

func (g *Game) pollLoader() {
	geom, done, err := g.loader.Poll()
	if !done {
		return
	}
	g.loader = nil
	if err != nil {
		log.Printf("Game: load level %q: %v", g.name, err)
		return
	}

	lg, ok := ecs.Get(g.world, g.level, component.LevelGeometryComponent.Kind())
	if !ok {
		return
	}
	if lg.MarkLoaded(geom.Vertices, geom.Placement) {
		g.next = geom.Next
		log.Printf("Game: level %q loaded: %d vertices, next %q", geom.Name, len(geom.Vertices), geom.Next)
	}
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	changed := g.watcher.Pending()
	if len(changed) == 0 {
		return
	}

	cfg, err := prefabs.LoadConfig()
	if err != nil {
		log.Printf("Game: reload prefabs %v: %v", changed, err)
		return
	}
	*g.cfg = *cfg
	system.ApplyFollowerSpeeds(g.world, g.cfg.Rail)
	log.Printf("Game: reloaded prefabs %v", changed)
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawWorld(g.world, screen)
	if g.debug {
		render.DrawDebug(g.world, screen)
	}
}

func (g *Game) Close() {
	g.cancel()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
