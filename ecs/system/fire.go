package system

import (
	"log"

	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
	"github.com/milk9111/railshooter/ecs/entity"
	"github.com/milk9111/railshooter/nav"
	"github.com/milk9111/railshooter/prefabs"
)

// FireSystem spawns a bullet ahead of the player when fire was pressed.
type FireSystem struct {
	cfg *prefabs.Config
}

func NewFireSystem(cfg *prefabs.Config) *FireSystem {
	if cfg == nil {
		cfg = &prefabs.Config{}
	}
	return &FireSystem{cfg: cfg}
}

func (s *FireSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		func(_ ecs.Entity, p *component.Player, in *component.Input, t *component.Transform) {
			if !in.FirePressed {
				return
			}
			in.FirePressed = false

			ship := t.Nav()
			forward := ship.Forward()
			muzzle := nav.Transform{
				Position: ship.Position.Add(forward.Mul(p.MuzzleOffset)),
				Rotation: ship.Rotation,
			}
			if _, err := entity.NewBullet(w, s.cfg.Bullet, muzzle, forward.Mul(p.BulletSpeed)); err != nil {
				log.Printf("Fire: %v", err)
			}
		})
}
