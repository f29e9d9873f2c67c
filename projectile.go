package arena

import (
	"time"

	"github.com/oliverbestmann/arena/gm"
)

// Weapon describes the projectiles a shooter fires.
type Weapon struct {
	ShotSpeed float64
	Bounces   uint32
	Lifetime  time.Duration

	// Diameter of the projectiles hitbox
	Caliber float64
	Mass    float64
}

// DefaultWeapon fires small projectiles that bounce twice before they vanish.
var DefaultWeapon = Weapon{
	ShotSpeed: 300,
	Bounces:   2,
	Lifetime:  3 * time.Second,
	Caliber:   2,
	Mass:      0.01,
}

// FireProjectile queues the spawn of a projectile at the shooters position, flying into
// the direction of aim. The projectile never collides with its shooter.
func FireProjectile(commands *Commands, shooterId EntityId, shooter Transform, aim gm.Rad, weapon Weapon) EntityId {
	projectile := Body{
		Name: "projectile",
		Transform: Transform{
			Translation: shooter.Translation,
			Rotation:    aim.Normalized(),
		},
		RigidBody: RigidBody{
			Velocity: gm.VecFromAngle(aim).Mul(weapon.ShotSpeed),
			Mass:     weapon.Mass,
			Hitbox: Hitbox{
				Shape:  HitboxCircle,
				Width:  weapon.Caliber,
				Height: weapon.Caliber,
			},
			Policy: &Bounce{
				MaxBounces: Some(weapon.Bounces),
			},
			ExcludedPeer: Some(shooterId),
		},
	}

	if weapon.Lifetime > 0 {
		projectile.Lifetime = DespawnAfter(weapon.Lifetime)
	}

	return commands.SpawnBody(projectile).Id()
}
