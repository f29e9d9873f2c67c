package arena

import (
	"math"
	"testing"

	"github.com/oliverbestmann/arena/gm"
	"github.com/stretchr/testify/require"
)

func TestFireProjectile(t *testing.T) {
	world := NewWorld()
	commands := NewCommands(world)

	shooter := world.SpawnBody(testBody("shooter"))
	transform := Transform{Translation: gm.Vec{X: 10, Y: 20}}

	projectileId := FireProjectile(commands, shooter, transform, gm.Rad(math.Pi/2), DefaultWeapon)
	require.False(t, world.IsAlive(projectileId))

	commands.Apply()

	projectile, ok := world.Body(projectileId)
	require.True(t, ok)

	require.Equal(t, gm.Vec{X: 10, Y: 20}, projectile.Transform.Translation)
	require.InDelta(t, 0, projectile.RigidBody.Velocity.X, 1e-9)
	require.InDelta(t, DefaultWeapon.ShotSpeed, projectile.RigidBody.Velocity.Y, 1e-9)

	require.Equal(t, DefaultWeapon.Mass, projectile.RigidBody.Mass)
	require.Equal(t, Hitbox{Shape: HitboxCircle, Width: 2, Height: 2}, projectile.RigidBody.Hitbox)
	require.Equal(t, Some(shooter), projectile.RigidBody.ExcludedPeer)
	require.Equal(t, &Bounce{MaxBounces: Some[uint32](2)}, projectile.RigidBody.Policy)

	lifetime, ok := projectile.Lifetime.Get()
	require.True(t, ok)
	require.Equal(t, DefaultWeapon.Lifetime, lifetime.Duration())
}

func TestFireProjectileWithoutLifetime(t *testing.T) {
	world := NewWorld()
	commands := NewCommands(world)

	weapon := DefaultWeapon
	weapon.Lifetime = 0

	projectileId := FireProjectile(commands, NoEntityId, Transform{}, 0, weapon)
	commands.Apply()

	projectile, _ := world.Body(projectileId)
	require.False(t, projectile.Lifetime.IsSome())
}
