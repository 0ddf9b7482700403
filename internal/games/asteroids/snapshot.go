package asteroids

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// BodySnapshot is the observable state of one entity.
type BodySnapshot struct {
	ID     uint64  `msgpack:"id"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	VX     float64 `msgpack:"vx"`
	VY     float64 `msgpack:"vy"`
	Radius float64 `msgpack:"r"`
}

// Snapshot captures the complete simulation state for determinism testing.
type Snapshot struct {
	Tick        uint64         `msgpack:"tick"`
	State       string         `msgpack:"state"`
	Player      BodySnapshot   `msgpack:"player"`
	Rotation    float64        `msgpack:"rotation"`
	Cooldown    float64        `msgpack:"cooldown"`
	Asteroids   []BodySnapshot `msgpack:"asteroids"`
	Projectiles []BodySnapshot `msgpack:"projectiles"`
}

func snapshotBody(b *Body) BodySnapshot {
	return BodySnapshot{
		ID:     uint64(b.id),
		X:      b.Pos.X,
		Y:      b.Pos.Y,
		VX:     b.Vel.X,
		VY:     b.Vel.Y,
		Radius: b.Radius,
	}
}

// Snapshot returns the current simulation snapshot.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     s.tick,
		State:    s.state.String(),
		Player:   snapshotBody(&s.player.body),
		Rotation: s.player.rotation,
		Cooldown: s.player.cooldown,
	}
	for _, e := range s.world.Members(RoleAsteroid) {
		snap.Asteroids = append(snap.Asteroids, snapshotBody(e.Body()))
	}
	for _, e := range s.world.Members(RoleProjectile) {
		snap.Projectiles = append(snap.Projectiles, snapshotBody(e.Body()))
	}
	return snap
}

// Snapshot returns the game snapshot, or an empty one before Reset.
func (g *Game) Snapshot() Snapshot {
	if g.sim == nil {
		return Snapshot{}
	}
	return g.sim.Snapshot()
}

// Encode serializes the snapshot with msgpack.
func (snap Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("asteroids: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("asteroids: decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns a simple hash of the encoded snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	data, err := snap.Encode()
	if err != nil {
		return 0
	}
	h := uint64(len(data))
	for _, b := range data {
		h = h*31 + uint64(b)
	}
	return h
}
