package spacallax

import (
	"fmt"

	"github.com/vovakirdan/spacallax/internal/core"
)

// Owner tags which side fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// Bullet is a pooled projectile slot.
type Bullet struct {
	Pos    core.Vec2
	Size   float64
	Active bool
}

// BulletRef is a handle to a slot in the pool of its owner.
type BulletRef struct {
	owner Owner
	slot  int
}

// Owner returns the pool the handle belongs to.
func (r BulletRef) Owner() Owner {
	return r.owner
}

// Pool is a grow-only slot arena of projectiles for one owner.
// Free slots form a LIFO stack. A slot is either active and referenced by
// exactly one live handle, or inactive and on the free stack.
type Pool struct {
	owner Owner
	size  float64
	slots []Bullet
	free  []int
}

// NewPool creates an empty pool whose projectiles all have the given size.
func NewPool(owner Owner, size float64) *Pool {
	return &Pool{owner: owner, size: size}
}

// Acquire activates a projectile at pos, reusing the most recently
// released slot when one is available.
func (p *Pool) Acquire(pos core.Vec2) BulletRef {
	var slot int
	if n := len(p.free); n > 0 {
		slot = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		slot = len(p.slots)
		p.slots = append(p.slots, Bullet{})
	}
	p.slots[slot] = Bullet{Pos: pos, Size: p.size, Active: true}
	return BulletRef{owner: p.owner, slot: slot}
}

// Release deactivates the projectile and returns its slot to the free
// stack. Releasing a handle of the other owner, an unknown slot, or an
// already released slot panics.
func (p *Pool) Release(ref BulletRef) {
	b := p.mustGet(ref, "release")
	b.Active = false
	p.free = append(p.free, ref.slot)
}

// Get returns the projectile behind an active handle.
func (p *Pool) Get(ref BulletRef) *Bullet {
	return p.mustGet(ref, "get")
}

func (p *Pool) mustGet(ref BulletRef, op string) *Bullet {
	if ref.owner != p.owner {
		panic(fmt.Sprintf("spacallax: %s of %s bullet on %s pool", op, ref.owner, p.owner))
	}
	if ref.slot < 0 || ref.slot >= len(p.slots) {
		panic(fmt.Sprintf("spacallax: %s of unknown %s bullet slot %d", op, p.owner, ref.slot))
	}
	b := &p.slots[ref.slot]
	if !b.Active {
		panic(fmt.Sprintf("spacallax: %s of inactive %s bullet slot %d", op, p.owner, ref.slot))
	}
	return b
}

// Owner returns the owner tag fixed at construction.
func (p *Pool) Owner() Owner {
	return p.owner
}

// Free returns the number of pooled (inactive) slots.
func (p *Pool) Free() int {
	return len(p.free)
}

// Cap returns the number of slots ever allocated.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// InUse returns the number of active slots.
func (p *Pool) InUse() int {
	return len(p.slots) - len(p.free)
}
