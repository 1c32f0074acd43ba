package dh

import (
	"fmt"

	"github.com/philipparndt/go4dof/internal/geometry"
)

// Chain holds the per-joint transforms of one configuration and their
// cumulative products.
type Chain struct {
	// Links[i] is H(i→i+1).
	Links [Joints]geometry.Transform
	// Frames[i] is H(0→i+1) = Links[0]·…·Links[i].
	Frames [Joints]geometry.Transform
}

// Forward evaluates the chain for joint angles q (radians).
func Forward(t Table, q [Joints]float64) Chain {
	var c Chain
	acc := geometry.Identity()
	for i := 0; i < Joints; i++ {
		c.Links[i] = Transform(q[i], t[i])
		acc = mustHomogeneous(acc.Mul(c.Links[i]), i+1)
		c.Frames[i] = acc
	}
	return c
}

// Partial returns H(0→n) for the first n = len(q) joints. It panics when
// more angles than joints are given.
func Partial(t Table, q ...float64) geometry.Transform {
	if len(q) > Joints {
		panic(fmt.Sprintf("dh: %d joint angles for a %d joint table", len(q), Joints))
	}
	acc := geometry.Identity()
	for i, u := range q {
		acc = mustHomogeneous(acc.Mul(Transform(u, t[i])), i+1)
	}
	return acc
}

// Frame returns H(0→i); Frame(0) is the identity.
func (c Chain) Frame(i int) geometry.Transform {
	if i == 0 {
		return geometry.Identity()
	}
	return c.Frames[i-1]
}

// End returns H(0→4).
func (c Chain) End() geometry.Transform {
	return c.Frames[Joints-1]
}

// Tool returns the tool frame H(0→4)·Flange.
func (c Chain) Tool() geometry.Transform {
	return mustHomogeneous(c.End().Mul(Flange()), Joints)
}

// mustHomogeneous panics when a product lost its [0 0 0 1] bottom row,
// which only happens if a builder produced a malformed matrix.
func mustHomogeneous(h geometry.Transform, frame int) geometry.Transform {
	if !h.IsHomogeneous() {
		panic(fmt.Sprintf("dh: frame %d bottom row is %v, want [0 0 0 1]", frame, h[3]))
	}
	return h
}
