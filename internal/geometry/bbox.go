package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// BoundingBox represents an axis-aligned 3D bounding box
type BoundingBox struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
	empty            bool
}

// NewBoundingBox returns a box containing no points. Extend grows it.
func NewBoundingBox() *BoundingBox {
	return &BoundingBox{empty: true}
}

// Empty reports whether no point has been added yet
func (b *BoundingBox) Empty() bool {
	return b.empty
}

// Extend grows the box to contain p
func (b *BoundingBox) Extend(p r3.Vector) {
	if b.empty {
		b.MinX, b.MinY, b.MinZ = p.X, p.Y, p.Z
		b.MaxX, b.MaxY, b.MaxZ = p.X, p.Y, p.Z
		b.empty = false
		return
	}
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MinZ = math.Min(b.MinZ, p.Z)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
	b.MaxZ = math.Max(b.MaxZ, p.Z)
}

// Contains reports whether p lies inside the box, allowing tol slack on every side
func (b *BoundingBox) Contains(p r3.Vector, tol float64) bool {
	if b.empty {
		return false
	}
	return p.X >= b.MinX-tol && p.X <= b.MaxX+tol &&
		p.Y >= b.MinY-tol && p.Y <= b.MaxY+tol &&
		p.Z >= b.MinZ-tol && p.Z <= b.MaxZ+tol
}

// Width returns the width (X dimension) of the bounding box
func (b *BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the height (Y dimension) of the bounding box
func (b *BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// Depth returns the depth (Z dimension) of the bounding box
func (b *BoundingBox) Depth() float64 {
	return b.MaxZ - b.MinZ
}

// Center returns the midpoint of the box
func (b *BoundingBox) Center() r3.Vector {
	return r3.Vector{
		X: (b.MinX + b.MaxX) / 2,
		Y: (b.MinY + b.MaxY) / 2,
		Z: (b.MinZ + b.MaxZ) / 2,
	}
}
