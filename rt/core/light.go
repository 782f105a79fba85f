package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightPositions are the capture stations, visited in order. Station L is
// LightPositions[L-1], so capture files numbered L use the position one
// slot earlier than older captures, which started at the second entry.
var LightPositions = [10]mgl32.Vec3{
	{0, 0, 0},
	{1, 1, 3},
	{2, -2, 1},
	{3, 3, 5},
	{4, 4, -1},
	{-2, 5, 0.3},
	{-4, 6, 3},
	{-5, 7, -3},
	{5, -8, 0},
	{3, 9, -1},
}

// LightAt maps a one-based light index onto LightPositions, clamping out of
// range values to the nearest station.
func LightAt(index int) mgl32.Vec3 {
	i := min(max(index, 1), len(LightPositions))
	return LightPositions[i-1]
}
