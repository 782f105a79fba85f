package shaders

import (
	_ "embed"
)

//go:embed point_shadows.vert
var PointShadowsVert string

//go:embed point_shadows.frag
var PointShadowsFrag string

//go:embed depth.vert
var DepthVert string

//go:embed depth.geom
var DepthGeom string

//go:embed depth.frag
var DepthFrag string
