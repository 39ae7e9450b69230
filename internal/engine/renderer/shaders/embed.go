// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LitVertexShader transforms scene objects and passes world-space
// attributes to the lighting stage.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader shades scene objects with the light array and fog.
//
//go:embed lit.frag
var LitFragmentShader string

// GizmoVertexShader is the vertex shader for light markers.
//
//go:embed gizmo.vert
var GizmoVertexShader string

// GizmoFragmentShader draws light markers in a flat color.
//
//go:embed gizmo.frag
var GizmoFragmentShader string
