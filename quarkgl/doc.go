// Package quarkgl provides a small, predictable software 3D engine.
//
// QuarkGL is meant for simple scenes: primitive meshes arranged in a node
// hierarchy, one perspective camera, one directional light and orbit-style
// camera interaction. It is not a game engine and does not talk to a GPU.
//
// Pipeline (fixed):
//
//	Scene graph → World transform → Projection → Clipping → Rasterization → Target.
//
// The renderer is software-only and draws into a caller-provided Target. Vector
// and matrix math is delegated to mgl32 (column-major, OpenGL conventions).
package quarkgl
