// Package ebiten provides a display driver built on ebiten. It is
// only installed in builds with the ebiten tag, as ebiten and glfw
// both claim the main thread.
package ebiten
