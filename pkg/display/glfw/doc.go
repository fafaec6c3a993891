// Package glfw provides a display driver using GLFW and OpenGL. It
// is left out of builds with the ebiten tag, as both claim the main
// thread.
package glfw
