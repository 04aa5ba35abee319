// Package scene holds the viewer's mutable scene state and its fixed lighting setup.
package scene
