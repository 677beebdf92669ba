// Package theme handles the color schemes applied to the widget.
// It holds the five built-in schemes, picks a random scheme different from the
// last one applied, and converts the CSS color values of a scheme (hex, rgba
// and linear-gradient) into terminal colors for rendering.
package theme
