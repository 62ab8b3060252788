// Package ui holds what the terminal popups share.
package ui

// Base stores the content area a popup was given. Embed it to get
// SetSize, Width and Height.
type Base struct {
	width, height int
}

// SetSize records the content area.
func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

// Width returns the content width.
func (b Base) Width() int { return b.width }

// Height returns the content height.
func (b Base) Height() int { return b.height }

// Sized reports whether the popup has a non-empty area to draw in.
func (b Base) Sized() bool { return b.width > 0 && b.height > 0 }
