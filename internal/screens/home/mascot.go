package home

import (
	"charm.land/lipgloss/v2"

	"github.com/deskpet/deskpet/internal/ui/theme"
)

// MascotVariant selects which pet art to display.
type MascotVariant int

const (
	MascotIdle    MascotVariant = iota // Default purple
	MascotHappy                        // Recent chat activity
	MascotCurious                      // Focus pattern detected on screen
)

const mascotIdle = ` /\_/\
( o.o )
 > ^ <`

const mascotHappy = ` /\_/\
( ^.^ )
 > ♥ <`

const mascotCurious = ` /\_/\
( o.o )?
 > ~ <`

// RenderMascot returns the pet ASCII art for the given variant.
func RenderMascot(variant MascotVariant) string {
	var art string
	fg := theme.Primary

	switch variant {
	case MascotHappy:
		art = mascotHappy
		fg = theme.Success
	case MascotCurious:
		art = mascotCurious
		fg = theme.Accent
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
