package constants

// Palette is the cyclic colour list handed out to contacts and confetti
var Palette = [...]string{
	"red",
	"green",
	"blue",
	"orange",
	"purple",
	"cyan",
	"magenta",
	"yellow",
	"lime",
	"pink",
	"teal",
	"brown",
	"navy",
	"maroon",
	"olive",
	"gray",
	"coral",
	"turquoise",
	"violet",
	"gold",
}

// PaletteSize is the number of colours in Palette
const PaletteSize = len(Palette)
