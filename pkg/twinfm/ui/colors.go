package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/twinfm/twinfm/pkg/files"
)

var extColors = map[string]tcell.Color{
	"go":   tcell.ColorAqua,
	"rs":   tcell.ColorOrange,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"cpp":  tcell.ColorDodgerBlue,
	"py":   tcell.ColorLightGreen,
	"rb":   tcell.ColorRed,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"sh":   tcell.ColorGreen,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"json": tcell.ColorGold,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"toml": tcell.ColorLightYellow,
	"xml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"txt":  tcell.ColorWhite,
	"csv":  tcell.ColorLightGreen,
	"log":  tcell.ColorRosyBrown,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"webp": tcell.ColorMediumPurple,
	"mp4":  tcell.ColorLightSalmon,
	"mkv":  tcell.ColorLightSalmon,
	"pdf":  tcell.ColorIndianRed,
	"zip":  tcell.ColorKhaki,
	"gz":   tcell.ColorKhaki,
	"tar":  tcell.ColorKhaki,
	"xz":   tcell.ColorKhaki,
}

// ColorByEntry picks the listing color: kind first, extension second.
func ColorByEntry(e files.FileInfo) tcell.Color {
	switch e.Kind {
	case files.KindDirectory:
		return tcell.ColorAqua
	case files.KindSymlink:
		return tcell.ColorTurquoise
	case files.KindBlockDevice, files.KindCharDevice:
		return tcell.ColorYellow
	case files.KindFifo, files.KindSocket:
		return tcell.ColorOrchid
	}
	if color, ok := extColors[e.Ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
