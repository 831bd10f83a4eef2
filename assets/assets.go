package assets

import (
	"embed"
	"fmt"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// Building is one skyline silhouette rectangle from the arena map.
type Building struct {
	X, Y, Width, Height float64
}

// Star is one backdrop star from the arena map.
type Star struct {
	X, Y, Size float64
}

// Arena is the decoded backdrop map. The playfield size comes from the
// map dimensions so the Tiled file stays the single source of truth.
type Arena struct {
	Width     int
	Height    int
	Buildings []Building
	Stars     []Star
}

// MustLoadArena decodes the embedded arena map. The map is an object
// map only (no tile layers), so no tileset imagery is needed.
func MustLoadArena() *Arena {
	return mustLoadArena("levels/arena.tmx")
}

func mustLoadArena(path string) *Arena {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(fmt.Sprintf("Failed to load arena map %s: %v", path, err))
	}

	arena := &Arena{
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Skyline":
			for _, o := range og.Objects {
				arena.Buildings = append(arena.Buildings, Building{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "Stars":
			for _, o := range og.Objects {
				arena.Stars = append(arena.Stars, Star{
					X:    o.X,
					Y:    o.Y,
					Size: o.Width,
				})
			}
		}
	}

	return arena
}
