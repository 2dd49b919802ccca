// Command softras-view shows the softras demo scene in a window, drawing
// a new frame into the pixmap on every tick.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/softras"
	"github.com/gogpu/softras/bdf"
	"github.com/gogpu/softras/internal/demo"
)

type viewer struct {
	pm    *softras.Pixmap
	r     *softras.Rasterizer
	font  *bdf.Font
	img   *ebiten.Image
	frame int
	warn  bool
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	v.frame++
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	// A minimized window shows nothing; skip the frame entirely.
	if ebiten.IsWindowMinimized() {
		return
	}

	if err := demo.Draw(v.r, v.font, v.frame); err != nil && !v.warn {
		v.warn = true
		if errors.Is(err, bdf.ErrGlyphNotFound) {
			log.Printf("Some glyphs are missing from the font: %v", err)
		} else {
			log.Printf("Failed to draw: %v", err)
		}
	}

	if v.img == nil {
		v.img = ebiten.NewImage(v.pm.Width(), v.pm.Height())
	}
	v.img.WritePixels(v.pm.Data())
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.pm.Width(), v.pm.Height()
}

func main() {
	var (
		width    = flag.Int("width", 512, "framebuffer width")
		height   = flag.Int("height", 512, "framebuffer height")
		zoom     = flag.Int("zoom", 1, "window scale factor")
		fontPath = flag.String("font", "", "BDF font file (default: built-in 6x8)")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		softras.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	f := demo.Font()
	if *fontPath != "" {
		var err error
		if f, err = bdf.Load(*fontPath); err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
	}
	if *width < demo.MinSize || *height < demo.MinSize {
		log.Fatalf("Framebuffer must be at least %dx%d", demo.MinSize, demo.MinSize)
	}

	pm := softras.NewPixmap(*width, *height)
	v := &viewer{pm: pm, r: softras.NewRasterizer(pm), font: f}

	ebiten.SetWindowTitle("softras")
	ebiten.SetWindowSize(*width**zoom, *height**zoom)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(v)
	demo.LogCacheStats(f)
	if err != nil {
		log.Fatal(err)
	}
}
