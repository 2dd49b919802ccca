// Command softras-demo renders the softras demo scene to a PNG file or,
// with -term, as a text preview on the terminal.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/softras"
	"github.com/gogpu/softras/bdf"
	"github.com/gogpu/softras/internal/demo"
)

func main() {
	var (
		width    = flag.Int("width", 512, "image width")
		height   = flag.Int("height", 512, "image height")
		fontPath = flag.String("font", "", "BDF font file (default: built-in 6x8)")
		output   = flag.String("output", "demo.png", "output file")
		frame    = flag.Int("frame", 0, "animation frame to render")
		preview  = flag.Bool("term", false, "print a text preview instead of writing a PNG")
		strict   = flag.Bool("strict-clamp", false, "clamp function plots on the bottom edge only; plots leaving the top edge panic")
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
		log.Fatalf("Image must be at least %dx%d", demo.MinSize, demo.MinSize)
	}

	var opts []softras.Option
	if *strict {
		opts = append(opts, softras.WithClampPolicy(softras.ClampUpper))
	}
	pm := softras.NewPixmap(*width, *height)
	r := softras.NewRasterizer(pm, opts...)

	if err := demo.Draw(r, f, *frame); err != nil {
		if !errors.Is(err, bdf.ErrGlyphNotFound) {
			log.Fatalf("Failed to draw: %v", err)
		}
		log.Printf("Some glyphs are missing from the font: %v", err)
	}
	demo.LogCacheStats(f)

	if *preview {
		cols, rows := previewSize()
		if err := writePreview(os.Stdout, pm, cols, rows); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		return
	}

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// previewSize returns the terminal size, or 80x24 when stdout is not a
// terminal.
func previewSize() (cols, rows int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80, 24
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 || rows <= 1 {
		return 80, 24
	}
	return cols, rows - 1
}

// ramp maps brightness to characters, darkest first.
const ramp = " .:-=+*#%@"

// writePreview prints pm downsampled to at most cols x rows characters.
func writePreview(w io.Writer, pm *softras.Pixmap, cols, rows int) error {
	// Terminal cells are about twice as tall as they are wide.
	sx := max((pm.Width()+cols-1)/cols, 1)
	sy := max(sx*2, (pm.Height()+rows-1)/rows)

	var sb strings.Builder
	for y := 0; y < pm.Height(); y += sy {
		for x := 0; x < pm.Width(); x += sx {
			sb.WriteByte(ramp[brightness(pm, x, y, sx, sy)*(len(ramp)-1)/255])
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// brightness returns the brightest luma in the sx x sy block at (x, y),
// so thin lines survive the downsampling.
func brightness(pm *softras.Pixmap, x, y, sx, sy int) int {
	best := 0
	for j := y; j < min(y+sy, pm.Height()); j++ {
		for i := x; i < min(x+sx, pm.Width()); i++ {
			c := pm.GetPixel(i, j)
			l := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
			best = max(best, l)
		}
	}
	return best
}
