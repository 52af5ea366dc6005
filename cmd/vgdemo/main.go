// Command vgdemo renders a few VGLite drawing calls to a PNG file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/vglite"
)

func main() {
	var (
		width   = flag.Int("width", 320, "image width")
		height  = flag.Int("height", 240, "image height")
		output  = flag.String("output", "vgdemo.png", "output file")
		verbose = flag.Bool("v", false, "log renderer activity")
	)
	flag.Parse()

	if *verbose {
		vglite.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, err := vglite.NewContext()
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	target, err := ctx.Allocator().Allocate(*width, *height, vglite.FormatBGRA8888)
	if err != nil {
		log.Fatalf("Failed to allocate target: %v", err)
	}

	w, h := float32(*width), float32(*height)
	if err := ctx.Clear(target, nil, vglite.Hex("#1e2a3a")); err != nil {
		log.Fatal(err)
	}
	if err := drawBanner(ctx, target, w); err != nil {
		log.Fatal(err)
	}
	if err := drawStar(ctx, target, w, h); err != nil {
		log.Fatal(err)
	}
	if err := drawChecker(ctx, target, h); err != nil {
		log.Fatal(err)
	}
	if err := ctx.Close(); err != nil {
		log.Fatal(err)
	}

	if err := target.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawBanner fills a strip along the top with a linear gradient.
func drawBanner(ctx *vglite.Context, target *vglite.Buffer, w float32) error {
	path, err := rect(8, 8, w-8, 40)
	if err != nil {
		return err
	}
	g := vglite.NewLinearGradient()
	g.Allocator = ctx.Allocator()
	stops := []vglite.RampStop{
		{Stop: 0, R: 0.95, G: 0.35, B: 0.2, A: 1},
		{Stop: 0.5, R: 1, G: 0.85, B: 0.3, A: 1},
		{Stop: 1, R: 0.2, G: 0.7, B: 0.9, A: 1},
	}
	if err := g.Set(stops, vglite.LinearParams{X0: 8, Y0: 0, X1: w - 8, Y1: 0}, vglite.SpreadPad, false); err != nil {
		return err
	}
	if err := g.Update(); err != nil {
		return err
	}
	return ctx.DrawLinearGradient(target, path, vglite.FillNonZero, nil, g, vglite.BlendSrcOver)
}

// drawStar fills a rotated five point star.
func drawStar(ctx *vglite.Context, target *vglite.Buffer, w, h float32) error {
	cx, cy, r := w*0.65, h*0.6, h*0.3
	pts := [5][2]float32{{0, -1}, {0.951, 0.309}, {-0.951, 0.309}, {0.588, -0.809}, {-0.588, 0.809}}
	order := [5]int{0, 3, 1, 4, 2}

	enc := vglite.NewPathEncoder(vglite.DataFP32)
	for i, k := range order {
		x, y := cx+pts[k][0]*r, cy+pts[k][1]*r
		if i == 0 {
			enc.MoveTo(x, y)
		} else {
			enc.LineTo(x, y)
		}
	}
	path, err := enc.Close().End().Path(vglite.QualityHigh)
	if err != nil {
		return err
	}
	rot := vglite.Translate(cx, cy).Multiply(vglite.Rotate(12)).Multiply(vglite.Translate(-cx, -cy))
	return ctx.Draw(target, path, vglite.FillEvenOdd, &rot, vglite.BlendSrcOver, vglite.ARGB(0xE0, 0xFF, 0xD7, 0x00))
}

// drawChecker blits a tiny INDEX_1 checkerboard scaled up by 10.
func drawChecker(ctx *vglite.Context, target *vglite.Buffer, h float32) error {
	if err := ctx.SetCLUT([]vglite.Color{vglite.White, vglite.Hex("#c03030")}); err != nil {
		return err
	}
	src, err := ctx.Allocator().Allocate(8, 8, vglite.FormatIndex1)
	if err != nil {
		return err
	}
	for y := 0; y < 8; y++ {
		row := src.Row(y)
		if y%2 == 0 {
			row[0] = 0xAA
		} else {
			row[0] = 0x55
		}
	}
	m := vglite.Translate(16, h*0.3).Multiply(vglite.Scale(10, 10))
	return ctx.Blit(target, src, &m, vglite.BlendSrcOver, 0, vglite.FilterPoint)
}

func rect(x0, y0, x1, y1 float32) (*vglite.Path, error) {
	return vglite.NewPathEncoder(vglite.DataFP32).
		MoveTo(x0, y0).LineTo(x1, y0).LineTo(x1, y1).LineTo(x0, y1).Close().
		End().Path(vglite.QualityHigh)
}
