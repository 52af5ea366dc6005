// Package vglite implements the VGLite vector drawing API on top of a
// software 2D renderer.
//
// # Overview
//
// VGLite clients describe geometry as compact binary path streams, hand in
// pixel buffers in dozens of packed, indexed, alpha-only and YUV encodings,
// and fill shapes with solid colors, images or gradients. vglite decodes all
// of that into a form a general purpose renderer understands:
//
//   - [DecodePath] turns an opcode stream into move, line, cubic and close
//     primitives, converting quadratic segments to cubics.
//   - [Unpacker] converts any supported [Format] into canonical BGRA8888.
//   - [LinearGradient], [RadialGradient] and [Gradient] bake color ramps into
//     gradient images.
//
// # Quick Start
//
//	ctx, err := vglite.NewContext()
//	if err != nil {
//		return err
//	}
//	target, _ := ctx.Allocator().Allocate(256, 256, vglite.FormatBGRA8888)
//
//	enc := vglite.NewPathEncoder(vglite.DataFP32)
//	enc.MoveTo(16, 16)
//	enc.LineTo(240, 16)
//	enc.LineTo(128, 240)
//	enc.End()
//	path, _ := enc.Path(vglite.QualityHigh)
//
//	_ = ctx.Clear(target, nil, vglite.White)
//	_ = ctx.Draw(target, path, vglite.FillNonZero, nil, vglite.BlendSrcOver, vglite.Red)
//	_ = ctx.Finish()
//	_ = target.SavePNG("triangle.png")
//
// # Rendering
//
// Drawing calls queue commands on a [Renderer]; [Context.Finish] renders
// them. The default [SoftwareRenderer] rasterizes with
// golang.org/x/image/vector and resamples images with golang.org/x/image/draw.
// Targets must be BGRA8888.
//
// # Unsupported features
//
// Hardware specific parts of the API (scissoring, global alpha, color keys,
// buffer mapping, arc paths and radial gradient drawing) return
// [ErrNotSupported].
//
// # Logging
//
// vglite is silent by default. See [SetLogger] and [WithLogger].
package vglite
