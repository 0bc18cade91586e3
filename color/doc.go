// Package color models colors in the RGB, HSL, CIE Lab, CIE LCh (HCL) and
// Cubehelix spaces and converts between them without structural precision
// loss.
//
// 🚀 Spaces:
//
//	RGB        sRGB channels on [0, 255] (unclamped until formatted)
//	HSL        hue in degrees, saturation and lightness on [0, 1]
//	Lab        CIE L*a*b* relative to the D50 white point
//	HCL        polar Lab: hue, chroma, luminance
//	Cubehelix  Green's helical ramp through the RGB cube
//
// Every value carries an Opacity on [0, 1] and is immutable: Brighter,
// Darker, Clamp and WithOpacity return new values.
//
// ✨ Conversions follow sRGB ↔ linear RGB ↔ XYZ(D50) ↔ Lab ↔ LCh and
// RGB ↔ HSL, RGB ↔ Cubehelix. Achromatic colors report hue (and sometimes
// saturation or chroma) as NaN, meaning "undefined": interpolators treat an
// undefined channel as equal to the other endpoint.
//
// ⚙️ Parsing accepts CSS forms:
//
//	#rgb  #rgba  #rrggbb  #rrggbbaa
//	rgb(255, 0, 0)  rgb(100%, 0%, 0%)  rgba(255, 0, 0, 0.5)
//	hsl(120, 50%, 50%)  hsla(120, 50%, 50%, 0.3)
//	steelblue  rebeccapurple  transparent
//
// All types implement image/color.Color so they can be handed directly to
// image/draw or any plotting library.
package color
