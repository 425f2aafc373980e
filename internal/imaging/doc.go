// Package imaging provides the raster building blocks of the scan pipeline.
//
// This package implements image loading and caching, the per-pixel and 3x3
// convolution kernel filters (grayscale, Gaussian blur, unsharp-mask sharpen,
// median denoise), document enhancement, rotation, cropping, color sampling
// and PNG encoding. All operations work on standard Go image types and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Filter Contract
//
// Every filter is a pure function from image to image: it preserves the
// input dimensions, never writes through the input, copies the alpha channel
// unchanged and returns a freshly allocated raster. For 3x3 convolutions the
// border row/column is not convolved but copied verbatim from the source, so
// the output never contains undefined pixels and filters compose
// predictably. Given the same input and parameters, every filter returns
// byte-identical output.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The filters are stateless
// and allocate their own working buffers, so separate captures may be
// processed concurrently without locking; each call is independently
// CPU-bound.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Invalid region specifications (x1 >= x2 or y1 >= y2)
//   - File I/O errors during image loading
//   - Encoding errors during image output
//
// Filters themselves cannot fail and return no error.
package imaging
