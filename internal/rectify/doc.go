// Package rectify maps a detected document quadrilateral onto an
// axis-aligned output canvas, correcting the perspective skew of a
// photographed page.
//
// The transform is a direct inverse-mapping rasterizer: for every output
// pixel the corresponding source location is found by bilinear interpolation
// along the quad's edges and sampled at the nearest integer pixel. A full
// matrix homography is intentionally not used; document corners from the
// detection package are well-behaved enough that edge interpolation gives
// visually equivalent results at a fraction of the complexity.
package rectify
