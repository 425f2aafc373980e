// Package detection locates the document boundary in a photographed page.
//
// The pipeline has two stages. CannyEdges turns a capture into a three-level
// edge map (strong/weak/none). FindDocument then searches that map for the
// document quadrilateral: a Hough transform proposes candidate lines, lines
// are classified by orientation, and corner candidates come from pairwise
// line intersections; when line detection is inconclusive, a contour
// sampling fallback picks extreme points per image quadrant, degrading to a
// padded bounding box if needed.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Corner coordinates are floating-point: intersections and the downstream
// perspective mapping need sub-pixel precision.
//
// # Confidence Scores
//
// A detection carries a confidence in [0, 0.95] derived from the fraction of
// the frame the quadrilateral covers (see CalculateConfidence); ScoreQuad
// additionally penalizes interior angles far from 90 degrees. Detection
// failure is reported as a nil quad with confidence 0, never as an error:
// whether to fall back to the unrectified capture is the caller's policy.
//
// # Performance Considerations
//
// The Hough accumulator is sized by the image diagonal with 180 one-degree
// angle buckets, and voting visits every strong edge pixel at every angle.
// FindDocument therefore runs on a working copy downscaled to 800px on the
// longest side and scales the corners back up afterwards.
//
// # Limitations
//
// Detection is tuned for captures where the page roughly fills the frame
// against a contrasting background. Documents occupying a small corner of
// the image, or pages on visually busy backgrounds, may only be caught by
// the bounding-box fallback or not at all.
package detection
