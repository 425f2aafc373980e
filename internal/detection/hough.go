package detection

import (
	"image"
	"math"
	"sort"
)

// houghThetaSteps quantizes theta into one-degree buckets over [0, 180).
const houghThetaSteps = 180

// maxCandidateLines caps how many accumulator peaks are kept for corner
// finding.
const maxCandidateLines = 20

// houghLines runs a Hough transform over the edge map and returns candidate
// lines sorted by vote count, strongest first.
//
// The accumulator is indexed by (rho, theta): theta in one-degree steps over
// [0, 180), rho as integer pixel offsets in [-diagonal, +diagonal]. Every
// pixel whose edge value exceeds 200 (strong edges only) votes at each theta
// for rho = round(x*cos(theta) + y*sin(theta)). Cells whose vote count
// exceeds 0.3 * max(width, height) become candidates; the top
// maxCandidateLines by votes are returned.
func houghLines(edge *image.NRGBA) []polarLine {
	bounds := edge.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	diagonal := int(math.Ceil(math.Hypot(float64(width), float64(height))))
	accumulator := make([][]int, 2*diagonal+1)
	for i := range accumulator {
		accumulator[i] = make([]int, houghThetaSteps)
	}

	var sinTable, cosTable [houghThetaSteps]float64
	for t := 0; t < houghThetaSteps; t++ {
		rad := float64(t) * math.Pi / 180
		sinTable[t] = math.Sin(rad)
		cosTable[t] = math.Cos(rad)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if edge.Pix[y*edge.Stride+x*4] <= 200 {
				continue
			}
			for t := 0; t < houghThetaSteps; t++ {
				rho := int(math.Round(float64(x)*cosTable[t] + float64(y)*sinTable[t]))
				accumulator[rho+diagonal][t]++
			}
		}
	}

	voteThreshold := 0.3 * float64(max(width, height))
	lines := make([]polarLine, 0, maxCandidateLines)
	for r := range accumulator {
		for t, votes := range accumulator[r] {
			if float64(votes) > voteThreshold {
				lines = append(lines, polarLine{
					rho:   float64(r - diagonal),
					theta: t,
					votes: votes,
				})
			}
		}
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].votes > lines[j].votes
	})
	if len(lines) > maxCandidateLines {
		lines = lines[:maxCandidateLines]
	}
	return lines
}

// classifyLines partitions candidate lines into the two orientation sets
// used for corner finding: "vertical" candidates with theta in (70, 110)
// degrees and "horizontal" candidates with theta below 20 or above 160
// degrees. Lines at other angles are discarded.
func classifyLines(lines []polarLine) (horizontal, vertical []polarLine) {
	for _, l := range lines {
		switch {
		case l.theta > 70 && l.theta < 110:
			vertical = append(vertical, l)
		case l.theta < 20 || l.theta > 160:
			horizontal = append(horizontal, l)
		}
	}
	return horizontal, vertical
}
