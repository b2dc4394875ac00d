package layout

import "github.com/tsawler/docweave/model"

// band is a vertical cluster of regions sharing horizontal extent,
// typically one column of a multi-column page.
type band struct {
	regions []model.Region
	left    float64
	right   float64
}

// add extends the band's horizontal extent with a region.
func (b *band) add(r model.Region) {
	if len(b.regions) == 0 {
		b.left = r.Box.Left
		b.right = r.Box.Right
	} else {
		if r.Box.Left < b.left {
			b.left = r.Box.Left
		}
		if r.Box.Right > b.right {
			b.right = r.Box.Right
		}
	}
	b.regions = append(b.regions, r)
}

// spanOverlap returns the fraction of the narrower of the two
// horizontal intervals covered by their intersection.
func spanOverlap(aLeft, aRight, bLeft, bRight float64) float64 {
	overlap := minFloat(aRight, bRight) - maxFloat(aLeft, bLeft)
	if overlap <= 0 {
		return 0
	}
	narrower := minFloat(aRight-aLeft, bRight-bLeft)
	if narrower <= 0 {
		return 0
	}
	return overlap / narrower
}

// clusterBands groups regions into bands. Two regions belong to the
// same band when their horizontal spans overlap by more than the
// threshold, measured against the narrower span. Membership is
// transitive: a region joins a band if it overlaps any member's
// accumulated extent, and bands that grow into each other are merged.
func clusterBands(regions []model.Region, threshold float64) []*band {
	var bands []*band

	for _, r := range regions {
		var matches []int
		for i, b := range bands {
			if spanOverlap(r.Box.Left, r.Box.Right, b.left, b.right) > threshold {
				matches = append(matches, i)
			}
		}

		switch len(matches) {
		case 0:
			b := &band{}
			b.add(r)
			bands = append(bands, b)
		case 1:
			bands[matches[0]].add(r)
		default:
			// The region bridges several bands: merge them all into the
			// first, then add the region.
			target := bands[matches[0]]
			for k := len(matches) - 1; k >= 1; k-- {
				i := matches[k]
				for _, other := range bands[i].regions {
					target.add(other)
				}
				bands = append(bands[:i], bands[i+1:]...)
			}
			target.add(r)
		}
	}

	return bands
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
