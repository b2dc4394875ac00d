// Package layout determines the reading order of classified page
// regions. Regions are clustered into vertical bands (columns) by
// horizontal-span overlap, bands are read left to right, regions within
// a band top to bottom. Page headers always lead and page footers
// always trail their page, and pages concatenate in page-index order
// into a single document-wide sequence.
package layout
