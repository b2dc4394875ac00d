// Package model defines the core data types shared by every stage of the
// document reconstruction pipeline: geometry in named coordinate spaces,
// pages with their native text layer, classified regions, resolved text
// tokens, assembled tables, and the final document tree.
//
// All types in this package are plain values created fresh for one
// conversion run and discarded once the document tree has been produced.
package model
