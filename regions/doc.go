// Package regions adapts raw layout-model output into typed, page-space
// regions. It maps the model's class labels onto the closed region class
// set, converts boxes from model space into page space, and applies the
// configured confidence floor.
package regions
