// Package tides holds the water height data model and the classifier that
// tags a raw height series with its high and low tides. A Source supplies
// raw samples; Classify turns them into a Series that the viewport and
// visualize packages consume without modifying.
package tides
