// Package model defines the data types shared across colorscan.
//
// The types mirror what the gallery application stores in colors.db:
// dominant-color rows keyed by file path, a lifecycle status per
// extraction job, and a JSON-encoded palette. The package also defines
// the InspectReport structure that the inspector fills in and the
// report writers render.
package model
