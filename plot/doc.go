// Package plot renders quick-look images of models and prepared geometry:
// heatmaps of a grid.Model (x right, z down, matching the solver's array
// convention), acquisition-geometry overlays, and single-column depth
// profiles as line charts.
//
// The heatmap path draws straight into an image.RGBA with a jet-style
// colormap; profiles go through go-chart. Both end in PNG files, the
// format the surrounding tooling expects for run documentation.
//
// Rendering is a sink: nothing here feeds back into the preparation
// pipeline, and no function mutates the model it draws.
package plot
