// Package coverage estimates coverage radii from sampled path-loss curves and
// evaluates simple multi-tower layouts.
//
// The radius search is a sampled approximation. It never interpolates between
// samples and does not assume the loss curve is monotonic, so the caller must
// supply a dense enough sweep.
package coverage
