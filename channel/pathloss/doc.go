// Package pathloss implements closed-form radio propagation loss models.
//
// All models share one unit convention: distance in kilometres, frequency in
// MHz, antenna heights in metres and loss in dB. Each model is a parameter
// struct with a Validate predicate and a Loss method; [Curve] maps a model over
// a distance sweep.
//
// Logarithms are floored at [core.Epsilon], so a zero distance yields a finite
// loss instead of -Inf.
package pathloss
