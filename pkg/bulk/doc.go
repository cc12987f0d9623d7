// Package bulk validates many postcodes at once.
//
// Check fans the candidates out over a bounded pool of goroutines and
// returns the results in input order. ReadLines collects candidates from a
// line-oriented source, and Encode writes results as text, JSON or YAML.
package bulk
