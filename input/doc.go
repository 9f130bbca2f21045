// Package input loads JSON, YAML and MessagePack documents into Go values
// which gomap.Value can encode.
//
// Objects load as gomap.Ordered so that their key order survives a round
// trip, repeated JSON keys included. Integers load as int64, or uint64 when
// they do not fit; other JSON numbers load as float64.
package input
