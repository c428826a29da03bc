// Package xbm encodes and decodes the X BitMap (XBM) textual image
// format: C-like source declaring a width, a height, an optional cursor
// hotspot and a static array of packed pixel bytes.
//
// Decode and Encode are pure in-memory transforms with no I/O of their
// own and are safe to call concurrently on independent inputs.
package xbm
