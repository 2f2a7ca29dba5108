// Package textutil holds small string helpers shared by the CLI and the media
// packages: duration formatting for listings and summaries, and Unicode
// normalisation of file names used when matching audio by name.
package textutil
