// Package combine concatenates MP3 fragments into one track.
//
// Fragments are taken from a single directory in file-name order, so users
// control the sequence by naming files. Combined tracks are named after the
// time they were created (see TimestampName).
package combine
