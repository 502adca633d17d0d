// Package utils provides small helpers shared by the go-posts binaries: a
// preconfigured HTTP client and a time-ordered id generator.
package utils
