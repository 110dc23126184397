// Package base holds the leaf helpers shared by the option and either
// packages: nil detection for present variants, structural equality and the
// panic capture used by the Try adapters.
package base
