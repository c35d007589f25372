//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "wordcycle"

// Default target to run when none is specified
var Default = Build

// Build compiles the wordcycle binary into the repository root
func Build() error {
	return sh.RunV("go", "build", "-o", binary, "./cmd/wordcycle")
}

// Test runs the unit tests of all packages
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs wordcycle into GOBIN
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/wordcycle")
}

// Clean removes the built binary
func Clean() error {
	if err := sh.Rm(binary); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
