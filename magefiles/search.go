//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Search builds the CLI and fetches the first page of the default query,
// printing the request URL. Requires network access.
func Search() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "--pages", "1", "--print-request-urls")
}
