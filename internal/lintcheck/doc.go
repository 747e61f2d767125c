// Package lintcheck holds static policy tests over the module's own packages.
//
// The tests load source with golang.org/x/tools/go/packages and fail on
// layering or logging violations that go vet does not know about. The package
// has no non-test code.
package lintcheck
