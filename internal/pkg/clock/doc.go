// Package clock provides a tiny time abstraction.
//
// Usecases depend on Clocker instead of calling time.Now directly, so record
// timestamps can be pinned with Fixed in tests.
package clock
