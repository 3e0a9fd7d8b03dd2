// Package testutil holds fakes and file helpers shared by the package tests.
package testutil
