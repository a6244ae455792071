//go:build tools
// +build tools

// Package tools pins the code generators run through go generate (mockgen)
// so that go.mod tracks them.
package signald_groups

import (
	_ "go.uber.org/mock/mockgen"
)
