//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep mockgen, invoked through
// the //go:generate directives of the repositories and search packages,
// tracked in go.mod so `go generate ./...` works on a fresh checkout.
package sentiment_chatbot

import (
	_ "go.uber.org/mock/mockgen"
)
