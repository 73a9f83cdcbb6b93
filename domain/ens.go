package domain

import "github.com/earthart/aether/base/ctx"

// NameResolver maps an address to its primary ENS name, "" when it has none
type NameResolver interface {
	ReverseResolve(ctx.Ctx, Address) (string, error)
}
