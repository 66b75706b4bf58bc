package bwrap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/subenv/internal/core/ports"
)

// NodeID is the unique identifier for the bubblewrap launcher Graft node.
const NodeID graft.ID = "adapter.bwrap.launcher"

func init() {
	graft.Register(graft.Node[ports.Launcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Launcher, error) {
			return NewLauncher(), nil
		},
	})
}
