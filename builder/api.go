// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public entry points for the builder package.
// Policy:
//   - One orchestrator pair: BuildNetwork creates and fills a fresh network,
//     Into composes onto an existing one.
//   - Functional options resolve into an immutable builderConfig; no global
//     state anywhere.
//   - Determinism: same options, seed and constructor order produce an
//     identical network.
//   - Constructors return sentinel errors and never panic at runtime.

package builder

import (
	"fmt"

	"github.com/UnstableBlob/ambulance-shortest-route/network"
)

// Constructor applies one deterministic topology to a network using the
// resolved builderConfig. Constructors must validate parameters early,
// return sentinel errors, and emit junctions and roads in a stable order.
type Constructor func(net *network.Network, cfg builderConfig) error

// BuildNetwork creates a new network with nopts, resolves the builder
// configuration from bopts, and applies all constructors in order. The first
// failure is wrapped and returned; no partial cleanup is attempted.
// Complexity: O(len(bopts)) plus the constructors' own costs.
func BuildNetwork(nopts []network.Option, bopts []BuilderOption, cons ...Constructor) (*network.Network, error) {
	net := network.New(nopts...)
	if err := apply(net, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return net, nil
}

// Into applies constructors to an existing network, composing topologies
// over whatever it already holds. Junction and road IDs that collide with
// existing ones surface as wrapped network errors.
// Returns ErrConstructFailed for a nil network or constructor.
// Complexity: O(len(bopts)) plus the constructors' own costs.
func Into(net *network.Network, bopts []BuilderOption, cons ...Constructor) error {
	if net == nil {
		return fmt.Errorf("Into: nil network: %w", ErrConstructFailed)
	}
	if err := apply(net, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Into: %w", err)
	}

	return nil
}

// apply runs the constructors sequentially, preserving composition order.
func apply(net *network.Network, cfg builderConfig, cons []Constructor) error {
	var (
		i  int
		fn Constructor
	)
	for i, fn = range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(net, cfg); err != nil {
			return err
		}
	}

	return nil
}
