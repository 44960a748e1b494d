// Package pageflow is the Composition Root for the pageflow navigation
// controller.
//
// It connects the core navigation logic (Domain Layer) with the
// infrastructure adapters (Persistence Layer) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// pageflow is the navigation brain of a single-pane UI host. It resolves
// navigation requests to page instances, recycles instances through a
// bounded cache, keeps back/forward history, and round-trips the whole
// history through a compact text format. It deliberately stops at the
// presentation boundary: rendering, layout and transition animations are
// ports the host supplies.
//
// Features:
//
//   - **Hexagonal Architecture**: Core navigation is isolated from
//     presentation and persistence details.
//   - **Bounded Recycling**: Page instances are reused through a FIFO cache
//     whose capacity also bounds the back stack.
//   - **Cancelable Pipeline**: Subscribers and the outgoing page can veto a
//     navigation before any state mutates.
//   - **Portable State**: Serialize and restore the full history as text,
//     tolerant of entries whose page types no longer exist.
//   - **Default Adapter (FS)**: Out-of-the-box atomic persistence of the
//     serialized state with named snapshots and change watching.
//
// Usage:
//
//	registry := pageflow.NewRegistry()
//	pageflow.Define(registry, "app.Home", NewHomePage)
//
//	engine := pageflow.New(
//		pageflow.WithFactory(registry),
//		pageflow.WithLogger(logger),
//	)
//
//	engine.Navigate("app.Home", nil)
package pageflow
