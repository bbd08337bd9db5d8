// ABOUTME: Package doc for the Prompt API declaration surface
// ABOUTME: Types and interfaces only; the host runtime supplies all behavior

// Package promptapi declares the boundary contract of a host-provided
// language-model capability: the LanguageModel and Session interfaces, the
// option and message shapes they accept, the restricted JSON Schema dialect
// used for tool inputs and response constraints, the quota-exceeded error,
// and the availability enumeration.
//
// Nothing in this package runs a model. Inference, session state, streaming
// transport, quota enforcement, and tool dispatch all live in the host
// runtime that implements these interfaces. What the package does provide is
// structural validation (Validate methods on every shape) and strict JSON
// codecs for the closed enums and tagged unions, so malformed payloads fail
// at the boundary instead of inside a host.
//
// A minimal call sequence:
//
//	avail, _ := lm.Availability(ctx, nil)
//	if avail != promptapi.AvailabilityAvailable {
//		// download or bail; the host decides what the other states mean
//	}
//	sess, _ := lm.Create(ctx, &promptapi.CreateOptions{
//		InitialPrompts: []promptapi.Message{
//			promptapi.TextMessage(promptapi.RoleSystem, "You are terse."),
//		},
//	})
//	defer sess.Destroy()
//	reply, err := sess.Prompt(ctx, promptapi.Text("hi"), nil)
//
// The promptapitest sibling package supplies a scripted in-memory host so
// consumers can compile and test against these interfaces without a real one.
package promptapi
