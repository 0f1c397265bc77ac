// Package showmore provides a "show more" pagination controller for lists
// that are already fully present on a view.
//
// Overview
//
// The list is captured once, the first PageSize items stay visible and the
// rest are hidden. Every activation of the control reveals the next batch
// until the list is exhausted, at which point the control is hidden for good.
//
// Key concepts
//   - Controller: owns the item list and the cursor (count of visible items).
//   - Item: anything whose visibility can be toggled.
//   - Control: the affordance that can be shown or hidden and that emits a
//     repeatable activation signal. Trigger is an in-process implementation.
//
// The controller does not know about any UI toolkit. See package tui for a
// Bubble Tea host.
package showmore
