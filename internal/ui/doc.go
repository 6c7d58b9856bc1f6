// Package ui provides the Bubble Tea terminal interface for the
// storefront.
//
// # Architecture Overview
//
// The package follows the Elm-style Model/Update/View split. The model
// never mutates domain state directly: key handling publishes intent
// events on the bus, the controller reacts synchronously, and View
// pulls the resulting state back out through the controller and model
// accessors on the next render.
//
// # Package Structure
//
//   - ui.go: root model, messages, commands, and the Run function
//   - keys.go: per-screen key handling, publishing intents only
//   - gallery.go: the base page (header, product cards, footer)
//   - views.go: the modal screens and the centered overlay
//   - theme.go: color palettes and prebuilt lipgloss styles
//   - helpers.go: price formatting, clamping, wrapping
//
// # Screens
//
// The gallery is the base page; every other screen renders as a
// centered modal replacing it, mirroring the browser original's
// overlay. Which screen is open is controller state, not UI state; the
// UI only tracks cursors and text inputs.
//
// # Forms
//
// Text inputs are bubbles/textinput components. Every keystroke that
// changes a field publishes form:input {form, field, value}, so
// validation errors react live while the user types. Submission keys
// publish order:submit and contacts:submit; whether the flow advances
// is the controller's decision.
//
// # Key Bindings
//
//   - j/k or arrows: move the cursor (gallery, basket)
//   - enter: open preview / toggle basket / advance a form
//   - b: open the basket
//   - x: remove the selected basket line
//   - tab: switch form fields
//   - 1/2 or ←/→: pick the payment method
//   - r: reload the catalog
//   - T: cycle the color theme (persisted to prefs)
//   - esc: close the open modal
//   - q or Ctrl+C: quit
//
// # Themes
//
// Themes are plain structs compiled into lipgloss styles once per
// render. Cycling with T saves the choice immediately so a crash never
// loses it.
package ui
