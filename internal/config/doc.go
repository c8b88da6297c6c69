// Package config provides configuration management for scaffolddemo.
//
// The sample data the screens display (bottom navigation items, drawer
// sections, backdrop menu items) and a few presentation settings are read
// from YAML and handed to the screens at construction. Nothing here is
// process-wide state: callers receive a DemoConfig value.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (built into the binary)
//
//  2. User Configuration (~/.config/scaffolddemo/config.yaml)
//
//  3. Project Configuration (./.scaffolddemo/config.yaml)
//
// LoadConfigFromPath skips the lookup and overlays a single file on the defaults.
//
// # Configuration Structure
//
//	screen: backdrop            # or "scaffold"
//	title: "Title"
//	bottomItems:
//	  - title: "Item 1"
//	    icon: one
//	drawerItems:
//	  - title: "Section 1"
//	    icon: one
//	menuItems: ["Item 1", "Item 2"]
//	snackbar:
//	  message: "Button clicked"
//	  duration: 4s
//	animation:
//	  frames: 6
//	  frameInterval: 16ms
//	globalSettings:
//	  locale: en
//	  darkMode: true
//	  mouse: true
//
// Scalars in a later layer override earlier ones; a list that is set replaces
// the earlier list entirely.
package config
