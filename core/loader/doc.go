// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and registers its own routes on
// the router it is given:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager keeps features in registration order. LoadAll skips disabled features
// and fails fast on the first feature that cannot load.
package loader
