// Package inflect provides the word transformations built on top of the
// pkg/rules stores: Pluralize, Singularize, Camelize, Underscore, Humanize
// and friends.
//
// An Inflector owns a registry of locale-keyed rule stores. The "en" store
// is seeded with the default English rules on first use; every other locale
// starts empty. The package-level functions are bound to the package default
// Inflector, the same discipline the stdlib flag and log packages use.
//
// Known limitations: inflection works on the final word of the input (rules
// are suffix-anchored), and all-caps irregular forms keep only their leading
// letter's case ("Octopus" becomes "Octopi", "OCTOPUS" does not become
// "OCTOPI").
package inflect
