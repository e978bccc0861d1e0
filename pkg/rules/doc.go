// Package rules implements the per-locale inflection rule store.
//
// A Store owns three ordered rule chains (plural, singular, human), a set of
// uncountable words, and a table of acronyms with a derived matcher regexp.
// The store only manages rules; applying them to words is the job of the
// pkg/inflect transforms, which scan a chain front-to-back and apply the
// first rule whose pattern matches.
//
// Every insertion goes to the front of its chain, so the most recently added
// rule shadows everything registered before it, including seeded defaults.
package rules
