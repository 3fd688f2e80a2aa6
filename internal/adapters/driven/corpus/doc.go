// Package corpus ships the built-in design corpus: the document
// collections searched by the ranking engine and the reasoning rule
// table that maps product categories to design guidance. Collection
// data is embedded as JSON and validated on load; the rule table is
// maintained in code next to it.
package corpus
