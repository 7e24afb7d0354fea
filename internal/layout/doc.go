// Package layout implements the kaolin flexbox layout engine.
//
// A layout is computed over a tree of [Node] values, each wrapping an
// [Element]. Containers ([FlexBox]) own their children as a [Nodes] group and
// drive three top-down passes once the tree is built:
//
//  1. width growth and shrink, re-fitting heights (and wrapping [Text]) as
//     widths become final
//  2. height growth
//  3. positioning in absolute coordinates
//
// The finished tree is walked in pre-order to produce [Commands].
// Types are re-exported through the root kaolin package for public consumption.
package layout
