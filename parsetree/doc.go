/*
Package parsetree implements parse trees, as produced by the LL(1) parser of
package ll.

Inner nodes of a parse tree represent non-terminals; leaves are terminals,
holding the input token, or lambda-leaves for empty productions. Trees are
built top-down with a Cursor and consumed bottom-up by a Listener:

    result, err := parsetree.Walk(tree, myListener)

Walk calls the listener in post-order, handing the values computed for the
children of a node to the node's Reduce call. This is the usual way to
transform a parse tree into an abstract syntax tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsetree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cctk.parsetree'.
func tracer() tracing.Trace {
	return tracing.Select("cctk.parsetree")
}
