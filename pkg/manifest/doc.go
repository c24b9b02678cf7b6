// Package manifest loads declarative YAML document descriptions and
// builds pkg/doc pages from them.
//
// A manifest names the document metadata and a node tree:
//
//	title: Pancakes
//	root:
//	  tag: article
//	  children:
//	    - comment: generated
//	    - tag: h1
//	      text: Pancakes
//
// Decoding is strict: unknown YAML fields are errors.
package manifest
