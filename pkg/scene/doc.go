// Package scene loads layouts described in TOML documents.
//
// A document names the viewport size and a tree of elements:
//
//	width = 800
//	height = 600
//	background = "#1e1e2e"
//
//	[[children]]
//	kind = "box"
//	direction = "ttb"
//	padding = [16, 24]
//	gap = 8
//	width = { grow = 1 }
//
//	  [[children.children]]
//	  kind = "text"
//	  text = "Hello, Kaolin!"
//	  font_size = 24
//
// Element kinds are "box", "text" and "custom". Sizing tables take one of
// fixed, grow or fit with optional min and max:
//
//	width = { fixed = 200 }
//	width = { grow = 2, max = 400 }
//	height = { fit = { min = 40 } }
//
// [Parse] only decodes. [Document.Validate] resolves every style and reports
// all problems at once, and [Document.Draw] lays the document out.
package scene
