// Package window shows kaolin layouts in a resizable raylib window.
//
// The package needs cgo and the raylib build tag:
//
//	go build -tags raylib ./cmd/kaolin
//
// Every frame is laid out again at the current window size, so resizing the
// window reflows the layout.
package window
