// Package kaolin computes flexbox-style layouts for a fixed viewport and
// turns them into an ordered list of draw commands.
//
// Users import this single package for the complete public API: the entry
// point, the scope builder, style and sizing types, and the command types a
// renderer consumes. Renderers for PNG images, terminals and raylib windows
// live under pkg/render.
//
//	k := kaolin.New(800, 600, measure)
//	cmds := k.Draw(func(s *kaolin.Scope) {
//		s.With(kaolin.FlexStyle{Width: kaolin.Grow()}, func(s *kaolin.Scope) {
//			s.Text("Hello, Kaolin!", kaolin.TextStyle{})
//		})
//	})
//	for cmd := range cmds.All() {
//		// draw cmd
//	}
package kaolin
