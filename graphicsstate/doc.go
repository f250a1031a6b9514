// Package graphicsstate interprets the geometry-relevant part of a PDF
// content stream.
//
// An [Interpreter] pulls operations from a contentstream.Source and hands
// each one to a [Dispatcher], which maps the operator mnemonic to a
// [Handler]. Handlers read and modify the [Stack] of [GraphicsState] frames
// held by an [ExecutionContext]:
//
//	path := graphicsstate.NewPath()
//	in := graphicsstate.NewInterpreter(baseCTM, path,
//	    graphicsstate.WithReporter(collector))
//	if err := in.Run(contentstream.NewParser(data)); err != nil {
//	    return err
//	}
//
// # Coordinates
//
// Path operands are in user space. Every point is mapped through the
// current transformation matrix before it reaches the [PathSink], so sinks
// only ever see device space. cm premultiplies its matrix onto the CTM.
//
// # Recovery
//
// An operator with the wrong number or type of operands, a path segment
// without a current point, an unknown mnemonic and an unbalanced Q are all
// skipped: the handler leaves the state untouched and the interpreter
// reports a diagnostic and moves on. [WithStrict] turns the first such
// problem into an error.
//
// # Sinks
//
// [Path] records segments and painted paths. [PathExtractor] classifies
// painted paths into lines and rectangles. [Tee] fans geometry out to
// several sinks.
package graphicsstate
