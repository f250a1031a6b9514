// Package contentstream tokenizes PDF content streams into operations.
//
// A content stream is a postfix program: operands are pushed until an
// operator keyword consumes them. [Parser] reads the stream and yields one
// [Operation] per operator:
//
//	parser := contentstream.NewParser(streamData)
//	for {
//	    op, err := parser.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("Operator: %s, Operands: %v\n", op.Operator, op.Operands)
//	}
//
// [Parser.Parse] collects every operation at once. Any type with a Next
// method satisfies [Source], which is what the graphics state dispatcher
// consumes.
//
// # Operand Types
//
// Operands can be any PDF object type:
//   - Numbers (core.Int, core.Real)
//   - Booleans and null (core.Bool, core.Null)
//   - Strings (core.String), literal or hexadecimal
//   - Names (core.Name)
//   - Arrays (core.Array)
//   - Dictionaries (core.Dict), as used by BDC and DP
//
// # Inline Images
//
// BI ... ID ... EI is reported as a single BI operation with two operands:
// the image dictionary and the raw sample bytes as a core.String.
//
// Comments starting with % run to the end of the line and are skipped.
// Syntax errors wrap [ErrSyntax].
package contentstream
