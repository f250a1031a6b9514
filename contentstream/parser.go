package contentstream

import (
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/tsawler/pdfvector/core"
)

// ErrSyntax is wrapped by every tokenizer error.
var ErrSyntax = errors.New("content stream syntax error")

// Operation represents a single content stream operation consisting of an
// operator and its operands. Operands are PDF objects that precede the operator.
type Operation struct {
	Operator string        // The operator (e.g., "cm", "re", "q")
	Operands []core.Object // The operands
	Offset   int           // Byte offset of the operator token
}

// Source yields operations one at a time. Next returns io.EOF once the input
// is exhausted; any other error is a read or syntax failure.
type Source interface {
	Next() (Operation, error)
}

// readChunk is how many bytes a reader-backed parser requests at a time.
const readChunk = 32 << 10

// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
const maxEmptyReads = 100

// Parser parses PDF content streams into a sequence of operations.
// Each operation consists of an operator and its operands.
type Parser struct {
	data     []byte
	pos      int
	base     int // stream offset of data[0]
	operands []core.Object

	src    io.Reader
	srcErr error // set once src is drained, io.EOF or the read error
}

// NewParser creates a new content stream parser for the given data.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// NewReaderParser returns a parser that pulls from r as operations are
// requested. Operations read before a failing Read are returned first; the
// failure is reported in place of io.EOF.
func NewReaderParser(r io.Reader) *Parser {
	return &Parser{src: r}
}

// Offset returns the current read position.
func (p *Parser) Offset() int {
	return p.base + p.pos
}

// Parse parses the content stream and returns all operations in order.
func (p *Parser) Parse() ([]Operation, error) {
	var ops []Operation
	for {
		op, err := p.Next()
		if err == io.EOF {
			return ops, nil
		}
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
}

// Next returns the next operation. Operands left over at the end of the
// stream without an operator are discarded.
func (p *Parser) Next() (Operation, error) {
	for {
		pos, queued := p.pos, len(p.operands)
		op, err := p.next()

		if p.pending() {
			// An operation is only complete once a byte past it is buffered;
			// otherwise the operator or an operand may continue in the next
			// chunk.
			if err == nil && p.pos < len(p.data) {
				return op, nil
			}
			p.pos, p.operands = pos, p.operands[:queued]
			p.fill()
			continue
		}

		if err != nil && p.srcErr != nil && p.srcErr != io.EOF {
			p.operands = nil
			return Operation{}, errors.Wrap(p.srcErr, "reading content stream")
		}
		if err == io.EOF {
			p.operands = nil
		}
		return op, err
	}
}

// pending reports whether the reader may still supply data.
func (p *Parser) pending() bool {
	return p.src != nil && p.srcErr == nil
}

// fill drops consumed bytes and appends the next chunk from the reader.
func (p *Parser) fill() {
	if p.pos > 0 {
		n := copy(p.data, p.data[p.pos:])
		p.data = p.data[:n]
		p.base += p.pos
		p.pos = 0
	}
	if cap(p.data)-len(p.data) < readChunk {
		size := 2 * cap(p.data)
		if size < len(p.data)+readChunk {
			size = len(p.data) + readChunk
		}
		grown := make([]byte, len(p.data), size)
		copy(grown, p.data)
		p.data = grown
	}

	for empty := 0; ; empty++ {
		if empty == maxEmptyReads {
			p.srcErr = io.ErrNoProgress
			return
		}
		n, err := p.src.Read(p.data[len(p.data):cap(p.data)])
		p.data = p.data[:len(p.data)+n]
		if err != nil {
			p.srcErr = err
			return
		}
		if n > 0 {
			return
		}
	}
}

// next parses one operation from the buffered data.
func (p *Parser) next() (Operation, error) {
	for {
		p.skipWhitespaceAndComments()
		if p.pos >= len(p.data) {
			return Operation{}, io.EOF
		}

		start := p.pos
		c := p.data[p.pos]

		if isRegular(c) && !startsNumber(c) {
			token := p.readToken()
			switch token {
			case "true":
				p.operands = append(p.operands, core.Bool(true))
				continue
			case "false":
				p.operands = append(p.operands, core.Bool(false))
				continue
			case "null":
				p.operands = append(p.operands, core.Null{})
				continue
			case "BI":
				return p.parseInlineImage(start)
			}
			return p.emit(token, start), nil
		}

		operand, err := p.parseOperand()
		if err != nil {
			return Operation{}, errors.Wrapf(err, "at position %d", p.base+start)
		}
		p.operands = append(p.operands, operand)
	}
}

// emit builds an operation from the pending operands and clears them.
func (p *Parser) emit(operator string, offset int) Operation {
	op := Operation{
		Operator: operator,
		Operands: make([]core.Object, len(p.operands)),
		Offset:   p.base + offset,
	}
	copy(op.Operands, p.operands)
	p.operands = p.operands[:0]
	return op
}

// readToken reads a run of regular characters.
func (p *Parser) readToken() string {
	start := p.pos
	for p.pos < len(p.data) && isRegular(p.data[p.pos]) {
		p.pos++
	}
	return string(p.data[start:p.pos])
}

// parseInlineImage consumes BI <dict pairs> ID <data> EI and reports it as a
// single BI operation whose operands are the image dictionary and the raw
// sample bytes.
func (p *Parser) parseInlineImage(start int) (Operation, error) {
	dict := make(core.Dict)
	for {
		p.skipWhitespaceAndComments()
		if p.pos >= len(p.data) {
			return Operation{}, errors.Wrapf(ErrSyntax, "unterminated inline image at position %d", p.base+start)
		}
		if p.data[p.pos] != '/' {
			if tok := p.readToken(); tok == "ID" {
				break
			}
			return Operation{}, errors.Wrapf(ErrSyntax, "inline image key must be a name at position %d", p.base+p.pos)
		}

		key, err := p.parseName()
		if err != nil {
			return Operation{}, err
		}
		p.skipWhitespaceAndComments()
		value, err := p.parseInlineValue()
		if err != nil {
			return Operation{}, errors.Wrapf(err, "inline image at position %d", p.base+start)
		}
		dict[string(key.(core.Name))] = value
	}

	// A single whitespace byte separates ID from the data.
	if p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}
	dataStart := p.pos
	for i := dataStart; i+1 < len(p.data); i++ {
		if !p.endImageAt(i, dataStart) {
			continue
		}
		end := i
		if end > dataStart {
			end-- // whitespace before EI
		}
		data := core.String(p.data[dataStart:end])
		p.pos = i + 2
		op := p.emit("BI", start)
		op.Operands = append(op.Operands, dict, data)
		return op, nil
	}
	return Operation{}, errors.Wrapf(ErrSyntax, "inline image at position %d has no EI", p.base+start)
}

// parseInlineValue parses a dictionary value in an inline image header.
// Abbreviated names like /G are parsed as names; bare keywords such as true
// are accepted too.
func (p *Parser) parseInlineValue() (core.Object, error) {
	if p.pos < len(p.data) && isRegular(p.data[p.pos]) && !startsNumber(p.data[p.pos]) {
		switch tok := p.readToken(); tok {
		case "true":
			return core.Bool(true), nil
		case "false":
			return core.Bool(false), nil
		case "null":
			return core.Null{}, nil
		default:
			return nil, errors.Wrapf(ErrSyntax, "unexpected keyword %q", tok)
		}
	}
	return p.parseOperand()
}

// endImageAt reports whether an EI keyword starts at i. Unless i is the
// first data byte, EI must be preceded by whitespace, and it must be followed
// by whitespace, a delimiter or the end of data.
func (p *Parser) endImageAt(i, dataStart int) bool {
	if p.data[i] != 'E' || p.data[i+1] != 'I' {
		return false
	}
	if i > dataStart && !isWhitespace(p.data[i-1]) {
		return false
	}
	return i+2 == len(p.data) || !isRegular(p.data[i+2])
}

// parseOperand parses a single operand, which can be a number, string, name,
// array, dictionary, boolean, or null.
func (p *Parser) parseOperand() (core.Object, error) {
	p.skipWhitespaceAndComments()

	if p.pos >= len(p.data) {
		return nil, errors.Wrap(ErrSyntax, "unexpected end of stream")
	}

	c := p.data[p.pos]

	switch {
	case startsNumber(c):
		return p.parseNumber()
	case c == '(':
		return p.parseString()
	case c == '<' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '<':
		return p.parseDict()
	case c == '<':
		return p.parseHexString()
	case c == '/':
		return p.parseName()
	case c == '[':
		return p.parseArray()
	}

	if isRegular(c) {
		start := p.pos
		switch tok := p.readToken(); tok {
		case "true":
			return core.Bool(true), nil
		case "false":
			return core.Bool(false), nil
		case "null":
			return core.Null{}, nil
		default:
			return nil, errors.Wrapf(ErrSyntax, "unexpected keyword %q at position %d", tok, start)
		}
	}

	return nil, errors.Wrapf(ErrSyntax, "unexpected character %q at position %d", c, p.pos)
}

// parseNumber parses an integer or real number operand.
func (p *Parser) parseNumber() (core.Object, error) {
	start := p.pos
	hasDecimal := false

	if p.data[p.pos] == '+' || p.data[p.pos] == '-' {
		p.pos++
	}

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
		} else if c == '.' && !hasDecimal {
			hasDecimal = true
			p.pos++
		} else {
			break
		}
	}

	numStr := string(p.data[start:p.pos])

	if hasDecimal {
		val, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "invalid real number %q", numStr)
		}
		return core.Real(val), nil
	}

	val, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		// Integers too large for int64 degrade to reals.
		if f, ferr := strconv.ParseFloat(numStr, 64); ferr == nil {
			return core.Real(f), nil
		}
		return nil, errors.Wrapf(ErrSyntax, "invalid integer %q", numStr)
	}
	return core.Int(val), nil
}

// parseString parses a literal string (...) with escape sequence handling.
func (p *Parser) parseString() (core.Object, error) {
	p.pos++ // skip '('

	var result bytes.Buffer
	depth := 1

	for p.pos < len(p.data) && depth > 0 {
		c := p.data[p.pos]
		p.pos++

		switch {
		case c == '\\' && p.pos < len(p.data):
			p.readEscape(&result)
		case c == '(':
			depth++
			result.WriteByte(c)
		case c == ')':
			depth--
			if depth > 0 {
				result.WriteByte(c)
			}
		default:
			result.WriteByte(c)
		}
	}

	if depth != 0 {
		return nil, errors.Wrap(ErrSyntax, "unclosed string")
	}

	return core.String(result.String()), nil
}

// readEscape decodes the escape sequence following a backslash.
func (p *Parser) readEscape(out *bytes.Buffer) {
	next := p.data[p.pos]
	p.pos++

	switch next {
	case 'n':
		out.WriteByte('\n')
	case 'r':
		out.WriteByte('\r')
	case 't':
		out.WriteByte('\t')
	case 'b':
		out.WriteByte('\b')
	case 'f':
		out.WriteByte('\f')
	case '\r':
		// Line continuation
		if p.pos < len(p.data) && p.data[p.pos] == '\n' {
			p.pos++
		}
	case '\n':
	case '0', '1', '2', '3', '4', '5', '6', '7':
		val := int(next - '0')
		for i := 0; i < 2 && p.pos < len(p.data); i++ {
			digit := p.data[p.pos]
			if digit < '0' || digit > '7' {
				break
			}
			val = val*8 + int(digit-'0')
			p.pos++
		}
		out.WriteByte(byte(val & 0xFF))
	default:
		// Covers \( \) \\ and unknown escapes, where the backslash is dropped.
		out.WriteByte(next)
	}
}

// parseHexString parses a hexadecimal string <...>.
func (p *Parser) parseHexString() (core.Object, error) {
	p.pos++ // skip '<'

	var result bytes.Buffer
	var pending byte
	odd := false

	for {
		if p.pos >= len(p.data) {
			return nil, errors.Wrap(ErrSyntax, "unclosed hex string")
		}
		c := p.data[p.pos]
		p.pos++

		if c == '>' {
			break
		}
		if isWhitespace(c) {
			continue
		}
		if !isHexDigit(c) {
			return nil, errors.Wrapf(ErrSyntax, "invalid hex digit %q", c)
		}

		if odd {
			result.WriteByte(pending<<4 | hexValue(c))
		} else {
			pending = hexValue(c)
		}
		odd = !odd
	}

	// An odd digit count implies a trailing 0.
	if odd {
		result.WriteByte(pending << 4)
	}

	return core.String(result.String()), nil
}

// parseName parses a name object /Name with # escape handling.
func (p *Parser) parseName() (core.Object, error) {
	p.pos++ // skip '/'

	var result bytes.Buffer

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if !isRegular(c) {
			break
		}

		if c == '#' && p.pos+2 < len(p.data) && isHexDigit(p.data[p.pos+1]) && isHexDigit(p.data[p.pos+2]) {
			result.WriteByte(hexValue(p.data[p.pos+1])<<4 | hexValue(p.data[p.pos+2]))
			p.pos += 3
			continue
		}

		result.WriteByte(c)
		p.pos++
	}

	return core.Name(result.String()), nil
}

// parseArray parses an array [...] of operands.
func (p *Parser) parseArray() (core.Object, error) {
	p.pos++ // skip '['

	arr := core.Array{}

	for {
		p.skipWhitespaceAndComments()

		if p.pos >= len(p.data) {
			return nil, errors.Wrap(ErrSyntax, "unclosed array")
		}

		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}

		obj, err := p.parseOperand()
		if err != nil {
			return nil, err
		}

		arr = append(arr, obj)
	}
}

// parseDict parses a dictionary <<...>>, as used by BDC and DP.
func (p *Parser) parseDict() (core.Object, error) {
	p.pos += 2 // skip '<<'

	dict := make(core.Dict)

	for {
		p.skipWhitespaceAndComments()

		if p.pos >= len(p.data) {
			return nil, errors.Wrap(ErrSyntax, "unclosed dictionary")
		}

		if p.pos+1 < len(p.data) && p.data[p.pos] == '>' && p.data[p.pos+1] == '>' {
			p.pos += 2
			return dict, nil
		}

		if p.data[p.pos] != '/' {
			return nil, errors.Wrap(ErrSyntax, "dictionary key must be a name")
		}

		key, err := p.parseName()
		if err != nil {
			return nil, err
		}

		value, err := p.parseOperand()
		if err != nil {
			return nil, err
		}

		dict[string(key.(core.Name))] = value
	}
}

// skipWhitespaceAndComments advances past whitespace and % comments.
func (p *Parser) skipWhitespaceAndComments() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isWhitespace(c) {
			p.pos++
			continue
		}
		if c == '%' {
			for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
				p.pos++
			}
			continue
		}
		return
	}
}

// Helper functions

// isWhitespace reports whether c is a PDF whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

// isDelimiter reports whether c is a PDF delimiter character.
func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' ||
		c == '[' || c == ']' || c == '{' || c == '}' ||
		c == '/' || c == '%'
}

// isRegular reports whether c may appear inside an operator or name token.
func isRegular(c byte) bool {
	return !isWhitespace(c) && !isDelimiter(c)
}

// startsNumber reports whether c can begin a numeric operand.
func startsNumber(c byte) bool {
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

// isHexDigit reports whether c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexValue returns the numeric value of a hexadecimal digit.
func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
