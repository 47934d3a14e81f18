package udmf

import "strings"

// PropMap is an object's property bag: keys exactly as written in the
// source text, values with their textual encoding normalised (quotes
// stripped from strings, numeric-literal suffixes stripped from numbers).
type PropMap map[string]string

type rawObject struct {
	typeName string
	data     PropMap
}

type parser struct {
	lex  *lexer
	tok  token
	peek *token
}

func newParser(src string) (*parser, *SyntaxError) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() *SyntaxError {
	if p.peek != nil {
		p.tok = *p.peek
		p.peek = nil
		return nil
	}
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind tokenKind, what string) *SyntaxError {
	if p.tok.kind != kind {
		return &SyntaxError{Line: p.tok.line, Col: p.tok.col, Msg: "expected " + what}
	}
	return nil
}

// parseDocument parses a full TEXTMAP source string: a leading namespace
// assignment followed by zero or more data blocks.
func (p *parser) parseDocument() (string, []rawObject, *SyntaxError) {
	if err := p.expect(tokIdent, "a 'namespace' identifier"); err != nil {
		return "", nil, err
	}
	if p.tok.text != "namespace" {
		return "", nil, &SyntaxError{Line: p.tok.line, Col: p.tok.col, Msg: "expected the map's leading namespace assignment"}
	}
	if err := p.advance(); err != nil {
		return "", nil, err
	}
	if err := p.expect(tokEquals, "'='"); err != nil {
		return "", nil, err
	}
	if err := p.advance(); err != nil {
		return "", nil, err
	}
	if err := p.expect(tokString, "a quoted namespace name"); err != nil {
		return "", nil, err
	}
	namespace := unquote(p.tok.text)
	if err := p.advance(); err != nil {
		return "", nil, err
	}
	if err := p.expect(tokSemicolon, "';'"); err != nil {
		return "", nil, err
	}
	if err := p.advance(); err != nil {
		return "", nil, err
	}

	var objects []rawObject
	for p.tok.kind != tokEOF {
		obj, err := p.parseDataBlock()
		if err != nil {
			return "", nil, err
		}
		objects = append(objects, obj)
	}
	return namespace, objects, nil
}

func (p *parser) parseDataBlock() (rawObject, *SyntaxError) {
	if err := p.expect(tokIdent, "a data block type identifier"); err != nil {
		return rawObject{}, err
	}
	typeName := p.tok.text
	if err := p.advance(); err != nil {
		return rawObject{}, err
	}
	if err := p.expect(tokLBrace, "'{'"); err != nil {
		return rawObject{}, err
	}
	if err := p.advance(); err != nil {
		return rawObject{}, err
	}

	data := PropMap{}
	for p.tok.kind != tokRBrace {
		if err := p.expect(tokIdent, "a property key"); err != nil {
			return rawObject{}, err
		}
		key := p.tok.text
		if err := p.advance(); err != nil {
			return rawObject{}, err
		}
		if err := p.expect(tokEquals, "'='"); err != nil {
			return rawObject{}, err
		}
		if err := p.advance(); err != nil {
			return rawObject{}, err
		}
		value, err := p.parseAnyData()
		if err != nil {
			return rawObject{}, err
		}
		if err := p.expect(tokSemicolon, "';'"); err != nil {
			return rawObject{}, err
		}
		if err := p.advance(); err != nil {
			return rawObject{}, err
		}
		data[key] = value
	}
	if err := p.advance(); err != nil { // consume '}'
		return rawObject{}, err
	}
	return rawObject{typeName: typeName, data: data}, nil
}

func (p *parser) parseAnyData() (string, *SyntaxError) {
	switch p.tok.kind {
	case tokString:
		v := unquote(p.tok.text)
		return v, p.advance()
	case tokNumber:
		v := trimNumericSuffix(p.tok.text)
		return v, p.advance()
	case tokBool:
		v := p.tok.text
		return v, p.advance()
	default:
		return "", &SyntaxError{Line: p.tok.line, Col: p.tok.col, Msg: "expected a string, number, or boolean value"}
	}
}

func unquote(raw string) string {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return raw[1 : len(raw)-1]
	}
	return raw
}

// trimNumericSuffix strips integer (u/U/l/L) and decimal (f/F) literal
// suffixes, leaving a string strconv can parse directly.
func trimNumericSuffix(raw string) string {
	return strings.TrimRight(raw, "uUlLfF")
}
