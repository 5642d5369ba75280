// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package constraint

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pairgen/pairgen/common"
)

// ErrParse is the kind of all constraint grammar errors. Detailed failures
// are reported as *ParseError values wrapping this sentinel.
const ErrParse = common.ConstErr("malformed constraint")

// ParseError describes a grammar violation in a constraint text, including
// the byte offset at which parsing failed.
type ParseError struct {
	Text     string
	Position int
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d: %s", ErrParse, e.Position, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Parse translates a constraint text of the form
//
//	IF <name> = '<value>' THEN <name> must be empty
//	IF <name> != '<value>' THEN <name> must not be empty
//
// into its structured representation. Keywords and names are
// case-sensitive; whitespace around the operator and the quoted literal is
// optional. Parse performs no registry validation; see Set.Add.
func Parse(text string) (Constraint, error) {
	s := scanner{text: text}

	if err := s.keyword("IF"); err != nil {
		return Constraint{}, err
	}

	parameter, err := s.name("condition parameter")
	if err != nil {
		return Constraint{}, err
	}
	comparison, err := s.operator()
	if err != nil {
		return Constraint{}, err
	}
	value, err := s.literal()
	if err != nil {
		return Constraint{}, err
	}

	if err := s.keyword("THEN"); err != nil {
		return Constraint{}, err
	}

	target, err := s.name("action parameter")
	if err != nil {
		return Constraint{}, err
	}
	requirement, err := s.requirement()
	if err != nil {
		return Constraint{}, err
	}

	if err := s.end(); err != nil {
		return Constraint{}, err
	}

	return Constraint{
		Condition: Condition{Parameter: parameter, Comparison: comparison, Value: value},
		Action:    Action{Parameter: target, Requirement: requirement},
	}, nil
}

// scanner is a cursor over a constraint text. All read operations skip
// leading whitespace.
type scanner struct {
	text string
	pos  int
}

func (s *scanner) fail(reason string) error {
	return &ParseError{Text: s.text, Position: s.pos, Reason: reason}
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += size
	}
}

// word reads a maximal run of characters that can form a name or keyword.
// Quotes and operator characters terminate a word so that constraints
// without spaces around the operator remain parseable.
func (s *scanner) word() string {
	start := s.pos
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if unicode.IsSpace(r) || r == '\'' || r == '=' || r == '!' {
			break
		}
		s.pos += size
	}
	return s.text[start:s.pos]
}

func (s *scanner) keyword(expected string) error {
	s.skipSpace()
	if word := s.word(); word != expected {
		return s.failExpected(fmt.Sprintf("keyword %q", expected), word)
	}
	return nil
}

func (s *scanner) name(role string) (string, error) {
	s.skipSpace()
	word := s.word()
	if word == "" {
		return "", s.failExpected(role, "")
	}
	if word == "THEN" || word == "IF" {
		return "", s.fail(fmt.Sprintf("expected %s, got keyword %q", role, word))
	}
	return word, nil
}

func (s *scanner) operator() (Comparison, error) {
	s.skipSpace()
	switch {
	case strings.HasPrefix(s.text[s.pos:], "!="):
		s.pos += 2
		return NotEquals, nil
	case strings.HasPrefix(s.text[s.pos:], "="):
		s.pos++
		return Equals, nil
	}
	return 0, s.fail("expected operator \"=\" or \"!=\"")
}

func (s *scanner) literal() (string, error) {
	s.skipSpace()
	if s.pos >= len(s.text) || s.text[s.pos] != '\'' {
		return "", s.fail("expected single-quoted value")
	}
	s.pos++
	end := strings.IndexByte(s.text[s.pos:], '\'')
	if end < 0 {
		return "", s.fail("unterminated value literal")
	}
	value := s.text[s.pos : s.pos+end]
	s.pos += end + 1
	return value, nil
}

func (s *scanner) requirement() (Requirement, error) {
	if err := s.keyword("must"); err != nil {
		return 0, err
	}
	s.skipSpace()
	requirement := MustBeEmpty
	word := s.word()
	if word == "not" {
		requirement = MustNotBeEmpty
		s.skipSpace()
		word = s.word()
	}
	if word != "be" {
		return 0, s.failExpected("keyword \"be\"", word)
	}
	if err := s.keyword("empty"); err != nil {
		return 0, err
	}
	return requirement, nil
}

func (s *scanner) end() error {
	s.skipSpace()
	if s.pos != len(s.text) {
		return s.fail("unexpected trailing input")
	}
	return nil
}

func (s *scanner) failExpected(expected string, got string) error {
	if got == "" {
		if s.pos >= len(s.text) {
			return s.fail(fmt.Sprintf("expected %s, got end of input", expected))
		}
		r, _ := utf8.DecodeRuneInString(s.text[s.pos:])
		return s.fail(fmt.Sprintf("expected %s, got %q", expected, r))
	}
	return s.fail(fmt.Sprintf("expected %s, got %q", expected, got))
}
