package model

import (
	"fmt"
	"strings"
)

// CharacterClass is one alphabet a secret may draw from.
type CharacterClass uint8

const (
	Lowercase CharacterClass = 1 << iota
	Digits
	Uppercase
	Symbols
)

// AllClasses lists every class in growth order.
var AllClasses = []CharacterClass{Lowercase, Digits, Uppercase, Symbols}

var (
	classNames = map[CharacterClass]string{
		Lowercase: "lowercase",
		Digits:    "digits",
		Uppercase: "uppercase",
		Symbols:   "symbols",
	}
	classAlphabets = map[CharacterClass]string{
		Lowercase: "abcdefghijklmnopqrstuvwxyz",
		Digits:    "0123456789",
		Uppercase: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		Symbols:   "!@#$%^&*-_=+?",
	}
)

// String returns the stable class name.
func (c CharacterClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// Alphabet returns the characters of the class.
func (c CharacterClass) Alphabet() string {
	return classAlphabets[c]
}

// ParseCharacterClass maps a class name back to its value.
func ParseCharacterClass(name string) (CharacterClass, error) {
	for class, n := range classNames {
		if n == name {
			return class, nil
		}
	}
	return 0, fmt.Errorf("unknown character class %q", name)
}

// ClassSet is a bit set of character classes.
type ClassSet uint8

// FullClassSet contains every known class.
const FullClassSet = ClassSet(Lowercase | Digits | Uppercase | Symbols)

// NewClassSet builds a set from classes.
func NewClassSet(classes ...CharacterClass) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s |= ClassSet(c)
	}
	return s
}

// Has reports whether c is in the set.
func (s ClassSet) Has(c CharacterClass) bool {
	return s&ClassSet(c) != 0
}

// With returns the set extended with c.
func (s ClassSet) With(c CharacterClass) ClassSet {
	return s | ClassSet(c)
}

// Classes returns members in growth order.
func (s ClassSet) Classes() []CharacterClass {
	out := make([]CharacterClass, 0, len(AllClasses))
	for _, c := range AllClasses {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Missing returns the known classes not in the set.
func (s ClassSet) Missing() []CharacterClass {
	out := make([]CharacterClass, 0, len(AllClasses))
	for _, c := range AllClasses {
		if !s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the member class names.
func (s ClassSet) Names() []string {
	classes := s.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}

// Alphabet concatenates the alphabets of the members.
func (s ClassSet) Alphabet() string {
	var b strings.Builder
	for _, c := range s.Classes() {
		b.WriteString(c.Alphabet())
	}
	return b.String()
}

// Allows reports whether r belongs to one of the member classes.
func (s ClassSet) Allows(r rune) bool {
	for _, c := range s.Classes() {
		if strings.ContainsRune(c.Alphabet(), r) {
			return true
		}
	}
	return false
}

// ParseClassSet builds a set from class names.
func ParseClassSet(names []string) (ClassSet, error) {
	var s ClassSet
	for _, name := range names {
		c, err := ParseCharacterClass(strings.TrimSpace(name))
		if err != nil {
			return 0, err
		}
		s = s.With(c)
	}
	return s, nil
}

// Difficulty is the public shape of a block secret.
type Difficulty struct {
	Length  int
	Classes ClassSet
}

// Validate checks that value has exactly the required length and only allowed characters.
func (d Difficulty) Validate(value string) error {
	runes := []rune(value)
	if len(runes) != d.Length {
		return fmt.Errorf("%w: length %d, want %d", ErrGenerationValidation, len(runes), d.Length)
	}
	for i, r := range runes {
		if !d.Classes.Allows(r) {
			return fmt.Errorf("%w: character %q at %d outside %v", ErrGenerationValidation, r, i, d.Classes.Names())
		}
	}
	return nil
}
