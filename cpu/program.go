package cpu

import (
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Program is an immutable initial memory image.
type Program []int64

func isSeparator(r rune) bool {
	switch r {
	case ',', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// ParseString parses a comma separated program listing.
func ParseString(text string) (prog Program, err error) {
	for n, token := range strings.FieldsFunc(text, isSeparator) {
		var value int64
		value, err = strconv.ParseInt(token, 10, 64)
		if err != nil {
			err = ErrParseNumber{Index: n, Token: token}
			prog = nil
			return
		}
		prog = append(prog, value)
	}

	return
}

// MustParse is like ParseString but panics on error.
func MustParse(text string) Program {
	prog, err := ParseString(text)
	if err != nil {
		panic(err)
	}
	return prog
}

// Parse reads a comma separated program listing.
func Parse(r io.Reader) (prog Program, err error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}

	return ParseString(string(text))
}

// Load reads a program listing from fileName.
func Load(fileName string) (prog Program, err error) {
	inf, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer inf.Close()

	prog, err = Parse(inf)
	if err != nil {
		return nil, errors.Wrapf(err, "%v: load failed", fileName)
	}

	return
}

// Clone returns a copy of the program.
func (prog Program) Clone() Program {
	return slices.Clone(prog)
}

// String returns the comma separated listing of the program.
func (prog Program) String() string {
	cells := make([]string, len(prog))
	for n, value := range prog {
		cells[n] = strconv.FormatInt(value, 10)
	}
	return strings.Join(cells, ",")
}
