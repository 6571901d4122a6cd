package builtins

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/toakleaf/sass.go/internal/value"
)

// stringFuncs implements the `sass:string` module (§4.3). Indices are
// 1-based Sass string indices over Unicode code points, not bytes, the
// way meta.inspect()'s round-trip property and the glossary's "index"
// entry require; unique-id leans on google/uuid rather than hand-rolling
// a counter, since the teacher's corpus already pulls in a UUID library
// for identifier generation elsewhere in the domain stack.
func stringFuncs() *Namespace {
	ns := newNamespace("sass:string")

	ns.def("length", []Param{{Name: "string"}}, func(a []value.Value) (value.Value, error) {
		s, err := wantString("length", a[0])
		if err != nil {
			return nil, err
		}
		return value.NewUnitless(float64(utf8.RuneCountInString(s.Text))), nil
	})

	ns.def("insert", []Param{{Name: "string"}, {Name: "insert"}, {Name: "index"}}, func(a []value.Value) (value.Value, error) {
		s, err := wantString("insert", a[0])
		if err != nil {
			return nil, err
		}
		ins, err := wantString("insert", a[1])
		if err != nil {
			return nil, err
		}
		n, err := wantNumber("insert", a[2])
		if err != nil {
			return nil, err
		}
		runes := []rune(s.Text)
		idx := stringInsertIndex(int(n.Val), len(runes))
		out := string(runes[:idx]) + ins.Text + string(runes[idx:])
		return value.NewString(out, s.Quoted), nil
	})

	ns.def("index", []Param{{Name: "string"}, {Name: "substring"}}, func(a []value.Value) (value.Value, error) {
		s, err := wantString("index", a[0])
		if err != nil {
			return nil, err
		}
		sub, err := wantString("index", a[1])
		if err != nil {
			return nil, err
		}
		byteIdx := strings.Index(s.Text, sub.Text)
		if byteIdx < 0 {
			return value.NullValue, nil
		}
		return value.NewUnitless(float64(utf8.RuneCountInString(s.Text[:byteIdx]) + 1)), nil
	})

	ns.def("slice", []Param{
		{Name: "string"}, {Name: "start-at"}, {Name: "end-at", Default: value.NewUnitless(-1)},
	}, func(a []value.Value) (value.Value, error) {
		s, err := wantString("slice", a[0])
		if err != nil {
			return nil, err
		}
		start, err := wantNumber("slice", a[1])
		if err != nil {
			return nil, err
		}
		end, err := wantNumber("slice", a[2])
		if err != nil {
			return nil, err
		}
		runes := []rune(s.Text)
		from, to := sliceBounds(int(start.Val), int(end.Val), len(runes))
		if from > to {
			return value.NewString("", s.Quoted), nil
		}
		return value.NewString(string(runes[from:to]), s.Quoted), nil
	})

	ns.def("to-upper-case", []Param{{Name: "string"}}, func(a []value.Value) (value.Value, error) {
		s, err := wantString("to-upper-case", a[0])
		if err != nil {
			return nil, err
		}
		return value.NewString(strings.ToUpper(s.Text), s.Quoted), nil
	})

	ns.def("to-lower-case", []Param{{Name: "string"}}, func(a []value.Value) (value.Value, error) {
		s, err := wantString("to-lower-case", a[0])
		if err != nil {
			return nil, err
		}
		return value.NewString(strings.ToLower(s.Text), s.Quoted), nil
	})

	ns.def("unique-id", nil, func(a []value.Value) (value.Value, error) {
		id := "u" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		return value.NewString(id, false), nil
	})

	ns.def("quote", []Param{{Name: "string"}}, func(a []value.Value) (value.Value, error) {
		s, err := wantString("quote", a[0])
		if err != nil {
			return nil, err
		}
		return value.NewString(s.Text, true), nil
	})

	ns.def("unquote", []Param{{Name: "string"}}, func(a []value.Value) (value.Value, error) {
		s, err := wantString("unquote", a[0])
		if err != nil {
			return nil, err
		}
		return value.NewString(s.Text, false), nil
	})

	return ns
}

func stringInsertIndex(n, length int) int {
	if n < 0 {
		idx := length + n + 1
		if idx < 0 {
			return 0
		}
		return idx
	}
	idx := n - 1
	if idx < 0 {
		return 0
	}
	if idx > length {
		return length
	}
	return idx
}

// sliceBounds converts Sass's 1-based, possibly-negative start/end string
// indices into a 0-based [from, to) rune range.
func sliceBounds(start, end, length int) (int, int) {
	from := start
	if from < 0 {
		from = length + from + 1
	}
	if from < 1 {
		from = 1
	}
	to := end
	if to < 0 {
		to = length + to + 1
	}
	if to > length {
		to = length
	}
	return from - 1, to
}
