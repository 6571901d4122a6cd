package builtins

import (
	"github.com/toakleaf/sass.go/internal/value"
)

// listFuncs implements the `sass:list` module (§4.3). wantList already
// normalizes maps/arglists/bare values into a value.List the way a
// single-typed "list" parameter is documented to behave throughout
// spec.md, so every function here just operates on *value.List.
func listFuncs() *Namespace {
	ns := newNamespace("sass:list")

	ns.def("length", []Param{{Name: "list"}}, func(a []value.Value) (value.Value, error) {
		l := wantList("length", a[0])
		return value.NewUnitless(float64(len(l.Items))), nil
	})

	ns.def("nth", []Param{{Name: "list"}, {Name: "n"}}, func(a []value.Value) (value.Value, error) {
		l := wantList("nth", a[0])
		idx, err := listIndex("nth", l, a[1])
		if err != nil {
			return nil, err
		}
		return l.Items[idx], nil
	})

	ns.def("set-nth", []Param{{Name: "list"}, {Name: "n"}, {Name: "value"}}, func(a []value.Value) (value.Value, error) {
		l := wantList("set-nth", a[0])
		idx, err := listIndex("set-nth", l, a[1])
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, len(l.Items))
		copy(out, l.Items)
		out[idx] = a[2]
		return value.NewList(out, l.Separator, l.Brackets), nil
	})

	ns.def("join", []Param{
		{Name: "list1"}, {Name: "list2"},
		{Name: "separator", Default: value.NewString("auto", false)},
		{Name: "bracketed", Default: value.Boolean(false)},
	}, func(a []value.Value) (value.Value, error) {
		l1 := wantList("join", a[0])
		l2 := wantList("join", a[1])
		sep := l1.Separator
		if sep == value.SepUndecided {
			sep = l2.Separator
		}
		if s, ok := a[2].(*value.SassString); ok {
			switch s.Text {
			case "comma":
				sep = value.SepComma
			case "space":
				sep = value.SepSpace
			case "slash":
				sep = value.SepSlash
			}
		}
		bracketed := l1.Brackets
		if bn, ok := a[3].(value.Boolean); ok {
			bracketed = bool(bn)
		} else if !isNull(a[3]) {
			bracketed = a[3].Truthy()
		}
		items := append(append([]value.Value{}, l1.Items...), l2.Items...)
		return value.NewList(items, sep, bracketed), nil
	})

	ns.def("append", []Param{
		{Name: "list"}, {Name: "val"},
		{Name: "separator", Default: value.NewString("auto", false)},
	}, func(a []value.Value) (value.Value, error) {
		l := wantList("append", a[0])
		sep := l.Separator
		if s, ok := a[2].(*value.SassString); ok {
			switch s.Text {
			case "comma":
				sep = value.SepComma
			case "space":
				sep = value.SepSpace
			}
		}
		items := append(append([]value.Value{}, l.Items...), a[1])
		return value.NewList(items, sep, l.Brackets), nil
	})

	ns.def("zip", []Param{{Name: "lists", Rest: true}}, func(a []value.Value) (value.Value, error) {
		lists := make([]*value.List, len(a))
		minLen := -1
		for i, v := range a {
			lists[i] = wantList("zip", v)
			if minLen == -1 || len(lists[i].Items) < minLen {
				minLen = len(lists[i].Items)
			}
		}
		if minLen < 0 {
			minLen = 0
		}
		rows := make([]value.Value, minLen)
		for i := 0; i < minLen; i++ {
			row := make([]value.Value, len(lists))
			for j, l := range lists {
				row[j] = l.Items[i]
			}
			rows[i] = value.NewList(row, value.SepSpace, false)
		}
		return value.NewList(rows, value.SepComma, false), nil
	})

	ns.def("index", []Param{{Name: "list"}, {Name: "value"}}, func(a []value.Value) (value.Value, error) {
		l := wantList("index", a[0])
		for i, it := range l.Items {
			if value.Equal(it, a[1]) {
				return value.NewUnitless(float64(i + 1)), nil
			}
		}
		return value.NullValue, nil
	})

	ns.def("list-separator", []Param{{Name: "list"}}, func(a []value.Value) (value.Value, error) {
		l := wantList("list-separator", a[0])
		switch l.Separator {
		case value.SepComma:
			return value.NewString("comma", false), nil
		case value.SepSlash:
			return value.NewString("slash", false), nil
		default:
			return value.NewString("space", false), nil
		}
	})

	ns.def("is-bracketed", []Param{{Name: "list"}}, func(a []value.Value) (value.Value, error) {
		l := wantList("is-bracketed", a[0])
		return boolNum(l.Brackets), nil
	})

	return ns
}

// listIndex resolves a 1-based (or negative, counting from the end) Sass
// list index to a 0-based Go slice index, bounds-checked.
func listIndex(fn string, l *value.List, idxArg value.Value) (int, error) {
	n, err := wantNumber(fn, idxArg)
	if err != nil {
		return 0, err
	}
	i := int(n.Val)
	if i == 0 {
		return 0, argError(fn, "list index 0 is out of range")
	}
	if i < 0 {
		i = len(l.Items) + i + 1
	}
	if i < 1 || i > len(l.Items) {
		return 0, argError(fn, "list index out of range")
	}
	return i - 1, nil
}
