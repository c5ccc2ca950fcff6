package benchmarks

import (
	"unicode/utf8"

	"edlog.io/piecetable"
	"edlog.io/piecetable/differ"
	mb0 "github.com/mb0/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Impl derives an edit log that rewrites x into y, using a different diff engine per
// implementation but always replaying through the same piece table. This keeps the comparison
// honest: every engine pays for the same log construction, only the script differs.
type Impl struct {
	Name    string
	Rewrite func(x, y string) (piecetable.Table, error)
}

var Impls = []Impl{
	{
		Name: "differ",
		Rewrite: func(x, y string) (piecetable.Table, error) {
			return differ.Strings(x, y)
		},
	},
	{
		Name: "diffmatchpatch",
		Rewrite: func(x, y string) (piecetable.Table, error) {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(x, y, false)

			t := piecetable.New(x)
			pos := 0
			var err error
			for _, d := range diffs {
				switch d.Type {
				case diffmatchpatch.DiffEqual:
					pos += utf8.RuneCountInString(d.Text)
				case diffmatchpatch.DiffDelete:
					t, err = t.Delete(pos, utf8.RuneCountInString(d.Text))
				case diffmatchpatch.DiffInsert:
					t, err = t.Insert(d.Text, pos)
					pos += utf8.RuneCountInString(d.Text)
				}
				if err != nil {
					return t, err
				}
			}
			return t, nil
		},
	},
	{
		Name: "mb0",
		Rewrite: func(x, y string) (piecetable.Table, error) {
			yr := []rune(y)
			changes := mb0.Runes([]rune(x), yr)

			t := piecetable.New(x)
			var err error
			for _, c := range changes {
				// After replaying all earlier changes the text up to this change equals y, so
				// the change lands at its position in y.
				if c.Del > 0 {
					t, err = t.Delete(c.B, c.Del)
					if err != nil {
						return t, err
					}
				}
				if c.Ins > 0 {
					t, err = t.Insert(string(yr[c.B:c.B+c.Ins]), c.B)
					if err != nil {
						return t, err
					}
				}
			}
			return t, nil
		},
	},
}
