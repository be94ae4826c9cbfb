package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Chart is the validated chart of accounts. It is always rebuilt from the
// flat category set; descendant/ancestor queries are prefix filters over the
// sorted code list.
type Chart struct {
	ordered []*Category
	byCode  map[string]*Category
}

// NewChart validates a flat category set and builds the tree view over it.
func NewChart(categories []*Category) (*Chart, error) {
	byCode := make(map[string]*Category, len(categories))
	ordered := make([]*Category, 0, len(categories))

	for _, c := range categories {
		if err := ValidateCode(c.Code); err != nil {
			return nil, err
		}

		if _, ok := byCode[c.Code]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, c.Code)
		}

		byCode[c.Code] = c
		ordered = append(ordered, c)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return CompareCodes(ordered[i].Code, ordered[j].Code) < 0
	})

	return &Chart{ordered: ordered, byCode: byCode}, nil
}

// Resolve returns the category for a code, or nil.
func (ch *Chart) Resolve(code string) *Category {
	return ch.byCode[code]
}

// Len returns the number of categories.
func (ch *Chart) Len() int {
	return len(ch.ordered)
}

// Categories returns every category in hierarchical code order.
func (ch *Chart) Categories() []*Category {
	out := make([]*Category, len(ch.ordered))
	copy(out, ch.ordered)

	return out
}

// Ancestors walks the strict dot-prefixes of a code, nearest first. Missing
// intermediate nodes are skipped.
func (ch *Chart) Ancestors(code string) []*Category {
	var out []*Category

	for parent := CodeParent(code); parent != ""; parent = CodeParent(parent) {
		if c, ok := ch.byCode[parent]; ok {
			out = append(out, c)
		}
	}

	return out
}

// Descendants returns every category whose code is a strict dot-extension of
// the given code, in hierarchical order.
func (ch *Chart) Descendants(code string) []*Category {
	prefix := code + "."

	var out []*Category
	for _, c := range ch.ordered {
		if strings.HasPrefix(c.Code, prefix) {
			out = append(out, c)
		}
	}

	return out
}

// Children returns the direct children of a code.
func (ch *Chart) Children(code string) []*Category {
	var out []*Category
	for _, c := range ch.ordered {
		if c.ParentCode == code {
			out = append(out, c)
		}
	}

	return out
}

// IsLeaf reports whether a code has no descendants: an analytical category,
// the only kind ledger entries may reference.
func (ch *Chart) IsLeaf(code string) bool {
	prefix := code + "."
	for _, c := range ch.ordered {
		if strings.HasPrefix(c.Code, prefix) {
			return false
		}
	}

	return true
}

// TransferLeaf finds the active analytical category reserved for transfer
// legs of the given nature (an OPERACAO_PERMUTATIVA leaf).
func (ch *Chart) TransferLeaf(n Nature) *Category {
	for _, c := range ch.ordered {
		if c.Active && c.Class == ClassOperacaoPermutativa && c.Nature == n && ch.IsLeaf(c.Code) {
			return c
		}
	}

	return nil
}
