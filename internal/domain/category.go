package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Nature is the credit/debit polarity of a category.
type Nature string

const (
	NatureCredit Nature = "CREDIT"
	NatureDebit  Nature = "DEBIT"
)

// CategoryType classifies a category as income- or expense-side.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

// AccountClass is the statutory classification derived from the code's root
// segment (the DFC section a category reports under).
type AccountClass string

const (
	ClassReceita                  AccountClass = "RECEITA"
	ClassCusto                    AccountClass = "CUSTO"
	ClassDespesaOperacional       AccountClass = "DESPESA_OPERACIONAL"
	ClassDespesaFinanceira        AccountClass = "DESPESA_FINANCEIRA"
	ClassOperacaoPatrimonial      AccountClass = "OPERACAO_PATRIMONIAL"
	ClassMovimentacaoComplementar AccountClass = "MOVIMENTACAO_COMPLEMENTAR"
	ClassOperacaoPermutativa      AccountClass = "OPERACAO_PERMUTATIVA"
)

// Sides of the chart, derived from nature.
const (
	SideReceita = "RECEITA"
	SideDespesa = "DESPESA/CUSTO"
)

// Category is a chart-of-accounts node. The hierarchy is purely structural:
// parent/child relations follow from the dot-separated code, never from
// stored pointers.
type Category struct {
	ID         string
	Code       string
	Name       string
	Type       CategoryType
	Nature     Nature
	Side       string
	Class      AccountClass
	Level      int
	ParentCode string
	SortKey    int32
	Active     bool
	IsSystem   bool
	IsEditable bool
	CanDelete  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

var codePattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// ValidateCode checks a hierarchical code against the dot-separated digit
// pattern.
func ValidateCode(code string) error {
	if !codePattern.MatchString(code) {
		return fmt.Errorf("%w: %q", ErrInvalidCodeFormat, code)
	}

	return nil
}

// CodeLevel is the number of dot-separated segments.
func CodeLevel(code string) int {
	return strings.Count(code, ".") + 1
}

// CodeParent strips the last segment; empty for roots.
func CodeParent(code string) string {
	i := strings.LastIndex(code, ".")
	if i < 0 {
		return ""
	}

	return code[:i]
}

// CodeRoot returns the first segment.
func CodeRoot(code string) string {
	if i := strings.Index(code, "."); i >= 0 {
		return code[:i]
	}

	return code
}

// SortKey folds the code segments into a single positional integer so that
// codes sort in hierarchical order as plain ints. Non-digit characters are
// stripped and each segment is clamped to 99; charts must keep segments
// below 100 for the ordering to hold.
func SortKey(code string) int32 {
	var acc int32

	for _, seg := range strings.Split(code, ".") {
		n := 0
		for _, r := range seg {
			if r < '0' || r > '9' {
				continue
			}
			if n < 1000 {
				n = n*10 + int(r-'0')
			}
		}
		if n > 99 {
			n = 99
		}
		acc = acc*100 + int32(n)
	}

	return acc
}

// DeriveClass maps the code's root segment to its statutory class.
func DeriveClass(code string) AccountClass {
	switch CodeRoot(code) {
	case "1":
		return ClassReceita
	case "2":
		return ClassCusto
	case "3":
		return ClassDespesaOperacional
	case "4":
		return ClassDespesaFinanceira
	case "5":
		return ClassOperacaoPatrimonial
	case "8":
		return ClassMovimentacaoComplementar
	case "9":
		return ClassOperacaoPermutativa
	default:
		return ClassDespesaOperacional
	}
}

// DeriveNature returns CREDIT for income categories, DEBIT otherwise.
func DeriveNature(t CategoryType) Nature {
	if t == CategoryIncome {
		return NatureCredit
	}

	return NatureDebit
}

// DeriveSide maps nature to the chart side label.
func DeriveSide(n Nature) string {
	if n == NatureCredit {
		return SideReceita
	}

	return SideDespesa
}

// statutoryRoots are the fixed chart roots whose nodes are system-protected
// when seeded.
var statutoryRoots = map[string]bool{
	"1": true, "2": true, "3": true, "4": true,
	"5": true, "8": true, "9": true,
}

// SeedProtected reports whether a seeded code belongs to the fixed statutory
// chart and must be locked against edit/delete.
func SeedProtected(code string) bool {
	return statutoryRoots[CodeRoot(code)]
}

// Enrich fills every code-derived field in place. Protection flags are left
// untouched; callers decide those (seeding locks statutory nodes, user
// categories default to editable).
func (c *Category) Enrich() {
	c.Level = CodeLevel(c.Code)
	c.ParentCode = CodeParent(c.Code)
	c.Nature = DeriveNature(c.Type)
	c.Side = DeriveSide(c.Nature)
	c.Class = DeriveClass(c.Code)
	c.SortKey = SortKey(c.Code)
}

// CompareCodes orders two codes hierarchically, comparing segments by numeric
// value. Unlike SortKey it does not clamp, so it is safe for reports on any
// chart.
func CompareCodes(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) && i < len(bs); i++ {
		av := segmentValue(as[i])
		bv := segmentValue(bs[i])
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func segmentValue(seg string) int {
	n := 0
	for _, r := range seg {
		if r < '0' || r > '9' {
			continue
		}
		if n < 1<<28 {
			n = n*10 + int(r-'0')
		}
	}

	return n
}
