package pizza

import (
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"

	"pizzamanager/pkg/compare"
)

const ErrUnknownCriterion errorkit.Error = "ErrUnknownCriterion"

// Criterion names the property a pizza collection can be ordered by.
type Criterion string

const (
	ByPrice    Criterion = "price"
	BySize     Criterion = "size"
	ByCalories Criterion = "calories"
)

func ParseCriterion(raw string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "price", "p":
		return ByPrice, nil
	case "size", "s":
		return BySize, nil
	case "calories", "c":
		return ByCalories, nil
	default:
		return "", ErrUnknownCriterion.F("%q", raw)
	}
}

// Comparator orders pizzas ascending by the given criterion.
//
// Size means the remaining area, so a half eaten pizza is smaller than its whole twin.
func Comparator(c Criterion) (compare.Func[*Pizza], error) {
	switch c {
	case ByPrice:
		return comparePrice, nil
	case BySize:
		return compare.By(func(p *Pizza) float64 { return p.RemainingArea() }), nil
	case ByCalories:
		return compare.By(CaloriesKey), nil
	default:
		return nil, ErrUnknownCriterion.F("%q", c)
	}
}

func CaloriesKey(p *Pizza) int { return p.Calories() }

func comparePrice(a, b *Pizza) int { return a.Cost().Compare(b.Cost()) }
