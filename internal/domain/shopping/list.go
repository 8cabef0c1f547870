// Package shopping groups recipe ingredients into a store-section
// shopping list scaled to the desired number of servings.
package shopping

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
	"github.com/alchemorsel/personal-chef/internal/domain/units"
)

// Item is one line of a shopping list
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Display  string  `json:"display"`
	Checked  bool    `json:"checked"`
}

// Section is a store section and the items bought there
type Section struct {
	Name     string          `json:"name"`
	Category recipe.Category `json:"category"`
	Emoji    string          `json:"emoji"`
	Order    int             `json:"order"`
	Items    []Item          `json:"items"`
}

// List is a complete shopping list
type List struct {
	RecipeName string    `json:"recipe_name"`
	Servings   int       `json:"servings"`
	Sections   []Section `json:"sections"`
	TotalItems int       `json:"total_items"`
}

// Build scales every ingredient from original to desired servings and
// groups the results by store section. Sections appear in store order and
// only when they hold at least one item; items keep their input order.
func Build(recipeName string, original, desired int, ingredients []recipe.Ingredient) (*List, error) {
	if original <= 0 || desired <= 0 {
		return nil, recipe.ErrInvalidServings
	}

	byCategory := make(map[recipe.Category]*Section)
	for _, ing := range ingredients {
		cfg, err := recipe.LookupSection(ing.Category)
		if err != nil {
			return nil, fmt.Errorf("ingredient %s: %w", ing.ID, err)
		}

		section, ok := byCategory[ing.Category]
		if !ok {
			section = &Section{
				Name:     cfg.Name,
				Category: cfg.Category,
				Emoji:    cfg.Emoji,
				Order:    cfg.Order,
			}
			byCategory[ing.Category] = section
		}

		qty := units.Scale(ing.Quantity, original, desired)
		section.Items = append(section.Items, Item{
			ID:       ing.ID,
			Name:     ing.Name(),
			Quantity: qty,
			Unit:     ing.Unit,
			Display:  fmt.Sprintf("%s %s %s", units.FormatQuantity(qty), ing.Unit, ing.Name()),
		})
	}

	sections := make([]Section, 0, len(byCategory))
	for _, s := range byCategory {
		sections = append(sections, *s)
	}
	slices.SortFunc(sections, func(a, b Section) int {
		return cmp.Compare(a.Order, b.Order)
	})

	return &List{
		RecipeName: recipeName,
		Servings:   desired,
		Sections:   sections,
		TotalItems: len(ingredients),
	}, nil
}

// ItemCount counts the items across all sections
func (l *List) ItemCount() int {
	n := 0
	for _, s := range l.Sections {
		n += len(s.Items)
	}
	return n
}
