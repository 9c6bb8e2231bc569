package task

import "github.com/charmbracelet/lipgloss"

// Attrs describes how a category is presented: list icon, accent colors for
// the light and dark palettes.
type Attrs struct {
	Label string
	Icon  string
	Light lipgloss.Color
	Dark  lipgloss.Color
}

// Attributes returns the presentation attributes for a category. The switch
// is exhaustive over the closed enum; unknown values get the Custom styling.
func Attributes(c Category) Attrs {
	switch c {
	case CategoryPersonal:
		return Attrs{Label: "Personal", Icon: "●", Light: lipgloss.Color("63"), Dark: lipgloss.Color("105")}
	case CategoryBusiness:
		return Attrs{Label: "Business", Icon: "◆", Light: lipgloss.Color("39"), Dark: lipgloss.Color("75")}
	case CategoryBills:
		return Attrs{Label: "Bills", Icon: "▰", Light: lipgloss.Color("35"), Dark: lipgloss.Color("42")}
	case CategoryTaxes:
		return Attrs{Label: "Taxes", Icon: "▲", Light: lipgloss.Color("161"), Dark: lipgloss.Color("204")}
	case CategoryCustom:
		return Attrs{Label: "Custom", Icon: "■", Light: lipgloss.Color("245"), Dark: lipgloss.Color("247")}
	default:
		return Attrs{Label: string(c), Icon: "■", Light: lipgloss.Color("245"), Dark: lipgloss.Color("247")}
	}
}

// SubCategories lists the suggested sub-categories offered by the creation
// form. Sub-category remains free-form; this is display guidance only.
func SubCategories(c Category) []string {
	switch c {
	case CategoryPersonal:
		return []string{"Chores", "Health", "Fitness", "Social"}
	case CategoryBusiness:
		return []string{"Meetings", "Development", "Sales", "Admin"}
	case CategoryBills:
		return []string{"Electricity", "Water", "Internet", "Credit Card"}
	case CategoryTaxes:
		return []string{"BIR", "Quarterly", "Annual", "LGU"}
	default:
		return nil
	}
}

// SubCategoryIcon returns a glyph for the known sub-categories, falling back
// to the category icon.
func SubCategoryIcon(c Category, sub string) string {
	switch sub {
	case "Electricity":
		return "⚡"
	case "Water":
		return "💧"
	case "Internet":
		return "🌐"
	case "Credit Card":
		return "💳"
	case "BIR":
		return "🏛"
	}
	return Attributes(c).Icon
}
