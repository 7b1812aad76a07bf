package engine

// Display colors are part of the derived payload so every consumer renders
// categories consistently. Unknown categories fall back to "other".

var expenseColors = map[string]string{
	"food":          "#ef4444",
	"rent":          "#8b5cf6",
	"emi":           "#f59e0b",
	"travel":        "#06b6d4",
	"subscription":  "#ec4899",
	"medical":       "#14b8a6",
	"utilities":     "#6366f1",
	"shopping":      "#f97316",
	"entertainment": "#a855f7",
	"education":     "#3b82f6",
	"insurance":     "#10b981",
	"fuel":          "#eab308",
	"groceries":     "#22c55e",
	"other":         "#64748b",
}

var assetColors = map[string]string{
	"gold":          "#f59e0b",
	"crypto":        "#8b5cf6",
	"stocks":        "#3b82f6",
	"mutual_funds":  "#06b6d4",
	"property":      "#10b981",
	"cash":          "#22c55e",
	"fixed_deposit": "#14b8a6",
	"ppf":           "#6366f1",
	"other":         "#64748b",
}

func expenseColor(category string) string {
	if c, ok := expenseColors[category]; ok {
		return c
	}
	return expenseColors["other"]
}

func assetColor(assetType string) string {
	if c, ok := assetColors[assetType]; ok {
		return c
	}
	return assetColors["other"]
}
