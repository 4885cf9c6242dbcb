package model

// Category is one of the configurable dimensions of the simulated product.
type Category string

const (
	CategoryData      Category = "data"
	CategoryFiltering Category = "filtering"
	CategoryBehavior  Category = "behavior"
	CategoryBias      Category = "bias"
)

// Categories is the fixed display order used by every derived view.
var Categories = []Category{CategoryData, CategoryFiltering, CategoryBehavior, CategoryBias}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryData, CategoryFiltering, CategoryBehavior, CategoryBias:
		return true
	}
	return false
}

// MultiSelect reports whether several options of c may be active at once.
func (c Category) MultiSelect() bool {
	return c == CategoryData
}

// Label returns the heading used for c in summaries and the TUI.
func (c Category) Label() string {
	switch c {
	case CategoryData:
		return "Training Data"
	case CategoryFiltering:
		return "Content Filtering"
	case CategoryBehavior:
		return "Interaction Behavior"
	case CategoryBias:
		return "Bias Handling"
	}
	return string(c)
}

// OptionID identifies an option within its category.
type OptionID string

// Training data sources.
const (
	DataPublic    OptionID = "public"
	DataLicensed  OptionID = "licensed"
	DataUser      OptionID = "user"
	DataSynthetic OptionID = "synthetic"
	DataCurated   OptionID = "curated"
)

// Content filtering levels.
const (
	FilterMinimal  OptionID = "minimal"
	FilterModerate OptionID = "moderate"
	FilterStrict   OptionID = "strict"
	FilterAdaptive OptionID = "adaptive"
)

// Interaction behaviors.
const (
	BehaviorNeutral    OptionID = "neutral"
	BehaviorDirective  OptionID = "directive"
	BehaviorEmpathetic OptionID = "empathetic"
	BehaviorSocratic   OptionID = "socratic"
)

// Bias handling strategies.
const (
	BiasIgnore   OptionID = "ignore"
	BiasBasic    OptionID = "basic"
	BiasMinimize OptionID = "minimize"
	BiasAudit    OptionID = "audit"
)

// Key returns the "category-option" lookup key used by content tables.
func Key(c Category, id OptionID) string {
	return string(c) + "-" + string(id)
}

// AdaptToUserKey is the insight key contributed by the adapt-to-user flag.
const AdaptToUserKey = "adaptToUser-true"
