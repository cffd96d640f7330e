package domain

// CustomizationFilter narrows a customization listing. Zero fields match everything.
type CustomizationFilter struct {
	Module string
	Kind   Kind
	Status Status
}
