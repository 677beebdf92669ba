package theme

// Custom property names written to a Root when a scheme is applied.
const (
	PropPrimary       = "--primary"
	PropPrimaryDark   = "--primary-dark"
	PropPrimaryBorder = "--primary-border"
	PropPrimaryFocus  = "--primary-focus"
	PropPrimaryShadow = "--primary-shadow"
)

// Root is the theming target of a UI surface: one background value and a set
// of named custom properties.
type Root interface {
	SetBackground(value string)
	SetProperty(name, value string)
}

// Scheme is a fixed bundle of six colors applied together.
type Scheme struct {
	Name        string `json:"name" yaml:"name"`
	Gradient    string `json:"gradient" yaml:"gradient"`         // Background gradient
	Primary     string `json:"primary" yaml:"primary"`           // Buttons and emphasis
	PrimaryDark string `json:"primary_dark" yaml:"primary_dark"` // Hover/focused variant
	Border      string `json:"border" yaml:"border"`             // Input and card borders
	Focus       string `json:"focus" yaml:"focus"`               // Focused field ring
	Shadow      string `json:"shadow" yaml:"shadow"`             // Card shadow
}

// Property is a single custom property assignment.
type Property struct {
	Name  string
	Value string
}

// Properties returns the five custom properties of the scheme in a fixed order.
func (s Scheme) Properties() []Property {
	return []Property{
		{PropPrimary, s.Primary},
		{PropPrimaryDark, s.PrimaryDark},
		{PropPrimaryBorder, s.Border},
		{PropPrimaryFocus, s.Focus},
		{PropPrimaryShadow, s.Shadow},
	}
}

// Apply writes the background gradient and the five properties to root.
func (s Scheme) Apply(root Root) {
	root.SetBackground(s.Gradient)
	for _, p := range s.Properties() {
		root.SetProperty(p.Name, p.Value)
	}
}

// DefaultSchemes returns a copy of the built-in schemes.
func DefaultSchemes() []Scheme {
	result := make([]Scheme, len(bundledSchemes))
	copy(result, bundledSchemes)
	return result
}

var bundledSchemes = []Scheme{
	{
		Name:        "azul",
		Gradient:    "linear-gradient(160deg, #e7ecff 0%, #f2f5ff 100%)",
		Primary:     "#2d4bff",
		PrimaryDark: "#1f34b5",
		Border:      "rgba(45, 75, 255, 0.2)",
		Focus:       "rgba(45, 75, 255, 0.15)",
		Shadow:      "rgba(33, 56, 255, 0.1)",
	},
	{
		Name:        "naranja",
		Gradient:    "linear-gradient(160deg, #ffe8e8 0%, #ffd3b6 100%)",
		Primary:     "#f97316",
		PrimaryDark: "#ea580c",
		Border:      "rgba(249, 115, 22, 0.25)",
		Focus:       "rgba(249, 115, 22, 0.18)",
		Shadow:      "rgba(249, 115, 22, 0.12)",
	},
	{
		Name:        "verde",
		Gradient:    "linear-gradient(160deg, #e0f9f1 0%, #c8f7dc 100%)",
		Primary:     "#0f9d58",
		PrimaryDark: "#0b7d46",
		Border:      "rgba(15, 157, 88, 0.25)",
		Focus:       "rgba(15, 157, 88, 0.18)",
		Shadow:      "rgba(15, 157, 88, 0.12)",
	},
	{
		Name:        "rosa",
		Gradient:    "linear-gradient(160deg, #fff0f6 0%, #ffd6e8 100%)",
		Primary:     "#d5298a",
		PrimaryDark: "#aa1f6c",
		Border:      "rgba(213, 41, 138, 0.25)",
		Focus:       "rgba(213, 41, 138, 0.2)",
		Shadow:      "rgba(213, 41, 138, 0.12)",
	},
	{
		Name:        "cielo",
		Gradient:    "linear-gradient(160deg, #edf6ff 0%, #d9ecff 100%)",
		Primary:     "#2563eb",
		PrimaryDark: "#1d4ed8",
		Border:      "rgba(37, 99, 235, 0.25)",
		Focus:       "rgba(37, 99, 235, 0.18)",
		Shadow:      "rgba(37, 99, 235, 0.12)",
	},
}
