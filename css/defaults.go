package css

// PropertyDefault defines the initial value and inheritance behavior of a
// CSS property.
type PropertyDefault struct {
	InitialValue string
	Inherited    bool
}

// PropertyDefaults contains the properties this resolver computes values
// for. Properties not listed here (user-select, pointer-events, vendor
// extensions) still cascade when a rule sets them, but have no entry in a
// computed style otherwise.
var PropertyDefaults = map[string]PropertyDefault{
	// Box model
	"display":    {InitialValue: "inline", Inherited: false},
	"position":   {InitialValue: "static", Inherited: false},
	"float":      {InitialValue: "none", Inherited: false},
	"clear":      {InitialValue: "none", Inherited: false},
	"overflow":   {InitialValue: "visible", Inherited: false},
	"visibility": {InitialValue: "visible", Inherited: true},
	"z-index":    {InitialValue: "auto", Inherited: false},
	"box-sizing": {InitialValue: "content-box", Inherited: false},

	// Sizing
	"width":      {InitialValue: "auto", Inherited: false},
	"height":     {InitialValue: "auto", Inherited: false},
	"min-width":  {InitialValue: "0", Inherited: false},
	"min-height": {InitialValue: "0", Inherited: false},
	"max-width":  {InitialValue: "none", Inherited: false},
	"max-height": {InitialValue: "none", Inherited: false},

	// Margins and padding
	"margin-top":     {InitialValue: "0", Inherited: false},
	"margin-right":   {InitialValue: "0", Inherited: false},
	"margin-bottom":  {InitialValue: "0", Inherited: false},
	"margin-left":    {InitialValue: "0", Inherited: false},
	"padding-top":    {InitialValue: "0", Inherited: false},
	"padding-right":  {InitialValue: "0", Inherited: false},
	"padding-bottom": {InitialValue: "0", Inherited: false},
	"padding-left":   {InitialValue: "0", Inherited: false},

	// Positioning
	"top":    {InitialValue: "auto", Inherited: false},
	"right":  {InitialValue: "auto", Inherited: false},
	"bottom": {InitialValue: "auto", Inherited: false},
	"left":   {InitialValue: "auto", Inherited: false},

	// Text
	"color":          {InitialValue: "black", Inherited: true},
	"font-family":    {InitialValue: "serif", Inherited: true},
	"font-size":      {InitialValue: "16px", Inherited: true},
	"font-style":     {InitialValue: "normal", Inherited: true},
	"font-weight":    {InitialValue: "normal", Inherited: true},
	"line-height":    {InitialValue: "normal", Inherited: true},
	"text-align":     {InitialValue: "start", Inherited: true},
	"text-indent":    {InitialValue: "0", Inherited: true},
	"white-space":    {InitialValue: "normal", Inherited: true},
	"vertical-align": {InitialValue: "baseline", Inherited: false},
	"direction":      {InitialValue: "ltr", Inherited: true},

	// Background
	"background-color": {InitialValue: "transparent", Inherited: false},
	"background-image": {InitialValue: "none", Inherited: false},

	// Other
	"cursor":  {InitialValue: "auto", Inherited: true},
	"opacity": {InitialValue: "1", Inherited: false},
	"outline": {InitialValue: "none", Inherited: false},
}
