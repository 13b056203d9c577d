package config

import "sort"

// Preset is a named integrand with integration limits. Step is only used by
// the accumulation animation.
type Preset struct {
	Expression string  `yaml:"expression" json:"expression"`
	Lower      float64 `yaml:"lower" json:"lower"`
	Upper      float64 `yaml:"upper" json:"upper"`
	Step       float64 `yaml:"step,omitempty" json:"step,omitempty"`
}

var Presets = map[string]map[string]*Preset{
	"animation": {
		"fundamental": {Expression: "0.5*sin(x)+1", Lower: 0.5, Upper: 3.5, Step: 0.02},
		"parabola":    {Expression: "x^2", Lower: 0, Upper: 2, Step: 0.02},
		"wave":        {Expression: "sin(x)", Lower: 0, Upper: 6.283185307179586, Step: 0.05},
		"decay":       {Expression: "exp(-x)", Lower: 0, Upper: 4, Step: 0.02},
	},
	"definite": {
		"parabola":   {Expression: "x^2", Lower: 0, Upper: 2},
		"sine":       {Expression: "sin(x)", Lower: 0, Upper: 3.141592653589793},
		"gaussian":   {Expression: "exp(-x^2)", Lower: -2, Upper: 2},
		"reciprocal": {Expression: "1/x", Lower: 1, Upper: 2.718281828459045},
		"reversed":   {Expression: "x^3", Lower: 2, Upper: -1},
	},
	"catalog": {
		"square":    {Expression: "x^2", Lower: 0, Upper: 1},
		"cube":      {Expression: "x^3", Lower: 0, Upper: 1},
		"cubic":     {Expression: "2*x^3-5*x+1", Lower: -2, Upper: 2},
		"quartic":   {Expression: "x^4-4*x^2", Lower: -2, Upper: 2},
		"sin":       {Expression: "sin(x)", Lower: 0, Upper: 1},
		"cos":       {Expression: "cos(x)", Lower: 0, Upper: 1},
		"sin-plus":  {Expression: "sin(x)+cos(x)", Lower: 0, Upper: 1},
		"sin-times": {Expression: "sin(x)*cos(x)", Lower: 0, Upper: 1},
		"exp":       {Expression: "exp(x)", Lower: 0, Upper: 1},
		"ln":        {Expression: "ln(x)", Lower: 1, Upper: 2},
		"bell":      {Expression: "exp(-x^2)", Lower: 0, Upper: 1},
		"inverse":   {Expression: "1/x", Lower: 1, Upper: 2},
		"arctan":    {Expression: "1/(1+x^2)", Lower: 0, Upper: 1},
		"sqrt":      {Expression: "sqrt(x)", Lower: 0, Upper: 1},
		"x-sin":     {Expression: "x*sin(x)", Lower: 0, Upper: 1},
		"exp-over":  {Expression: "exp(x)/(1+x^2)", Lower: 0, Upper: 1},
	},
}

func GetPreset(group, name string) *Preset {
	groupPresets, ok := Presets[group]
	if !ok {
		return nil
	}
	p, ok := groupPresets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets(group string) []string {
	groupPresets, ok := Presets[group]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(groupPresets))
	for name := range groupPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListGroups() []string {
	groups := make([]string, 0, len(Presets))
	for g := range Presets {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}
