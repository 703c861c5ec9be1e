package domain

import (
	"fmt"
	"strings"
)

// modelAliases maps short configured model names to concrete provider
// targets. Family A models use dated provider-internal identifiers; family B
// accepts the public names directly.
//
//nolint:gochecknoglobals // Static resolution table
var modelAliases = map[string]ModelRef{
	"gpt-4o":           {Family: FamilyOpenAI, ProviderModelID: "gpt-4o-2024-08-06"},
	"gpt-4o-mini":      {Family: FamilyOpenAI, ProviderModelID: "gpt-4o-mini-2024-07-18"},
	"gpt-4.1":          {Family: FamilyOpenAI, ProviderModelID: "gpt-4.1-2025-04-14"},
	"gpt-4.1-mini":     {Family: FamilyOpenAI, ProviderModelID: "gpt-4.1-mini-2025-04-14"},
	"gemini-pro":       {Family: FamilyGemini, ProviderModelID: "gemini-1.5-pro"},
	"gemini-flash":     {Family: FamilyGemini, ProviderModelID: "gemini-1.5-flash"},
	"gemini-2.0-flash": {Family: FamilyGemini, ProviderModelID: "gemini-2.0-flash"},
}

// familyDefaults names the model each family falls back to when invoked as
// the degraded cross-family alternative.
//
//nolint:gochecknoglobals // Static resolution table
var familyDefaults = map[ProviderFamily]string{
	FamilyOpenAI: "gpt-4o-mini-2024-07-18",
	FamilyGemini: "gemini-1.5-flash",
}

// ResolveModel maps a configured model name to a provider family and a
// provider-internal model identifier. Resolution happens once, during
// configuration lookup; adapters never re-inspect the name. Names missing
// from the alias table fall back to prefix rules so newly released models
// work without a code change.
func ResolveModel(name string) (ModelRef, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return ModelRef{}, fmt.Errorf("model name cannot be empty")
	}

	if ref, ok := modelAliases[name]; ok {
		return ref, nil
	}

	switch {
	case strings.HasPrefix(name, "gemini"):
		return ModelRef{Family: FamilyGemini, ProviderModelID: name}, nil
	case strings.HasPrefix(name, "gpt"), strings.HasPrefix(name, "o1"), strings.HasPrefix(name, "o3"):
		return ModelRef{Family: FamilyOpenAI, ProviderModelID: name}, nil
	}

	return ModelRef{}, fmt.Errorf("unknown model: %s", name)
}

// DefaultModelID returns the model a family answers with when it is used as
// the fallback target.
func DefaultModelID(family ProviderFamily) string {
	return familyDefaults[family]
}
