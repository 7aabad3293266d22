// Package themegen is the demo theme-generation collaborator. It picks
// a palette deterministically from the prompt so the feature works
// offline; the caller models the latency of a real service.
package themegen

import "fmt"

// Generated is a color scheme produced from a prompt
type Generated struct {
	Primary   string
	Accent    string
	Neutral   string
	Rationale string
}

// Latency is the simulated generation delay, owned here so the UI and
// tests agree on it.
const LatencyMillis = 800

var palettes = []Generated{
	{
		Primary:   "#2563EB",
		Accent:    "#22C55E",
		Neutral:   "#F8FAFC",
		Rationale: "A professional blue paired with a fresh green to convey trust and growth.",
	},
	{
		Primary:   "#7C3AED",
		Accent:    "#F59E0B",
		Neutral:   "#FAFAFA",
		Rationale: "Creative purple with a warm accent to balance innovation and approachability.",
	},
	{
		Primary:   "#0F172A",
		Accent:    "#38BDF8",
		Neutral:   "#F1F5F9",
		Rationale: "A strong dark base with a light accent for a modern B2B dashboard feel.",
	},
}

// FromPrompt selects a palette keyed by the prompt's length.
func FromPrompt(prompt string) Generated {
	g := palettes[len(prompt)%len(palettes)]
	g.Rationale = fmt.Sprintf("Generated for the theme %q. %s", prompt, g.Rationale)
	return g
}
