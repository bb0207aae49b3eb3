package ruleset

// DefaultWords are single tokens whose presence alone rejects. They target
// secondhand and unsourced framing.
var DefaultWords = []string{
	"rumor",
	"rumour",
	"gossip",
	"hearsay",
	"allegedly",
	"supposedly",
	"unconfirmed",
}

// DefaultPhrases are multi-word literals whose presence alone rejects.
var DefaultPhrases = []string{
	"i heard that",
	"i believe that",
	"they say",
	"word is",
	"people are saying",
	"sources say",
	"it is said",
}

// DefaultUncertainty are hedging tokens that each add the marker weight
// toward the rejection budget.
var DefaultUncertainty = []string{
	"might",
	"maybe",
	"perhaps",
	"possibly",
	"could be",
	"may be",
	"not sure",
	"uncertain",
	"i think",
	"i guess",
}

// DefaultRulesYAML returns a commented starter rule file for init-rules.
func DefaultRulesYAML() string {
	return `# hedgegate rule configuration
# Generated by: hedgegate init-rules
#
# Evaluation order (cannot be changed):
#   1. words       -> reject on first substring match
#   2. phrases     -> reject on first substring match
#   3. uncertainty -> each hit adds marker_weight; total > threshold rejects
#   4. certainty followed by a followup within pattern_window chars -> reject
#
# All matching is case-insensitive. Absent fields keep built-in defaults.

# Master switch. false makes the classifier accept everything.
active: true

# Cumulative uncertainty budget. Strictly exceeding it rejects.
threshold: 0.1

# Score added per uncertainty hit.
marker_weight: 0.15

# Max character gap between a certainty claim and a hedge.
pattern_window: 15

# Input size cap in bytes. 0 disables the cap.
max_input_bytes: 0

# Single tokens that reject on sight.
words:
  - rumor
  - rumour
  - gossip
  - hearsay
  - allegedly
  - supposedly
  - unconfirmed

# Multi-word literals that reject on sight.
phrases:
  - i heard that
  - i believe that
  - they say
  - word is
  - people are saying
  - sources say
  - it is said

# Hedging tokens that accumulate toward the threshold.
uncertainty:
  - might
  - maybe
  - perhaps
  - possibly
  - could be
  - may be
  - not sure
  - uncertain
  - i think
  - i guess

# Certainty claims and the hedges that contradict them.
certainty:
  - certainly
  - definitely
  - absolutely
  - without doubt
  - clearly
  - undoubtedly

followups:
  - might
  - maybe
  - perhaps
  - possibly
  - could be
  - may be
`
}
