package anonymize

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultRules returns the built-in client redaction rules. Specific
// names come first; the generic "Groupe <word>" catch-all sits after
// every known group so it never mis-fires on one of them. The final
// rule normalizes the Mission label while keeping the mission token.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: `\bVoyages-SNCF\.com\b`, Replacement: "Client Transports", Note: "Voyages-SNCF.com"},
		{Pattern: `\bButConforama\b`, Replacement: "Client Distribution", Note: "ButConforama"},

		{Pattern: `\bLVMH\s+Beauty\s+Tech\b`, Replacement: "Client Luxe", Note: "LVMH Beauty Tech"},
		{Pattern: `\bLVMH\b`, Replacement: "Client Luxe", Note: "LVMH"},
		{Pattern: `\bGroupe\s+Caisse\s+d['’]Epargne\b`, Replacement: "Client Banque", Note: "Groupe Caisse d'Epargne"},
		{Pattern: `\bGroupe\s+(\w+)\b`, Replacement: "Client $1", Note: "Groupe XXX"},

		{Pattern: `\bGroupama\b`, Replacement: "Client Assurances", Note: "Groupama"},
		{Pattern: `\bNatixis\b`, Replacement: "Client Banque", Note: "Natixis"},
		{Pattern: `\bGenerali\b`, Replacement: "Client Assurances", Note: "Generali"},
		{Pattern: `\bSociété\s+Générale\b`, Replacement: "Client Banque", Note: "Société Générale"},
		{Pattern: `\bGE\s+Money\s+Bank\b`, Replacement: "Client Banque", Note: "GE Money Bank"},
		{Pattern: `\bCaisse\s+d['’]Epargne\s+Financement\b`, Replacement: "Client Banque", Note: "Caisse d'Epargne Financement"},
		{Pattern: `\bCaisse\s+d['’]Epargne\b`, Replacement: "Client Banque", Note: "Caisse d'Epargne"},

		{Pattern: `\bMission\s+([A-Z][^\)]+)\b`, Replacement: "Mission $1", Note: "normalize Mission prefix"},
	}
}

// LoadRules reads an ordered rule list from a JSON file, so the rule
// set can be maintained outside the binary.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("anonymize: read rules: %w", err)
	}
	var rules []Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("anonymize: parse rules %s: %w", path, err)
	}
	return rules, nil
}
