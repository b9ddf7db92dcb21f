package alerts

import "strings"

// IsComplementText reports whether an alert's texts mark it as a complement,
// a supplementary note to an already-published incident. The upstream
// operator phrases these in French ("Complément d'information ligne 12"),
// so detection is a narrow phrase match, not a general classifier.
func IsComplementText(header, description string) bool {
	h := strings.ToLower(header)
	d := strings.ToLower(description)

	if strings.Contains(h, "complement") || strings.Contains(h, "complément") {
		return true
	}
	combined := h + " " + d
	if strings.Contains(combined, "complément d'info") || strings.Contains(combined, "complément d'information") {
		return true
	}
	return strings.HasPrefix(strings.TrimSpace(d), "complément")
}

// causeRule associates a cause category with its trigger keywords.
type causeRule struct {
	Cause    string
	Keywords []string
}

// CauseKeywords is the cause inference table, scanned in order: the first
// category with a matching keyword wins, regardless of where the keyword
// appears in the text. Medical and police causes outrank the generic ones
// because their texts routinely also mention the disruption they caused.
var CauseKeywords = []causeRule{
	{CauseMedicalEmergency, []string{"secours", "ambulance", "blessé", "médical", "malaise"}},
	{CausePoliceActivity, []string{"police", "gendarmerie", "sécurité", "interpellation", "contrôle"}},
	{CauseTechnicalProblem, []string{"panne", "technique", "défaillance", "incident tech", "incident d'exploitation"}},
	{CauseConstruction, []string{"travaux", "chantier", "aménagement"}},
	{CauseMaintenance, []string{"maintenance", "entretien", "réparation"}},
	{CauseAccident, []string{"accident", "collision", "accrochage", "véhicule sur la voie"}},
	{CauseStrike, []string{"grève", "social", "mouvement social"}},
	{CauseDemonstration, []string{"manifestation", "cortège", "rassemblement", "défilé", "marche"}},
	{CauseWeather, []string{"neige", "pluie", "météo", "tempête", "vent", "intempérie", "orage", "inondation"}},
	{CauseHoliday, []string{"fête", "festival", "événement", "férié"}},
}

// InferCause derives a cause category from free text. Used only when the
// feed does not supply one. Defaults to OTHER_CAUSE.
func InferCause(text string) string {
	t := strings.ToLower(text)
	for _, rule := range CauseKeywords {
		for _, kw := range rule.Keywords {
			if strings.Contains(t, kw) {
				return rule.Cause
			}
		}
	}
	return CauseOther
}

type effectRule struct {
	Effect   string
	Keywords []string
}

// EffectKeywords mirrors CauseKeywords for effect inference.
var EffectKeywords = []effectRule{
	{EffectNoService, []string{"interruption", "interrompu", "supprimé", "suppression", "non assuré", "plus de service"}},
	{EffectDetour, []string{"déviation", "dévié", "déviée", "itinéraire modifié"}},
	{EffectStopMoved, []string{"arrêt déplacé", "arrêt reporté", "report de l'arrêt"}},
	{EffectSignificantDelays, []string{"retard", "ralentissement", "ralenti", "temps d'attente"}},
	{EffectReducedService, []string{"service réduit", "fréquence réduite", "perturbation", "perturbé"}},
	{EffectAdditionalService, []string{"renfort", "navette", "service supplémentaire"}},
	{EffectModifiedService, []string{"modifié", "modification", "horaires"}},
	{EffectAccessibilityIssue, []string{"ascenseur", "escalator", "accessibilité"}},
}

// InferEffect derives an effect category from free text, defaulting to
// UNKNOWN_EFFECT. The pipeline accepts any func(string) string in its
// place, so operators with different phrasing can substitute their own.
func InferEffect(text string) string {
	t := strings.ToLower(text)
	for _, rule := range EffectKeywords {
		for _, kw := range rule.Keywords {
			if strings.Contains(t, kw) {
				return rule.Effect
			}
		}
	}
	return EffectUnknown
}
