package model

import "strings"

// OffenceRecord is read-only reference data describing an offence's statutory
// characteristics. It is owned by the catalog; the engine never mutates it.
type OffenceRecord struct {
	OffenceID             string `json:"offence_id" yaml:"offence_id"`
	CanonicalName         string `json:"canonical_name" yaml:"canonical_name"`
	ShortName             string `json:"short_name" yaml:"short_name"`
	OffenceCategory       string `json:"offence_category" yaml:"offence_category"`
	Provision             string `json:"provision" yaml:"provision"`
	GuidelineURL          string `json:"guideline_url" yaml:"guideline_url"`
	LegislationURL        string `json:"legislation_url" yaml:"legislation_url"`
	MaximumSentenceType   string `json:"maximum_sentence_type" yaml:"maximum_sentence_type"`
	MaximumSentenceAmount string `json:"maximum_sentence_amount" yaml:"maximum_sentence_amount"`
	MinimumSentenceCode   string `json:"minimum_sentence_code" yaml:"minimum_sentence_code"`
	SpecifiedViolent      bool   `json:"specified_violent" yaml:"specified_violent"`
	SpecifiedSexual       bool   `json:"specified_sexual" yaml:"specified_sexual"`
	SpecifiedTerrorist    bool   `json:"specified_terrorist" yaml:"specified_terrorist"`
	ListedOffence         bool   `json:"listed_offence" yaml:"listed_offence"`
	Schedule18AOffence    bool   `json:"schedule18a_offence" yaml:"schedule18a_offence"`
	Schedule19ZA          bool   `json:"schedule19za" yaml:"schedule19za"`
	CTANotification       bool   `json:"cta_notification" yaml:"cta_notification"`
}

// HasLifeMaximum reports whether the offence's maximum sentence is expressed
// as life imprisonment.
func (o *OffenceRecord) HasLifeMaximum() bool {
	return strings.Contains(strings.ToLower(o.MaximumSentenceAmount), "life")
}
