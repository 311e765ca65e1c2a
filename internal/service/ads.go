package service

import (
	"greencart/shophub/pkg/random"
)

// contextText longer than this (with a known user) selects the large model.
const largeModelContextThreshold = 50

const (
	ModelSmall = "small"
	ModelLarge = "large"
)

type AdCreative struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type AdDecision struct {
	ChosenModel  string     `json:"chosenModel"`
	EstimatedCo2 float64    `json:"estimatedCo2"` // grams
	Reasoning    string     `json:"reasoningSummary"`
	Ad           AdCreative `json:"ad"`
}

// AdService picks an ad-generation model and a carbon estimate. Stateless
// aside from the random draw; no external model is called.
type AdService interface {
	Decide(userID, deviceInfo, contextText string) AdDecision
}

type adService struct {
	rng random.Source
}

func NewAdService(rng random.Source) AdService {
	return &adService{rng: rng}
}

func (s *adService) Decide(userID, deviceInfo, contextText string) AdDecision {
	decision := AdDecision{
		ChosenModel: ModelSmall,
		Reasoning:   "limited targeting data, using the small model to keep emissions low",
		Ad: AdCreative{
			Title:   "Shop Greener Today",
			Content: "Discover products with a lower carbon footprint, picked for you.",
		},
	}

	if userID != "" && len(contextText) > largeModelContextThreshold {
		decision.ChosenModel = ModelLarge
		decision.Reasoning = "rich user context available, large model selected for better personalization"
		decision.EstimatedCo2 = round2(s.rng.FloatBetween(2.0, 4.0))
		return decision
	}

	decision.EstimatedCo2 = round2(s.rng.FloatBetween(0.5, 1.0))
	return decision
}
