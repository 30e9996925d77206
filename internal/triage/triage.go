// Package triage provides the rule-based symptom assessment and the
// canned health-assistant chat. Both simulate a thinking delay; the
// wait honors the caller's context so a torn-down caller never receives
// a late result.
package triage

import (
	"context"
	"log/slog"
	"time"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

type Condition struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
	Urgency     Urgency `json:"urgency"`
}

type Assessment struct {
	PossibleConditions     []Condition `json:"possible_conditions"`
	RecommendedSpecialists []string    `json:"recommended_specialists"`
	SuggestedActions       []string    `json:"suggested_actions"`
}

// Input is the patient's self-report. Age, gender, and duration are
// collected but do not influence the rules.
type Input struct {
	Symptoms []string `json:"symptoms"`
	Age      string   `json:"age,omitempty"`
	Gender   string   `json:"gender,omitempty"`
	Duration string   `json:"duration,omitempty"`
}

// Checker runs assessments after a configurable thinking delay.
type Checker struct {
	delay time.Duration
	log   *slog.Logger
}

func NewChecker(delay time.Duration, log *slog.Logger) *Checker {
	if log == nil {
		log = slog.Default()
	}
	return &Checker{
		delay: delay,
		log:   log.With(slog.String("component", "triage")),
	}
}

// Assess evaluates the reported symptoms. Cancelling ctx before the
// delay elapses returns ctx.Err() and no assessment.
func (c *Checker) Assess(ctx context.Context, in Input) (Assessment, error) {
	if err := wait(ctx, c.delay); err != nil {
		c.log.Info("assessment abandoned", slog.Any("err", err))
		return Assessment{}, err
	}

	result := assess(in.Symptoms)
	c.log.Info(
		"assessment produced",
		slog.Int("symptom_count", len(in.Symptoms)),
		slog.String("top_condition", result.PossibleConditions[0].Name),
	)
	return result, nil
}

func assess(symptoms []string) Assessment {
	has := func(symptom string) bool {
		for _, s := range symptoms {
			if s == symptom {
				return true
			}
		}
		return false
	}
	pick := func(ok bool, yes, no string) string {
		if ok {
			return yes
		}
		return no
	}

	return Assessment{
		PossibleConditions: []Condition{
			{Name: pick(has("Headache"), "Tension Headache", "Common Cold"), Probability: 0.85, Urgency: UrgencyLow},
			{Name: pick(has("Fever"), "Influenza", "Allergic Rhinitis"), Probability: 0.65, Urgency: UrgencyMedium},
		},
		RecommendedSpecialists: []string{
			pick(has("Chest pain"), "Cardiology", "General Medicine"),
			pick(has("Joint pain"), "Orthopedics", "Internal Medicine"),
		},
		SuggestedActions: []string{
			"Schedule a consultation with a primary care physician",
			"Monitor symptoms and stay hydrated",
			"Take over-the-counter pain relievers if needed",
		},
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
