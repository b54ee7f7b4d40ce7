package ucase

import (
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
)

const (
	ModerateRiskFrom = 0.2
	HighRiskFrom     = 0.5
)

// Interpret maps a probability onto a risk band. Lower bounds are inclusive:
// 0.2 is moderate and 0.5 is high.
func Interpret(probability float64) entities.Band {
	switch {
	case probability < ModerateRiskFrom:
		return entities.BandLow
	case probability < HighRiskFrom:
		return entities.BandModerate
	default:
		return entities.BandHigh
	}
}

func Guidance(band entities.Band) string {
	switch band {
	case entities.BandLow:
		return "Low risk: consider other causes of the symptoms."
	case entities.BandModerate:
		return "Moderate risk: continuous monitoring and possible repeat testing."
	case entities.BandHigh:
		return "High risk: requires immediate intervention and cardiology evaluation."
	default:
		return ""
	}
}

const Disclaimer = "This result is an automated prediction and must not be taken as a definitive " +
	"medical diagnosis. It must always be interpreted by a qualified health professional."
