package entities

import (
	"fmt"
	"github.com/pkg/errors"
	"math"
)

const (
	TroponinMin = 0.0
	TroponinMax = 100.0

	CKMBMin = 0.0
	CKMBMax = 1000.0

	AgeMin = 18
	AgeMax = 120
)

var ErrOutOfRange = errors.New("value out of range")

// PredictionRequest is the biomarker triple sent to the scoring endpoint.
// Troponin is in ng/mL, CKMB in U/L and Age in completed years.
type PredictionRequest struct {
	Troponin float64
	CKMB     float64
	Age      int
}

// Validate reports the first field outside its clinical bounds.
func (r PredictionRequest) Validate() error {
	if r.Troponin < TroponinMin || r.Troponin > TroponinMax || math.IsNaN(r.Troponin) {
		return errors.Wrapf(ErrOutOfRange, "troponin %v not in [%v, %v]", r.Troponin, TroponinMin, TroponinMax)
	}

	if r.CKMB < CKMBMin || r.CKMB > CKMBMax || math.IsNaN(r.CKMB) {
		return errors.Wrapf(ErrOutOfRange, "ck-mb %v not in [%v, %v]", r.CKMB, CKMBMin, CKMBMax)
	}

	if r.Age < AgeMin || r.Age > AgeMax {
		return errors.Wrapf(ErrOutOfRange, "age %d not in [%d, %d]", r.Age, AgeMin, AgeMax)
	}

	return nil
}

type Outcome int

const (
	NoInfarctionEvidence Outcome = 0
	InfarctionRisk       Outcome = 1
)

func (o Outcome) Valid() bool {
	return o == NoInfarctionEvidence || o == InfarctionRisk
}

func (o Outcome) String() string {
	switch o {
	case NoInfarctionEvidence:
		return "No evidence of infarction"
	case InfarctionRisk:
		return "Infarction risk detected"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

type PredictionResult struct {
	Prediction  Outcome
	Probability float64
}
