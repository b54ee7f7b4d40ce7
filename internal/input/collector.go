// Package input holds the patient data form: three bounded numeric fields
// whose values are clamped as they are entered, so a collected request is
// always within clinical bounds.
package input

import (
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
)

const (
	DefaultTroponin = 0.01
	DefaultCKMB     = 5.0
	DefaultAge      = 50
)

type Collector struct {
	Troponin *FloatField
	CKMB     *FloatField
	Age      *IntField
}

func NewCollector() *Collector {
	return &Collector{
		Troponin: NewFloatField(
			"Troponin level (ng/mL)", "typical normal value: < 0.04 ng/mL",
			entities.TroponinMin, entities.TroponinMax, DefaultTroponin, 0.01, 2,
		),
		CKMB: NewFloatField(
			"CK-MB level (U/L)", "typical normal value: < 5 U/L",
			entities.CKMBMin, entities.CKMBMax, DefaultCKMB, 0.1, 1,
		),
		Age: NewIntField(
			"Patient age", "age in completed years",
			entities.AgeMin, entities.AgeMax, DefaultAge, 1,
		),
	}
}

// Fields returns the inputs in display order.
func (c *Collector) Fields() []Field {
	return []Field{c.Troponin, c.CKMB, c.Age}
}

func (c *Collector) Request() entities.PredictionRequest {
	return entities.PredictionRequest{
		Troponin: c.Troponin.Value(),
		CKMB:     c.CKMB.Value(),
		Age:      c.Age.Value(),
	}
}

func (c *Collector) Reset() {
	for _, f := range c.Fields() {
		f.Reset()
	}
}
