// Package presenter turns assessments into what a user reads: styled terminal
// text, JSON or YAML documents, and the reference page.
package presenter

import (
	"encoding/json"
	"fmt"
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
	"github.com/Imm0bilize/heartleaves-core-service/internal/ucase"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"io"
	"strings"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Report struct {
	Troponin    float64 `json:"troponin" yaml:"troponin"`
	CKMB        float64 `json:"ck_mb" yaml:"ck_mb"`
	Age         int     `json:"age" yaml:"age"`
	Prediction  int     `json:"prediction" yaml:"prediction"`
	Outcome     string  `json:"outcome" yaml:"outcome"`
	Probability float64 `json:"probability" yaml:"probability"`
	Band        string  `json:"band" yaml:"band"`
	Guidance    string  `json:"guidance" yaml:"guidance"`
	Disclaimer  string  `json:"disclaimer" yaml:"disclaimer"`
}

func NewReport(a entities.Assessment) Report {
	return Report{
		Troponin:    a.Request.Troponin,
		CKMB:        a.Request.CKMB,
		Age:         a.Request.Age,
		Prediction:  int(a.Result.Prediction),
		Outcome:     a.Result.Prediction.String(),
		Probability: a.Result.Probability,
		Band:        string(a.Band),
		Guidance:    a.Guidance,
		Disclaimer:  ucase.Disclaimer,
	}
}

func Encode(w io.Writer, format string, a entities.Assessment) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, Text(a)+"\n")
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(NewReport(a)), "json.Encode")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewReport(a)); err != nil {
			return errors.Wrap(err, "yaml.Encode")
		}
		return errors.Wrap(enc.Close(), "yaml.Close")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q (want text, json or yaml)", format)
	}
}

func FormatProbability(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}

func ProbabilityBar(p float64, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(Destructive)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)

	return bar.ViewAs(p)
}

// Text renders an assessment for a terminal.
func Text(a entities.Assessment) string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render("Prediction results") + "\n")
	sb.WriteString("Prediction: " + OutcomeStyle(a.Result.Prediction).Render(a.Result.Prediction.String()) + "\n")
	sb.WriteString("Infarction probability: " + TitleStyle.Render(FormatProbability(a.Result.Probability)) + "\n")
	sb.WriteString(ProbabilityBar(a.Result.Probability, 40) + "\n")

	sb.WriteString(HeaderStyle.Render("Clinical interpretation") + "\n")
	sb.WriteString(BandStyle(a.Band).Render(a.Guidance) + "\n\n")

	sb.WriteString(WarningStyle.Render("Important: " + ucase.Disclaimer))

	return sb.String()
}

// FailureText is shown when no prediction could be obtained.
func FailureText(err error) string {
	return ErrorStyle.Render("Error contacting the prediction service: ") + err.Error()
}
