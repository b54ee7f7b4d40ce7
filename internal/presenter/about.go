package presenter

import (
	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
)

const AboutMarkdown = `# HeartLeaves AI

Clinical support tool that estimates the risk of myocardial infarction with a
Random Forest model trained on clinical data. The estimate is based on:

- Troponin level
- CK-MB level
- Patient age

## Reference ranges

**Troponin**

- Normal: < 0.04 ng/mL
- Mild elevation: 0.04–0.39 ng/mL
- Significant elevation: ≥ 0.4 ng/mL

**CK-MB**

- Normal: < 5 U/L
- Elevated: ≥ 5 U/L

## Risk bands

| Probability | Band |
|---|---|
| < 20% | low |
| 20% – 49% | moderate |
| ≥ 50% | high |

---

Developed by Jesús Alejandro Montes Medina.
Master's in Information Processing Sciences, Universidad Autónoma de Zacatecas.
`

// RenderAbout renders the about page. An empty style picks one from the terminal.
func RenderAbout(style string, width int) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", errors.Wrap(err, "glamour.NewTermRenderer")
	}

	out, err := renderer.Render(AboutMarkdown)
	if err != nil {
		return "", errors.Wrap(err, "glamour.Render")
	}

	return out, nil
}
