// Package style defines the visual styling for filer's terminal
// output. Styles use semantic names and adaptive colors that adjust to
// light and dark terminal themes; the palette itself lives in an
// embedded YAML file so themes stay data, not code.
//
// Styling only ever applies to stderr and help output. The generated
// command lines on stdout are always plain text.
package style

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed palette.yaml
var paletteYAML []byte

type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type paletteFile struct {
	Colors map[string]colorDef `yaml:"Colors"`
}

// Adaptive colors loaded from the embedded palette
var (
	PrimaryColor lipgloss.AdaptiveColor
	SuccessColor lipgloss.AdaptiveColor
	ErrorColor   lipgloss.AdaptiveColor
	WarningColor lipgloss.AdaptiveColor
	HeadingColor lipgloss.AdaptiveColor
	TextColor    lipgloss.AdaptiveColor
	MutedColor   lipgloss.AdaptiveColor
)

// Semantic styles
var (
	TitleStyle   lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	MutedStyle   lipgloss.Style
	TopicStyle   lipgloss.Style
)

func init() {
	var palette paletteFile
	// The palette ships inside the binary; a parse failure would be a
	// packaging defect, and the zero AdaptiveColor renders unstyled.
	_ = yaml.Unmarshal(paletteYAML, &palette)

	pick := func(name string) lipgloss.AdaptiveColor {
		def, ok := palette.Colors[name]
		if !ok {
			return lipgloss.AdaptiveColor{}
		}
		return lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	PrimaryColor = pick("primary")
	SuccessColor = pick("success")
	ErrorColor = pick("error")
	WarningColor = pick("warning")
	HeadingColor = pick("heading")
	TextColor = pick("text")
	MutedColor = pick("muted")

	TitleStyle = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(MutedColor)
	TopicStyle = lipgloss.NewStyle().Foreground(PrimaryColor).PaddingLeft(2)
}

// Bold renders s in bold
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
