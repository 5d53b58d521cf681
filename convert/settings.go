package convert

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"

	"h2jsx/config"
	"h2jsx/jsx"
	"h2jsx/markup"
)

const defaultComponentName = "Component"

// Flags returns command line flags understood by Run.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "wrap result in a component declaration with `NAME`"},
		&cli.BoolFlag{Name: "scaffold", Usage: "wrap result in an anonymous component declaration"},
		&cli.BoolFlag{Name: "name-from-file", Aliases: []string{"nf"}, Usage: "wrap result in a component declaration named after SOURCE"},
		&cli.BoolFlag{Name: "xml", Usage: "treat SOURCE as XML (XHTML, SVG), element and attribute case is preserved"},
		&cli.StringFlag{Name: "container", Usage: "wrap several top-level elements into `TAG`"},
		&cli.StringFlag{Name: "indent", Usage: "one level of indentation, Go escapes are accepted (\"\\t\")"},
		&cli.StringFlag{Name: "charset", Usage: "force SOURCE `ENCODING` (see IANA.org for character set names)"},
		&cli.BoolFlag{Name: "keep-scripts", Usage: "do not remove <script> elements"},
	}
}

// Settings is everything a single conversion needs.
type Settings struct {
	Input   string
	Markup  markup.Settings
	Options jsx.Options
}

// NewSettings takes defaults from configuration.
func NewSettings(conf *config.ConversionConfig) Settings {
	return Settings{
		Input: conf.Input,
		Markup: markup.Settings{
			KeepScripts: conf.KeepScripts,
			Charset:     conf.Charset,
		},
		Options: jsx.Options{
			Indent:           conf.Indent,
			ContainerTag:     conf.ContainerTag,
			Scaffold:         conf.Scaffold.Create || len(conf.Scaffold.Name) > 0,
			ScaffoldName:     conf.Scaffold.Name,
			ScaffoldTemplate: conf.Scaffold.Template,
		},
	}
}

// Apply superimposes command line flags. Source path is used when component
// name has to be derived.
func (s *Settings) Apply(cmd *cli.Command, src string) error {

	if cmd.Bool("scaffold") {
		s.Options.Scaffold = true
	}
	if cmd.Bool("name-from-file") {
		s.Options.Scaffold = true
		s.Options.ScaffoldName = ComponentName(src)
	}
	if cmd.IsSet("name") {
		name := cmd.String("name")
		if !config.ValidComponentName(name) {
			return fmt.Errorf("component name %q is not a valid identifier", name)
		}
		s.Options.Scaffold = true
		s.Options.ScaffoldName = name
	}

	if cmd.Bool("xml") {
		s.Input = markup.InputXML
	}
	if cmd.IsSet("container") {
		tag := cmd.String("container")
		if !config.ValidTagName(tag) {
			return fmt.Errorf("container %q is not a valid tag name", tag)
		}
		s.Options.ContainerTag = tag
	}
	if cmd.IsSet("indent") {
		s.Options.Indent = unescape(cmd.String("indent"))
	}
	if cmd.IsSet("charset") {
		s.Markup.Charset = cmd.String("charset")
	}
	if cmd.Bool("keep-scripts") {
		s.Markup.KeepScripts = true
	}
	return nil
}

// unescape lets "\t" be typed on the command line.
func unescape(in string) string {
	if out, err := strconv.Unquote(`"` + in + `"`); err == nil {
		return out
	}
	return in
}

// ComponentName derives a component identifier from a file name:
// "contact form.html" becomes "ContactForm".
func ComponentName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	for part := range strings.SplitSeq(slug.Make(base), "-") {
		if len(part) == 0 {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}

	name := b.String()
	switch {
	case len(name) == 0:
		return defaultComponentName
	case name[0] >= '0' && name[0] <= '9':
		name = "_" + name
	}
	if !config.ValidComponentName(name) {
		return defaultComponentName
	}
	return name
}

// OutputName is the file name used when destination is a directory.
func OutputName(src string) string {
	base := filepath.Base(src)
	return config.CleanFileName(strings.TrimSuffix(base, filepath.Ext(base)) + ".jsx")
}
