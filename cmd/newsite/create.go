package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/newsite/internal/log"
	"github.com/raphi011/newsite/internal/output"
	"github.com/raphi011/newsite/internal/site"
	"github.com/raphi011/newsite/internal/ui/prompt"
	"github.com/raphi011/newsite/internal/ui/styles"
)

// errCancelled is returned when the user declines the summary.
var errCancelled = errors.New("operation cancelled by user")

// scriptRunner runs the template script with the validated parameters.
type scriptRunner interface {
	Run(ctx context.Context, path string, p site.Params) error
}

// creator holds what one run needs besides the context.
type creator struct {
	prompter   prompt.Prompter
	runner     scriptRunner
	scriptPath string
}

// run asks for the site parameters, validates each answer as soon as it is
// given, confirms and hands the parameters to the template script.
func (c *creator) run(ctx context.Context) error {
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	out.Println(styles.TitleStyle.Render("🚀 Welcome to the Converter Project Creator 🚀"))
	out.Println(styles.MutedStyle.Render(strings.Repeat("-", 45)))
	out.Println()

	params, err := c.ask(ctx)
	if err != nil {
		return err
	}
	l.Debug("validated input",
		"folder", params.Folder,
		"name", params.DisplayName,
		"color", params.Color,
		"format", params.Format)

	printSummary(out, params)

	ok, err := prompt.Confirm(ctx, c.prompter, "Proceed with these settings?")
	if err != nil {
		return err
	}
	if !ok {
		out.Println("Operation cancelled by user")
		l.Event("cancelled", "folder", params.Folder)
		return errCancelled
	}

	out.Println()
	out.Println("Creating project...")

	if err := c.runner.Run(ctx, c.scriptPath, params); err != nil {
		l.Event("failed", "folder", params.Folder, "error", err)
		return err
	}
	l.Event("created", "folder", params.Folder, "script", c.scriptPath)

	out.Println()
	out.Println(styles.SuccessStyle.Render("✅ Project creation complete!"))
	out.Printf("Project directory: %s\n", styles.DirLink(params.Folder))
	return nil
}

// ask prompts for color, format and folder in that order. Each answer is
// validated before the next question; the first invalid one ends the run.
func (c *creator) ask(ctx context.Context) (site.Params, error) {
	raw, err := c.prompter.Text(ctx, "Enter primary color (hex, example #cc7aaa)", "#cc7aaa")
	if err != nil {
		return site.Params{}, err
	}
	color, err := site.ValidateColor(raw)
	if err != nil {
		return site.Params{}, err
	}

	raw, err = c.prompter.Text(ctx, "Enter formatToFormat (example: webpToJpg)", "webpToJpg")
	if err != nil {
		return site.Params{}, err
	}
	format, err := site.ValidateFormat(raw)
	if err != nil {
		return site.Params{}, err
	}
	warnUnknownFormat(log.FromContext(ctx), format)

	raw, err = c.prompter.Text(ctx, "Enter new project folder name", "my-site")
	if err != nil {
		return site.Params{}, err
	}
	folder, err := site.ValidateFolder(raw)
	if err != nil {
		return site.Params{}, err
	}

	return site.Params{
		Folder:      folder,
		DisplayName: site.DisplayName(folder),
		Color:       color,
		Format:      format,
	}, nil
}

// warnUnknownFormat warns about well-formed modes the converter does not ship.
func warnUnknownFormat(l *log.Logger, f site.Format) {
	if f.Known() {
		return
	}
	msg := fmt.Sprintf("Warning: %q is not a conversion mode the converter ships", string(f))
	if suggestions := site.Suggest(f); len(suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(suggestions, ", "))
	}
	l.Println(styles.WarningStyle.Render(msg))
}

func printSummary(out *output.Printer, p site.Params) {
	out.Println()
	out.Println(styles.Bold.Render("Creating project with the following settings:"))
	out.Field("Project Directory", p.Folder)
	out.Field("Site Name", p.DisplayName)
	out.Field("Primary Color", colorSummary(p.Color))
	out.Field("Conversion Mode", formatSummary(p.Format))
	out.Println()
}

func colorSummary(c site.Color) string {
	palette, err := c.Palette()
	if err != nil {
		return string(c)
	}
	return fmt.Sprintf("%s %s %s",
		c,
		styles.Swatch(string(c)),
		styles.MutedStyle.Render(fmt.Sprintf("(secondary %s, accent %s)", palette.Secondary, palette.Accent)))
}

func formatSummary(f site.Format) string {
	in, out := f.Split()
	detail := in + " → " + out
	if media := f.Media(); media != "" {
		detail = media + ": " + detail
	}
	return fmt.Sprintf("%s %s", f, styles.MutedStyle.Render("("+detail+")"))
}
