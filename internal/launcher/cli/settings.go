package cli

import (
	"context"
	"fmt"

	"github.com/derol/majestic-launcher/internal/launcher/settings"
)

// intField is one editable settings value with its prompt and upper bound.
type intField struct {
	prompt string
	value  *int
	max    int
}

// Graphics edits the graphics settings one field at a time. An empty line
// keeps the current value. Changes are saved wholesale at the end.
func (a *App) Graphics(ctx context.Context) error {
	g := a.settings.LoadGraphics(ctx)

	fmt.Fprint(a.out, "Quality levels:")
	for i, name := range settings.QualityLevels {
		fmt.Fprintf(a.out, " %d=%s", i, name)
	}
	fmt.Fprintln(a.out)

	fields := []intField{
		{"Texture quality", &g.TextureQuality, 4},
		{"Draw distance", &g.DrawDistance, 4},
		{"Shadow quality", &g.ShadowQuality, 4},
		{"Water quality", &g.WaterQuality, 4},
		{"Reflection quality", &g.ReflectionQuality, 4},
		{"Brightness", &g.Brightness, 100},
		{"Gamma", &g.Gamma, 100},
	}
	if err := a.editFields(fields); err != nil {
		return err
	}

	if err := a.settings.SaveGraphics(ctx, g); err != nil {
		fmt.Fprintln(a.out, "Could not save graphics settings.")
		return err
	}
	fmt.Fprintln(a.out, "Graphics settings saved.")
	return nil
}

// Controls edits the control settings the same way Graphics does.
func (a *App) Controls(ctx context.Context) error {
	c := a.settings.LoadControls(ctx)

	fields := []intField{
		{"Sensitivity X", &c.SensitivityX, 100},
		{"Sensitivity Y", &c.SensitivityY, 100},
		{"Camera height", &c.CameraHeight, 100},
	}
	if err := a.editFields(fields); err != nil {
		return err
	}

	if err := a.settings.SaveControls(ctx, c); err != nil {
		fmt.Fprintln(a.out, "Could not save control settings.")
		return err
	}
	fmt.Fprintln(a.out, "Control settings saved.")
	return nil
}

func (a *App) editFields(fields []intField) error {
	for _, f := range fields {
		v, err := getIntInRange(a.reader, fmt.Sprintf("%s (0-%d)", f.prompt, f.max), *f.value, 0, f.max, a.out)
		if err != nil {
			return err
		}
		*f.value = v
	}
	return nil
}
