// Package settings persists the launcher's graphics and control settings.
// Each group is loaded once and saved wholesale as its own JSON blob.
package settings

// QualityLevels are the display names for the 0..4 quality indexes.
var QualityLevels = []string{"minimum", "standard", "high", "very high", "ultra"}

const (
	maxQualityIndex = 4
	maxPercent      = 100
)

// GraphicsSettings is the flat record behind the graphics screen. Quality
// fields are 0..4 indexes into QualityLevels; brightness and gamma are 0..100.
type GraphicsSettings struct {
	TextureQuality    int `json:"textureQuality"`
	DrawDistance      int `json:"drawDistance"`
	ShadowQuality     int `json:"shadowQuality"`
	WaterQuality      int `json:"waterQuality"`
	ReflectionQuality int `json:"reflectionQuality"`
	Brightness        int `json:"brightness"`
	Gamma             int `json:"gamma"`
}

// ControlSettings is the flat record behind the controls screen; all fields
// are 0..100.
type ControlSettings struct {
	SensitivityX int `json:"sensitivityX"`
	SensitivityY int `json:"sensitivityY"`
	CameraHeight int `json:"cameraHeight"`
}

func DefaultGraphics() GraphicsSettings {
	return GraphicsSettings{
		TextureQuality:    2,
		DrawDistance:      2,
		ShadowQuality:     2,
		WaterQuality:      2,
		ReflectionQuality: 2,
		Brightness:        50,
		Gamma:             50,
	}
}

func DefaultControls() ControlSettings {
	return ControlSettings{
		SensitivityX: 50,
		SensitivityY: 50,
		CameraHeight: 50,
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Normalize clamps every field into its legal range.
func (g GraphicsSettings) Normalize() GraphicsSettings {
	g.TextureQuality = clampInt(g.TextureQuality, 0, maxQualityIndex)
	g.DrawDistance = clampInt(g.DrawDistance, 0, maxQualityIndex)
	g.ShadowQuality = clampInt(g.ShadowQuality, 0, maxQualityIndex)
	g.WaterQuality = clampInt(g.WaterQuality, 0, maxQualityIndex)
	g.ReflectionQuality = clampInt(g.ReflectionQuality, 0, maxQualityIndex)
	g.Brightness = clampInt(g.Brightness, 0, maxPercent)
	g.Gamma = clampInt(g.Gamma, 0, maxPercent)
	return g
}

// Normalize clamps every field into its legal range.
func (c ControlSettings) Normalize() ControlSettings {
	c.SensitivityX = clampInt(c.SensitivityX, 0, maxPercent)
	c.SensitivityY = clampInt(c.SensitivityY, 0, maxPercent)
	c.CameraHeight = clampInt(c.CameraHeight, 0, maxPercent)
	return c
}
