package config

// Overrides carries command-line values that take precedence over the file.
// Nil fields leave the loaded value untouched.
type Overrides struct {
	AudioDir      *string
	AudioInputDir *string
	VideoDir      *string
	Pick          *string
	Name          *string
	Suffix        *string
	AudioCodec    *string
	InPlace       *bool
	Overwrite     *bool
	LogLevel      *string
	LogFormat     *string
	Timeout       *int
	NoHistory     bool
}

// Apply layers o over c, then normalizes and validates the result again.
func (c *Config) Apply(o Overrides) error {
	setString(&c.Paths.AudioDir, o.AudioDir)
	setString(&c.Paths.AudioInputDir, o.AudioInputDir)
	setString(&c.Paths.VideoDir, o.VideoDir)
	setString(&c.Selection.Pick, o.Pick)
	setString(&c.Selection.Name, o.Name)
	setString(&c.Output.Suffix, o.Suffix)
	setString(&c.Output.AudioCodec, o.AudioCodec)
	setString(&c.Logging.Level, o.LogLevel)
	setString(&c.Logging.Format, o.LogFormat)
	if o.InPlace != nil {
		c.Output.InPlace = *o.InPlace
	}
	if o.Overwrite != nil {
		c.Output.Overwrite = *o.Overwrite
	}
	if o.Timeout != nil {
		c.Tools.TimeoutSeconds = *o.Timeout
	}
	if o.NoHistory {
		c.History.Enabled = false
	}
	if err := c.normalize(); err != nil {
		return err
	}
	return c.Validate()
}

func setString(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}
