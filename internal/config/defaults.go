package config

const (
	defaultConfigPath    = "~/.config/audioswitch/config.toml"
	projectConfigName    = "audioswitch.toml"
	defaultAudioDir      = "audio"
	defaultAudioInputDir = "audio-input"
	defaultVideoDir      = "video"
	defaultPick          = PickLatest
	defaultSuffix        = "_newaudio"
	defaultCombineCodec  = "libmp3lame"
	defaultCombineQ      = 2
	defaultFFmpeg        = "ffmpeg"
	defaultFFprobe       = "ffprobe"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultSettleMillis  = 2000
)

// Audio pick policies accepted in selection.pick and --audio-pick.
const (
	PickLatest = "latest"
	PickOldest = "oldest"
	PickName   = "name"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AudioDir:      defaultAudioDir,
			AudioInputDir: defaultAudioInputDir,
			VideoDir:      defaultVideoDir,
			StateDir:      defaultStateDir(),
		},
		Selection: Selection{
			Pick: defaultPick,
		},
		Output: Output{
			Suffix: defaultSuffix,
		},
		Combine: Combine{
			Codec:   defaultCombineCodec,
			Quality: defaultCombineQ,
		},
		Tools: Tools{
			FFmpeg:  defaultFFmpeg,
			FFprobe: defaultFFprobe,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
		Watch: Watch{
			SettleMillis: defaultSettleMillis,
		},
	}
}
