package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FailEnv makes the ffmpeg stub fail when any argument contains its value.
const FailEnv = "AUDIOSWITCH_STUB_FAIL"

// MediaStubs locates the stub binaries written by InstallMediaStubs.
type MediaStubs struct {
	Dir     string
	FFmpeg  string
	FFprobe string
	Log     string
}

// Invocations returns the logged argument lines of every stub call, in order.
func (s MediaStubs) Invocations(t testing.TB) []string {
	t.Helper()
	data, err := os.ReadFile(s.Log)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read stub log: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// ffprobe stub: sums every "duration=" line of the target, so concatenated
// fixtures report the combined length.
const ffprobeStub = `#!/bin/sh
printf 'ffprobe %%s\n' "$*" >> '%s'
eval target=\${$#}
if [ ! -f "$target" ]; then
  echo "$target: No such file or directory" >&2
  exit 1
fi
awk -F= '/^duration=/{s+=$2; n++} END{if (n) printf "%%.6f\n", s}' "$target"
`

// ffmpeg stub: concat mode writes the listed fragments back to back; replace
// mode copies the video input and records the audio input.
const ffmpegStub = `#!/bin/sh
printf 'ffmpeg %%s\n' "$*" >> '%s'
eval out=\${$#}
if [ -n "$%s" ]; then
  case "$*" in
    *"$%s"*)
      printf 'partial\n' > "$out"
      echo "Conversion failed!" >&2
      exit 1
      ;;
  esac
fi
concat=0
first=""
second=""
prev=""
for arg in "$@"; do
  if [ "$prev" = "-f" ] && [ "$arg" = "concat" ]; then concat=1; fi
  if [ "$prev" = "-i" ]; then
    if [ -z "$first" ]; then first="$arg"; else second="$arg"; fi
  fi
  prev="$arg"
done
if [ "$concat" = 1 ]; then
  sed -n "s/^file '\(.*\)'\$/\1/p" "$first" | while IFS= read -r frag; do cat "$frag"; done > "$out"
else
  { cat "$first"; printf 'audio=%%s\n' "$second"; } > "$out"
fi
`

// InstallMediaStubs writes ffmpeg and ffprobe stub scripts into a temp bin
// directory and prepends it to PATH for the duration of the test.
func InstallMediaStubs(t testing.TB) MediaStubs {
	t.Helper()

	binDir := filepath.Join(t.TempDir(), "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	stubs := MediaStubs{
		Dir:     binDir,
		FFmpeg:  filepath.Join(binDir, "ffmpeg"),
		FFprobe: filepath.Join(binDir, "ffprobe"),
		Log:     filepath.Join(binDir, "invocations.log"),
	}
	scripts := map[string]string{
		stubs.FFmpeg:  fmt.Sprintf(ffmpegStub, stubs.Log, FailEnv, FailEnv),
		stubs.FFprobe: fmt.Sprintf(ffprobeStub, stubs.Log),
	}
	for path, body := range scripts {
		if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
			t.Fatalf("write stub %s: %v", path, err)
		}
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return stubs
}

// WriteStubBinaries writes scripts that exit 0 for each name and prepends
// their directory to PATH.
func WriteStubBinaries(t testing.TB, names ...string) string {
	t.Helper()
	binDir := filepath.Join(t.TempDir(), "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(binDir, name), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return binDir
}
