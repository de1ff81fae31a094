package convert

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/berlin-clock/internal/config"
	"github.com/oshokin/berlin-clock/internal/render"
	"github.com/oshokin/berlin-clock/internal/timeparse"
)

// writeConfig stores cfg in a temporary settings file and returns its path.
func writeConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(path, cfg))

	return path
}

// TestRun_ConvertsArgument prints the clock for an explicit time.
func TestRun_ConvertsArgument(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: writeConfig(t, config.Default()),
		Time:       "13:17:01",
		HasTime:    true,
		Out:        &out,
	})
	require.NoError(t, err)

	want := strings.Join([]string{"O", "RROO", "RRRO", "YYROOOOOOOO", "YYOO"}, render.LineSeparator) + "\n"
	require.Equal(t, want, out.String())
}

// TestRun_InvalidTimeWritesNothing ensures no partial output on failure.
func TestRun_InvalidTimeWritesNothing(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: writeConfig(t, config.Default()),
		Time:       "25:00:00",
		HasTime:    true,
		Out:        &out,
	})
	require.ErrorIs(t, err, timeparse.ErrOutOfRange)
	require.Contains(t, err.Error(), "25:00:00")
	require.Empty(t, out.String())
}

// TestRun_StrictOverride verifies the flag wins over the settings file.
func TestRun_StrictOverride(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Strict = false
	path := writeConfig(t, cfg)

	// Lenient from settings: empty input renders a blank clock.
	var out bytes.Buffer

	err := Run(context.Background(), &Options{ConfigPath: path, HasTime: true, Out: &out})
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{"O", "OOOO", "OOOO", "OOOOOOOOOOO", "OOOO"}, render.LineSeparator)+"\n", out.String())

	// Strict from flag: empty input fails.
	strict := true
	out.Reset()

	err = Run(context.Background(), &Options{ConfigPath: path, HasTime: true, Strict: &strict, Out: &out})
	require.ErrorIs(t, err, timeparse.ErrEmptyInput)
	require.Empty(t, out.String())
}

// TestRun_CurrentTime converts the injected clock when no time is given.
func TestRun_CurrentTime(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: writeConfig(t, config.Default()),
		Now: func() time.Time {
			return time.Date(2024, time.March, 1, 23, 59, 58, 0, time.UTC)
		},
		Out: &out,
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out.String(), "Y"+render.LineSeparator+"RRRR"+render.LineSeparator+"RRRO"))
}

// TestRun_RejectsBadOptions covers option validation.
func TestRun_RejectsBadOptions(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, config.Default())

	err := Run(context.Background(), &Options{ConfigPath: path, Watch: true, HasTime: true, Out: new(bytes.Buffer)})
	require.ErrorIs(t, err, errWatchWithTime)

	err = Run(context.Background(), &Options{ConfigPath: path})
	require.ErrorIs(t, err, errOutputRequired)

	err = Run(context.Background(), &Options{ConfigPath: path, Format: "html", Out: new(bytes.Buffer)})
	require.ErrorIs(t, err, render.ErrUnknownFormat)
}

// TestRun_Watch renders once immediately and once per tick until canceled.
func TestRun_Watch(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, config.Default())

	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2500*time.Millisecond)
		defer cancel()

		var out bytes.Buffer

		err := Run(ctx, &Options{
			ConfigPath: path,
			Watch:      true,
			Out:        &out,
		})
		require.NoError(t, err)

		frames := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n\n")
		require.Len(t, frames, 3)

		for _, frame := range frames {
			require.Len(t, strings.Split(frame, render.LineSeparator), 5)
		}
	})
}
