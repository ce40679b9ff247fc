package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aelexs/utctime/internal/cli"
	"github.com/aelexs/utctime/internal/config"
	"github.com/aelexs/utctime/pkg/utctime"
	"github.com/aelexs/utctime/pkg/utctime/utctimetest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedTime = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Log:         config.LogConfig{Level: "debug", Format: "json"},
		OTEL:        config.OTELConfig{Service: "utctime"},
	}
}

func run(t *testing.T, cfg *config.Config, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := cli.Run(context.Background(), args, cli.Options{
		Provider: utctimetest.NewFakeProviderAt(fixedTime),
		Config:   cfg,
		Stdout:   &stdout,
		Stderr:   &stderr,
	})
	return stdout.String(), stderr.String(), err
}

func TestRunConversions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"millis", []string{"millis", "1970-01-01T00:00:01Z"}, "1000\n"},
		{"millis rounds half to even", []string{"millis", "1970-01-01T00:00:00.0025Z"}, "2\n"},
		{"nanos", []string{"nanos", "1970-01-01T00:00:00.0000015Z"}, "1500\n"},
		{"ticks", []string{"ticks", "2000-01-01T00:00:00Z"}, "630822816000000000\n"},
		{"from-millis zero", []string{"from-millis", "0"}, "1970-01-01T00:00:00Z\n"},
		{"from-millis", []string{"from-millis", "1000"}, "1970-01-01T00:00:01Z\n"},
		{"from-nanos truncates", []string{"from-nanos", "123"}, "1970-01-01T00:00:00.0000001Z\n"},
		{"from-ticks", []string{"from-ticks", "630822816000000000"}, "2000-01-01T00:00:00Z\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, testConfig(), tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRunNow(t *testing.T) {
	stdout, _, err := run(t, testConfig(), "now")

	require.NoError(t, err)
	assert.Contains(t, stdout, "2026-02-01T10:00:00Z")
	assert.Contains(t, stdout, "1769940000000")
	assert.Contains(t, stdout, "ticks:")
}

func TestRunDescribe(t *testing.T) {
	stdout, _, err := run(t, testConfig(), "describe", "2000-01-01T00:00:00Z")

	require.NoError(t, err)
	assert.Contains(t, stdout, "630822816000000000")
	assert.Contains(t, stdout, "946684800000")
}

func TestRunCoercesZonedInput(t *testing.T) {
	stdout, stderr, err := run(t, testConfig(), "millis", "1970-01-01T02:00:00-07:00")

	require.NoError(t, err)
	assert.Equal(t, "32400000\n", stdout)
	assert.Contains(t, stderr, "coerced non-UTC timestamp")
	assert.Contains(t, stderr, "original_kind")
}

func TestRunUTCInputIsNotCoerced(t *testing.T) {
	_, stderr, err := run(t, testConfig(), "millis", "1970-01-01T00:00:00Z")

	require.NoError(t, err)
	assert.NotContains(t, stderr, "coerced")
}

func TestRunStrictRejectsZonedInput(t *testing.T) {
	cfg := testConfig()
	cfg.Input.Strict = true

	_, _, err := run(t, cfg, "ticks", "2026-02-01T12:00:00+02:00")

	require.Error(t, err)
	assert.ErrorIs(t, err, utctime.ErrNonUTCTimestamp)
}

func TestRunStrictAcceptsUTCInput(t *testing.T) {
	cfg := testConfig()
	cfg.Input.Strict = true

	stdout, _, err := run(t, cfg, "millis", "1970-01-01T00:00:01Z")

	require.NoError(t, err)
	assert.Equal(t, "1000\n", stdout)
}

func TestRunErrors(t *testing.T) {
	t.Run("malformed number", func(t *testing.T) {
		_, _, err := run(t, testConfig(), "from-millis", "abc")
		assert.ErrorIs(t, err, utctime.ErrMalformedNumber)
	})

	t.Run("malformed ticks", func(t *testing.T) {
		_, _, err := run(t, testConfig(), "from-ticks", "1e9")
		assert.ErrorIs(t, err, utctime.ErrMalformedNumber)
	})

	t.Run("millis beyond tick range", func(t *testing.T) {
		stdout, _, err := run(t, testConfig(), "from-millis", "9223372036854775807")

		assert.ErrorIs(t, err, utctime.ErrOutOfRange)
		assert.Empty(t, stdout)
	})

	t.Run("millis below tick range", func(t *testing.T) {
		_, _, err := run(t, testConfig(), "from-millis", "-9223372036854775808")
		assert.ErrorIs(t, err, utctime.ErrOutOfRange)
	})

	t.Run("malformed timestamp", func(t *testing.T) {
		_, _, err := run(t, testConfig(), "millis", "yesterday")

		var parseErr *time.ParseError
		assert.True(t, errors.As(err, &parseErr), "expected time.ParseError, got %v", err)
	})

	usage := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"tomorrow"}},
		{"missing argument", []string{"millis"}},
		{"extra argument", []string{"now", "please"}},
	}
	for _, tt := range usage {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, testConfig(), tt.args...)
			assert.ErrorIs(t, err, cli.ErrUsage)
		})
	}
}

func TestRunLoadsConfigFromEnv(t *testing.T) {
	t.Run("env config", func(t *testing.T) {
		t.Setenv("UTCTIME_INPUT_STRICT", "true")

		_, _, err := run(t, nil, "millis", "2026-02-01T12:00:00+02:00")

		assert.ErrorIs(t, err, utctime.ErrNonUTCTimestamp)
	})

	t.Run("invalid env config", func(t *testing.T) {
		t.Setenv("UTCTIME_ENVIRONMENT", "prod")

		_, _, err := run(t, nil, "now")

		assert.ErrorIs(t, err, config.ErrConfigRequired)
	})
}

func TestRunDefaultsToSystemProvider(t *testing.T) {
	var stdout bytes.Buffer

	err := cli.Run(context.Background(), []string{"now"}, cli.Options{Config: testConfig(), Stdout: &stdout})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "instant:")
	assert.NotContains(t, stdout.String(), "2026-02-01T10:00:00Z")
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRunReportsOutputErrors(t *testing.T) {
	for _, args := range [][]string{
		{"now"},
		{"describe", "2000-01-01T00:00:00Z"},
		{"from-ticks", "0"},
	} {
		t.Run(args[0], func(t *testing.T) {
			err := cli.Run(context.Background(), args, cli.Options{
				Provider: utctimetest.NewFakeProviderAt(fixedTime),
				Config:   testConfig(),
				Stdout:   failingWriter{},
			})

			assert.ErrorIs(t, err, errWrite)
		})
	}

	t.Run("usage", func(t *testing.T) {
		assert.ErrorIs(t, cli.PrintUsage(failingWriter{}), errWrite)
	})
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cli.PrintUsage(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "usage: utctime"))
	for _, name := range []string{"now", "describe", "millis", "nanos", "ticks", "from-millis", "from-nanos", "from-ticks"} {
		assert.Contains(t, out, "  "+name+" ")
	}
}
