package app_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/odisort/app"
	"github.com/sghaida/odisort/config"
	"github.com/sghaida/odisort/di"
	"github.com/sghaida/odisort/printer"
	"github.com/sghaida/odisort/runner"
	"github.com/sghaida/odisort/sorting"
)

func TestSelectStrategy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want sorting.Strategy
	}{
		{name: "bubble", want: sorting.Bubble{}},
		{name: "insertion", want: sorting.Insertion{}},
		{name: "Bubble", want: sorting.Bubble{}},
		{name: "  INSERTION ", want: sorting.Insertion{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := app.SelectStrategy(tc.name)
			require.NoError(t, err)
			assert.IsType(t, tc.want, s)
		})
	}
}

func TestSelectStrategy_Unknown(t *testing.T) {
	t.Parallel()

	s, err := app.SelectStrategy("bubbleSort")
	assert.Nil(t, s)
	var use *app.UnknownStrategyError
	require.True(t, errors.As(err, &use))
	assert.Equal(t, "bubbleSort", use.Name)
	assert.Equal(t, `app: unknown sort strategy "bubbleSort" (want bubble or insertion)`, err.Error())
}

func TestBuild_DefaultRun(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger, _ := test.NewNullLogger()

	a, err := app.Build(config.Defaults(), &out, logger)
	require.NoError(t, err)
	require.NoError(t, a.Run())

	assert.Equal(t, "6, 13, 15, 22, 31, 37, 43\n\n", out.String())
}

func TestBuild_RecordsWiring(t *testing.T) {
	t.Parallel()

	a, err := app.Build(config.Defaults(), &bytes.Buffer{}, nil)
	require.NoError(t, err)

	assert.Equal(t, []di.DependencyKey{app.KeyPrinter, app.KeyRunner, app.KeyStrategy}, a.Wired())
	require.NotNil(t, a.Runner())
	assert.Equal(t, "bubble", sorting.NameOf(a.Runner().Strategy()))
	assert.Equal(t, sorting.Sequence{31, 22, 13, 43, 15, 6, 37}, a.Input())
}

func TestBuild_MixedCaseStrategy(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults()
	cfg.Strategy = "Insertion"
	cfg.Input = "3, 1, 2, 3, 1"

	var out bytes.Buffer
	a, err := app.Build(cfg, &out, nil)
	require.NoError(t, err)
	assert.Equal(t, "insertion", sorting.NameOf(a.Runner().Strategy()))

	require.NoError(t, a.Run())
	assert.Equal(t, "1, 1, 2, 3, 3\n\n", out.String())
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults()
	cfg.Strategy = "quick"
	_, err := app.Build(cfg, &bytes.Buffer{}, nil)
	var use *app.UnknownStrategyError
	assert.True(t, errors.As(err, &use))

	cfg = config.Defaults()
	cfg.Input = "1, 2, three"
	_, err = app.Build(cfg, &bytes.Buffer{}, nil)
	assert.ErrorIs(t, err, sorting.ErrInvalidInput)

	_, err = app.Build(config.Defaults(), nil, nil)
	assert.ErrorIs(t, err, runner.ErrNilPrinter)
}

func TestBuild_LogsWiringAtDebug(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := app.Build(config.Defaults(), &bytes.Buffer{}, logger)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "app wired", entry.Message)
	assert.Equal(t, "bubble", entry.Data["strategy"])
}

func TestNew(t *testing.T) {
	t.Parallel()

	a, err := app.New(nil, []int{1})
	assert.Nil(t, a)
	assert.ErrorIs(t, err, app.ErrNilRunner)

	var out bytes.Buffer
	r, err := runner.New(sorting.NewBubble(), printer.New(&out))
	require.NoError(t, err)

	in := []int{3, 2, 1}
	a, err = app.New(r, in)
	require.NoError(t, err)
	in[0] = 99

	assert.Same(t, r, a.Runner())
	assert.Empty(t, a.Wired())
	require.NoError(t, a.Run())
	assert.Equal(t, "1, 2, 3\n\n", out.String())
}

func TestRun_UnbuiltAppReturnsError(t *testing.T) {
	t.Parallel()

	var zero app.App
	assert.NotPanics(t, func() {
		assert.ErrorIs(t, zero.Run(), app.ErrNilRunner)
	})

	var nilApp *app.App
	assert.NotPanics(t, func() {
		assert.ErrorIs(t, nilApp.Run(), app.ErrNilRunner)
	})
}
