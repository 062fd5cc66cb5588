package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plus3/shapewars/config"
	"github.com/plus3/shapewars/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
Window 800 600 60 0
Font fonts/arial.ttf 24 255 255 255
Player 32 32 7 5 5 5 255 0 0 4 8
Enemy 32 32 3 3 255 255 255 2 3 8 90 60
Bullet 10 10 20 255 255 255 255 0 0 2 20 90
`

func TestParseValidConfig(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(validConfig))
	require.NoError(t, err)

	assert.Equal(t, config.Window{Width: 800, Height: 600, FramerateLimit: 60}, cfg.Window)

	require.NotNil(t, cfg.Font)
	assert.Equal(t, "fonts/arial.ttf", cfg.Font.Path)
	assert.Equal(t, 24, cfg.Font.Size)
	assert.Equal(t, ecs.RGB{R: 255, G: 255, B: 255}, cfg.Font.Color)

	assert.Equal(t, config.Player{
		ShapeRadius:      32,
		CollisionRadius:  32,
		Speed:            7,
		Fill:             ecs.RGB{R: 5, G: 5, B: 5},
		Outline:          ecs.RGB{R: 255},
		OutlineThickness: 4,
		Vertices:         8,
	}, cfg.Player)

	assert.Equal(t, config.Enemy{
		ShapeRadius:      32,
		CollisionRadius:  32,
		MinSpeed:         3,
		MaxSpeed:         3,
		Outline:          ecs.RGB{R: 255, G: 255, B: 255},
		OutlineThickness: 2,
		MinVertices:      3,
		MaxVertices:      8,
		Lifespan:         90,
		SpawnInterval:    60,
	}, cfg.Enemy)

	require.NotNil(t, cfg.Bullet)
	assert.Equal(t, 20, cfg.Bullet.Vertices)
	assert.Equal(t, 90, cfg.Bullet.Lifespan)
}

func TestParseOptionalRecords(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(`
Window 640 480 30 1
Player 10 10 5 1 2 3 4 5 6 1 3
Enemy 8 8 1 4 0 0 0 1 3 6 0 10
`))
	require.NoError(t, err)

	assert.True(t, cfg.Window.Fullscreen)
	assert.Nil(t, cfg.Font)
	assert.Nil(t, cfg.Bullet)
}

func TestParseIgnoresUnknownKeywords(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(`
Comment whatever 12
Window 800 600 60 0
Sound on
Player 32 32 7 5 5 5 255 0 0 4 8
Enemy 32 32 3 3 255 255 255 2 3 8 90 60
`))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
}

func TestParseLastRecordWins(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(validConfig + "Window 1024 768 144 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 144, cfg.Window.FramerateLimit)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		record string
		field  string
		target error
	}{
		{
			name:   "missing window",
			input:  "Player 32 32 7 5 5 5 255 0 0 4 8\nEnemy 32 32 3 3 255 255 255 2 3 8 90 60",
			record: "Window",
			target: config.ErrMissingRecord,
		},
		{
			name:   "missing enemy",
			input:  "Window 800 600 60 0\nPlayer 32 32 7 5 5 5 255 0 0 4 8",
			record: "Enemy",
			target: config.ErrMissingRecord,
		},
		{
			name:   "truncated record",
			input:  "Window 800 600 60 0\nPlayer 32 32 7 5 5 5 255 0 0 4 8\nEnemy 32 32 3 3",
			record: "Enemy",
			field:  "OR",
			target: config.ErrMissingField,
		},
		{
			name:   "malformed integer",
			input:  "Window 800 six 60 0",
			record: "Window",
			field:  "H",
			target: config.ErrInvalidValue,
		},
		{
			name:   "color out of range",
			input:  "Window 800 600 60 0\nPlayer 32 32 7 5 5 300 255 0 0 4 8",
			record: "Player",
			field:  "FB",
			target: config.ErrInvalidValue,
		},
		{
			name:   "bad fullscreen flag",
			input:  "Window 800 600 60 yes",
			record: "Window",
			field:  "FS",
			target: config.ErrInvalidValue,
		},
		{
			name:   "vertex range inverted",
			input:  "Window 800 600 60 0\nPlayer 32 32 7 5 5 5 255 0 0 4 8\nEnemy 32 32 3 3 255 255 255 2 8 3 90 60",
			record: "Enemy",
			field:  "VMAX",
			target: config.ErrInvalidValue,
		},
		{
			name:   "zero spawn interval",
			input:  "Window 800 600 60 0\nPlayer 32 32 7 5 5 5 255 0 0 4 8\nEnemy 32 32 3 3 255 255 255 2 3 8 90 0",
			record: "Enemy",
			field:  "SI",
			target: config.ErrInvalidValue,
		},
		{
			name:   "enemy larger than window",
			input:  "Window 50 50 60 0\nPlayer 10 10 7 5 5 5 255 0 0 4 8\nEnemy 32 32 3 3 255 255 255 2 3 8 90 60",
			record: "Enemy",
			field:  "CR",
			target: config.ErrInvalidValue,
		},
		{
			name:   "infinite player radius",
			input:  "Window 800 600 60 0\nPlayer 32 Inf 7 5 5 5 255 0 0 4 8",
			record: "Player",
			field:  "CR",
			target: config.ErrInvalidValue,
		},
		{
			name:   "infinite enemy speed",
			input:  "Window 800 600 60 0\nPlayer 32 32 7 5 5 5 255 0 0 4 8\nEnemy 32 32 3 +Inf 255 255 255 2 3 8 90 60",
			record: "Enemy",
			field:  "SMAX",
			target: config.ErrInvalidValue,
		},
		{
			name:   "nan player speed",
			input:  "Window 800 600 60 0\nPlayer 32 32 NaN 5 5 5 255 0 0 4 8",
			record: "Player",
			field:  "S",
			target: config.ErrInvalidValue,
		},
		{
			name:   "player larger than window",
			input:  "Window 50 50 60 0\nPlayer 10 30 7 5 5 5 255 0 0 4 8\nEnemy 10 10 3 3 255 255 255 2 3 8 90 60",
			record: "Player",
			field:  "CR",
			target: config.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.target)

			var recErr *config.RecordError
			require.True(t, errors.As(err, &recErr))
			assert.Equal(t, tt.record, recErr.Record)
			assert.Equal(t, tt.field, recErr.Field)
			assert.Contains(t, err.Error(), tt.record)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.txt")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Window.Height)

	_, err = config.Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBundledConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "assets", "config.txt"))
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Enemy.SpawnInterval)
}
