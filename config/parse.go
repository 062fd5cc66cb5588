package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/plus3/shapewars/ecs"
)

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a configuration from r and validates it. The first missing or
// malformed field aborts parsing.
func Parse(r io.Reader) (*Config, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	cfg := &Config{}
	seen := make(map[string]bool)

	for scanner.Scan() {
		keyword := scanner.Text()
		rec := &recordReader{name: keyword, scanner: scanner}

		switch keyword {
		case "Window":
			cfg.Window = rec.window()
		case "Font":
			font := rec.font()
			cfg.Font = &font
		case "Player":
			cfg.Player = rec.player()
		case "Enemy":
			cfg.Enemy = rec.enemy()
		case "Bullet":
			bullet := rec.bullet()
			cfg.Bullet = &bullet
		default:
			continue
		}

		if rec.err != nil {
			return nil, rec.err
		}
		seen[keyword] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}

	for _, required := range []string{"Window", "Player", "Enemy"} {
		if !seen[required] {
			return nil, &RecordError{Record: required, Err: ErrMissingRecord}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// recordReader pulls typed fields for one record. The first failure is kept and
// every later read becomes a no-op.
type recordReader struct {
	name    string
	scanner *bufio.Scanner
	err     error
}

func (r *recordReader) next(field string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	if !r.scanner.Scan() {
		r.err = &RecordError{Record: r.name, Field: field, Err: ErrMissingField}
		return "", false
	}
	return r.scanner.Text(), true
}

func (r *recordReader) invalid(field, token string, cause error) {
	r.err = &RecordError{
		Record: r.name,
		Field:  field,
		Err:    fmt.Errorf("%w %q: %v", ErrInvalidValue, token, cause),
	}
}

func (r *recordReader) text(field string) string {
	tok, _ := r.next(field)
	return tok
}

func (r *recordReader) integer(field string) int {
	tok, ok := r.next(field)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		r.invalid(field, tok, err)
		return 0
	}
	return v
}

func (r *recordReader) number(field string) float64 {
	tok, ok := r.next(field)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		r.invalid(field, tok, err)
		return 0
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		r.invalid(field, tok, errors.New("must be finite"))
		return 0
	}
	return v
}

func (r *recordReader) channel(field string) uint8 {
	tok, ok := r.next(field)
	if !ok {
		return 0
	}
	v, err := strconv.ParseUint(tok, 10, 8)
	if err != nil {
		r.invalid(field, tok, err)
		return 0
	}
	return uint8(v)
}

func (r *recordReader) rgb(prefix string) ecs.RGB {
	return ecs.RGB{
		R: r.channel(prefix + "R"),
		G: r.channel(prefix + "G"),
		B: r.channel(prefix + "B"),
	}
}

func (r *recordReader) flag(field string) bool {
	tok, ok := r.next(field)
	if !ok {
		return false
	}
	switch tok {
	case "0":
		return false
	case "1":
		return true
	}
	r.invalid(field, tok, errors.New("want 0 or 1"))
	return false
}

func (r *recordReader) window() Window {
	return Window{
		Width:          r.integer("W"),
		Height:         r.integer("H"),
		FramerateLimit: r.integer("FL"),
		Fullscreen:     r.flag("FS"),
	}
}

func (r *recordReader) font() Font {
	return Font{
		Path:  r.text("F"),
		Size:  r.integer("S"),
		Color: r.rgb(""),
	}
}

func (r *recordReader) player() Player {
	return Player{
		ShapeRadius:      r.number("SR"),
		CollisionRadius:  r.number("CR"),
		Speed:            r.number("S"),
		Fill:             r.rgb("F"),
		Outline:          r.rgb("O"),
		OutlineThickness: r.number("OT"),
		Vertices:         r.integer("V"),
	}
}

func (r *recordReader) enemy() Enemy {
	return Enemy{
		ShapeRadius:      r.number("SR"),
		CollisionRadius:  r.number("CR"),
		MinSpeed:         r.number("SMIN"),
		MaxSpeed:         r.number("SMAX"),
		Outline:          r.rgb("O"),
		OutlineThickness: r.number("OT"),
		MinVertices:      r.integer("VMIN"),
		MaxVertices:      r.integer("VMAX"),
		Lifespan:         r.integer("L"),
		SpawnInterval:    r.integer("SI"),
	}
}

func (r *recordReader) bullet() Bullet {
	return Bullet{
		ShapeRadius:      r.number("SR"),
		CollisionRadius:  r.number("CR"),
		Speed:            r.number("S"),
		Fill:             r.rgb("F"),
		Outline:          r.rgb("O"),
		OutlineThickness: r.number("OT"),
		Vertices:         r.integer("V"),
		Lifespan:         r.integer("L"),
	}
}
