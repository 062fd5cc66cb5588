package config

import "fmt"

type rangeCheck struct {
	record, field string
	ok            bool
	why           string
}

// Validate checks value ranges that the parser cannot enforce on its own.
func (c *Config) Validate() error {
	checks := []rangeCheck{
		{"Window", "W", c.Window.Width > 0, "must be positive"},
		{"Window", "H", c.Window.Height > 0, "must be positive"},
		{"Window", "FL", c.Window.FramerateLimit >= 0, "must not be negative"},

		{"Player", "SR", c.Player.ShapeRadius > 0, "must be positive"},
		{"Player", "CR", c.Player.CollisionRadius > 0, "must be positive"},
		{"Player", "CR", fitsWindow(c.Player.CollisionRadius, c.Window), "does not fit inside the window"},
		{"Player", "S", c.Player.Speed >= 0, "must not be negative"},
		{"Player", "OT", c.Player.OutlineThickness >= 0, "must not be negative"},
		{"Player", "V", c.Player.Vertices >= 3, "must be at least 3"},

		{"Enemy", "SR", c.Enemy.ShapeRadius > 0, "must be positive"},
		{"Enemy", "CR", c.Enemy.CollisionRadius > 0, "must be positive"},
		{"Enemy", "CR", fitsWindow(c.Enemy.CollisionRadius, c.Window), "does not fit inside the window"},
		{"Enemy", "SMIN", c.Enemy.MinSpeed > 0, "must be positive"},
		{"Enemy", "SMAX", c.Enemy.MaxSpeed >= c.Enemy.MinSpeed, "must not be below SMIN"},
		{"Enemy", "OT", c.Enemy.OutlineThickness >= 0, "must not be negative"},
		{"Enemy", "VMIN", c.Enemy.MinVertices >= 3, "must be at least 3"},
		{"Enemy", "VMAX", c.Enemy.MaxVertices >= c.Enemy.MinVertices, "must not be below VMIN"},
		{"Enemy", "L", c.Enemy.Lifespan >= 0, "must not be negative"},
		{"Enemy", "SI", c.Enemy.SpawnInterval >= 1, "must be at least 1"},
	}

	if c.Font != nil {
		checks = append(checks, []rangeCheck{
			{"Font", "F", c.Font.Path != "", "must not be empty"},
			{"Font", "S", c.Font.Size > 0, "must be positive"},
		}...)
	}

	if c.Bullet != nil {
		checks = append(checks, []rangeCheck{
			{"Bullet", "SR", c.Bullet.ShapeRadius > 0, "must be positive"},
			{"Bullet", "CR", c.Bullet.CollisionRadius > 0, "must be positive"},
			{"Bullet", "V", c.Bullet.Vertices >= 3, "must be at least 3"},
			{"Bullet", "L", c.Bullet.Lifespan >= 0, "must not be negative"},
		}...)
	}

	for _, check := range checks {
		if !check.ok {
			return &RecordError{
				Record: check.record,
				Field:  check.field,
				Err:    fmt.Errorf("%w: %s", ErrInvalidValue, check.why),
			}
		}
	}
	return nil
}

func fitsWindow(radius float64, w Window) bool {
	return 2*radius <= float64(min(w.Width, w.Height))
}
