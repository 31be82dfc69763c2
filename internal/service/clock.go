package service

import (
	"time"

	"github.com/noah-isme/drivingschool-api/internal/models"
)

// Clock reports the current instant. Services default to time.Now.
type Clock func() time.Time

func (c Clock) today() string {
	if c == nil {
		c = time.Now
	}
	return c().UTC().Format(models.DateLayout)
}
