package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gi4nks/procstatus/internal/status"
)

// Platform identifies which codec produced an observation's raw status.
const (
	PlatformUnix    = "unix"
	PlatformWindows = "windows"
)

type Entity struct {
	ID           string
	CreatedAt    time.Time
	TerminatedAt time.Time
}

// Observation is one recorded process termination: the command that ran,
// the raw status the platform reported, and its decoded classification.
type Observation struct {
	Entity

	Name      string
	Arguments []string
	Platform  string
	Raw       int64
	Result    status.Result
	Tags      []string
}

func (o *Observation) Clone() *Observation {
	clone := &Observation{
		Entity: Entity{
			ID:           o.ID,
			CreatedAt:    o.CreatedAt,
			TerminatedAt: o.TerminatedAt,
		},
		Name:      o.Name,
		Arguments: make([]string, len(o.Arguments)),
		Platform:  o.Platform,
		Raw:       o.Raw,
		Result:    o.Result,
		Tags:      make([]string, len(o.Tags)),
	}

	copy(clone.Arguments, o.Arguments)
	copy(clone.Tags, o.Tags)

	return clone
}

// Success reports whether the observed process exited cleanly.
func (o *Observation) Success() bool {
	return o.Result.Success()
}

// CommandLine renders the observed command and its arguments.
func (o *Observation) CommandLine() string {
	if len(o.Arguments) == 0 {
		return o.Name
	}
	return o.Name + " " + strings.Join(o.Arguments, " ")
}

func (o Observation) String() (string, error) {
	b, err := json.Marshal(o)

	if err != nil {
		return "{}", err
	}
	return string(b), nil
}
