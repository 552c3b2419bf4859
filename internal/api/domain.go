package api

import (
	"github.com/lianzhou/tizhi/internal/constitution"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Constitution constitution.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	constitutionSystem := constitution.New(
		runtime.Rules,
		runtime.Logger,
		constitution.CacheOptions{
			Enabled: runtime.API.Cache.Enabled,
			TTL:     runtime.API.Cache.TTLDuration(),
		},
	)

	return &Domain{
		Constitution: constitutionSystem,
	}
}
