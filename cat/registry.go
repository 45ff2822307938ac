// cat/registry.go
package cat

import (
	"fmt"

	"github.com/asterixkit/getafix/cat/cat021"
	"github.com/asterixkit/getafix/cat/cat034"
	"github.com/asterixkit/getafix/cat/cat048"
	"github.com/asterixkit/getafix/cat/cat062"
	"github.com/asterixkit/getafix/schema"
)

// BuiltinRegistry assembles a registry from every built-in category
// edition shipped with the library.
func BuiltinRegistry() (*schema.Registry, error) {
	builders := []func() (*schema.Edition, error){
		cat021.Edition26,
		cat034.Edition129,
		cat048.Edition132,
		cat062.Edition120,
	}

	editions := make([]*schema.Edition, 0, len(builders))
	for _, build := range builders {
		ed, err := build()
		if err != nil {
			return nil, fmt.Errorf("building edition: %w", err)
		}
		editions = append(editions, ed)
	}
	return schema.NewRegistry(editions...)
}
