package manifest

import (
	_ "embed"
	"sync"

	"github.com/provstack/artifactcheck/pkg/validator"
)

var (
	//go:embed data/default.yaml
	defaultData []byte

	defaultOnce sync.Once
	cachedTree  validator.PathValidator
	cachedErr   error
)

// Default returns the validator tree for the built-in upgrade-bundle layout.
// Because the manifest is embedded at build time, it is safe (and simpler)
// to compile it once and reuse the tree for the lifetime of the process.
func Default() (validator.PathValidator, error) {
	defaultOnce.Do(func() {
		m, err := Parse(defaultData)
		if err != nil {
			cachedErr = err
			return
		}
		cachedTree, cachedErr = m.Compile()
	})
	return cachedTree, cachedErr
}
