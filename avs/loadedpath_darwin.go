//go:build darwin

package avs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ebitengine/purego"
)

// modulePath walks the dyld image list for the engine's on-disk path.
// The introspection calls live in libSystem, which every darwin
// process already has loaded.
func modulePath(handle uintptr, name string) (string, error) {
	if handle == 0 {
		return "", errLibraryClosed
	}

	libSystem, err := purego.Dlopen("/usr/lib/libSystem.B.dylib", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return "", fmt.Errorf("failed to open libSystem for dyld introspection: %w", err)
	}

	var imageCount func() int32
	var imageName func(int32) string
	purego.RegisterLibFunc(&imageCount, libSystem, "_dyld_image_count")
	purego.RegisterLibFunc(&imageName, libSystem, "_dyld_get_image_name")

	// Walk newest-first so the mapping our own dlopen produced wins
	// over anything loaded earlier. Versioned file names such as
	// libavisynth.7.dylib still match on the stem.
	want := strings.TrimSuffix(name, ".dylib")
	for i := imageCount() - 1; i >= 0; i-- {
		image := imageName(i)
		if image == "" {
			continue
		}
		base := filepath.Base(image)
		if base == name || strings.HasPrefix(base, want+".") {
			return image, nil
		}
	}
	return "", fmt.Errorf("%s not present in the dyld image list", name)
}
