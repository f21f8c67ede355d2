package safename

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/carton/pkg/domain/model"
)

// Characters that are path-meaningful or invalid in filenames on common
// target platforms. Replaced rather than dropped so distinct entry names
// stay distinguishable after sanitization.
const reserved = `\:*?"<>|`

// Flatten reduces a container entry name to a single safe filename component
// for flat extraction. Directory components are discarded so an entry named
// "../../etc/passwd" lands in the output directory as "passwd". For OLE
// containers the hierarchical stream path is first joined into one component
// by replacing separators with underscores, so "Root Entry/Data" becomes
// "Root Entry_Data".
func Flatten(format model.Format, name string) (string, error) {
	orig := name
	name = strings.ReplaceAll(name, "\x00", "")

	if format == model.FormatOle {
		name = strings.ReplaceAll(name, "/", "_")
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(reserved, r) {
			return '_'
		}
		return r
	}, name)

	switch name {
	case "", ".", "..":
		return "", goerr.New("entry name reduces to no usable filename", goerr.V("name", orig))
	}
	return name, nil
}
