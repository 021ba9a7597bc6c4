// Package validator implements the generic entry-point pipeline
// (§4.4): the eight functions every create/remove/set/get call runs
// through, plus read-only recalculation. It is the only package that
// calls into both the metadata registry and the shadow database, and
// the only package that owns the process-wide lock described in §5.
//
// The concurrency model calls for a *recursive* lock because the
// reference implementation lets the driver call back into the core.
// The virtual-switch driver this repository ships creates its default
// objects through the entry wrapper only after the switch's PostCreate
// has returned, never while a validator call holds the lock, so a
// single non-reentrant sync.Mutex, held for the duration of one
// validator call, does not deadlock and needs none of the
// goroutine-local bookkeeping a true recursive mutex would need in Go.
package validator

import (
	"sync"

	"github.com/tiglabs/sai-core/pkg/sai/db"
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// AttrList is the attribute-id → value map an entry wrapper passes to
// create, and the shape post_get fills in for the caller.
type AttrList map[metadata.AttrID]types.Value

// ReadOnlyRefresher recalculates a single READ-ONLY attribute before
// it is returned from get (§4.4.9). The virtual-switch driver supplies
// the concrete implementation; the validator only calls it.
type ReadOnlyRefresher interface {
	RefreshReadOnly(mk types.MetaKey, switchID types.OID, id metadata.AttrID) (types.Value, error)
}

// Validator runs the generic pipeline against a shadow database and a
// metadata registry.
type Validator struct {
	mu      sync.Mutex
	DB      *db.Database
	Meta    *metadata.Registry
	Refresh ReadOnlyRefresher
}

// New returns a Validator over db using the default metadata registry.
func New(database *db.Database) *Validator {
	return &Validator{DB: database, Meta: metadata.Default}
}

func keyAttrs(om *metadata.ObjectMeta) []*metadata.AttrMeta {
	var out []*metadata.AttrMeta
	for _, m := range om.Attrs {
		if m.Flags.Has(metadata.FlagKey) {
			out = append(out, m)
		}
	}
	return out
}
