package index

import (
	"sync"

	"github.com/hupe1980/metastore"
)

// Inverted accelerates metadata filtering for equality queries over many
// node stores.
//
// Supported operator: OpEqual. Other operators fall back to scanning +
// evaluating metastore.FilterSet per store.
type Inverted struct {
	mu sync.RWMutex

	// key -> valueKey -> ids
	fields map[string]map[string]*Bitmap
}

// New creates an empty inverted index.
func New() *Inverted {
	return &Inverted{fields: make(map[string]map[string]*Bitmap)}
}

// Add posts every occupied slot of the store under the given node ID.
// Duplicate keys in the store simply produce multiple postings.
func (ix *Inverted) Add(id uint32, s *metastore.Store) {
	if ix == nil || s == nil {
		return
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.addLocked(id, s)
}

// Remove withdraws the store's postings for the given node ID.
func (ix *Inverted) Remove(id uint32, s *metastore.Store) {
	if ix == nil || s == nil {
		return
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.removeLocked(id, s)
}

// Update atomically replaces the postings of oldStore with newStore.
func (ix *Inverted) Update(id uint32, oldStore, newStore *metastore.Store) {
	if ix == nil {
		return
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if oldStore != nil {
		ix.removeLocked(id, oldStore)
	}
	if newStore != nil {
		ix.addLocked(id, newStore)
	}
}

func (ix *Inverted) addLocked(id uint32, s *metastore.Store) {
	for k, v := range s.All() {
		if !v.IsValid() {
			continue
		}
		vm, ok := ix.fields[k]
		if !ok {
			vm = make(map[string]*Bitmap)
			ix.fields[k] = vm
		}
		vk := v.Key()
		ids, ok := vm[vk]
		if !ok {
			ids = NewBitmap()
			vm[vk] = ids
		}
		ids.Add(id)
	}
}

func (ix *Inverted) removeLocked(id uint32, s *metastore.Store) {
	for k, v := range s.All() {
		if !v.IsValid() {
			continue
		}
		vm, ok := ix.fields[k]
		if !ok {
			continue
		}
		vk := v.Key()
		ids, ok := vm[vk]
		if !ok {
			continue
		}
		ids.Remove(id)
		if ids.IsEmpty() {
			delete(vm, vk)
		}
		if len(vm) == 0 {
			delete(ix.fields, k)
		}
	}
}

// Compile attempts to compile a FilterSet into a bitmap of matching node
// IDs using the inverted index. If compilation is not possible (an
// operator other than equality is present), ok=false and the caller should
// fall back to scanning.
func (ix *Inverted) Compile(fs *metastore.FilterSet) (result *Bitmap, ok bool) {
	if ix == nil || fs == nil || len(fs.Filters) == 0 {
		return nil, false
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	sets := make([]*Bitmap, 0, len(fs.Filters))

	for _, f := range fs.Filters {
		if f.Operator != metastore.OpEqual {
			return nil, false
		}
		ids := ix.postingsLocked(f.Key, f.Value)
		if ids == nil {
			// Key/value doesn't exist; fast path to always-empty.
			return NewBitmap(), true
		}
		sets = append(sets, ids)
	}

	// Intersect sets. Start from the smallest to reduce work.
	baseIdx := 0
	baseSize := sets[0].Cardinality()
	for i := 1; i < len(sets); i++ {
		if c := sets[i].Cardinality(); c < baseSize {
			baseIdx = i
			baseSize = c
		}
	}

	result = sets[baseIdx].Clone()
	for i := range sets {
		if i == baseIdx {
			continue
		}
		result.And(sets[i])
		if result.IsEmpty() {
			return result, true
		}
	}
	return result, true
}

func (ix *Inverted) postingsLocked(key string, v metastore.Value) *Bitmap {
	vm, ok := ix.fields[key]
	if !ok {
		return nil
	}
	ids, ok := vm[v.Key()]
	if !ok {
		return nil
	}
	return ids
}
